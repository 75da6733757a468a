// ABOUTME: Tests for event MCP tool handlers
// ABOUTME: Validates linking, roles, cascade deletion, and filtering
package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradiigm/cardstack/models"
)

func TestLinkContactToEvent(t *testing.T) {
	s := newTestStore(t)
	eh := NewEventHandlers(s)
	ch := NewContactHandlers(s)
	ctx := context.Background()

	_, added, err := ch.AddContact(ctx, nil, AddContactInput{Name: "Ann"})
	require.NoError(t, err)
	_, event, err := eh.AddEvent(ctx, nil, AddEventInput{Name: "Meetup"})
	require.NoError(t, err)

	_, out, err := eh.LinkContactToEvent(ctx, nil, LinkContactToEventInput{
		ContactID: added.Contact.ID,
		EventID:   event.Event.ID,
		Role:      "Speaker",
	})
	require.NoError(t, err)

	require.Len(t, out.Contact.EventLinks, 1)
	assert.Equal(t, models.RoleSpeaker, out.Contact.EventLinks[0].Role)

	// Linking again is idempotent
	_, out, err = eh.LinkContactToEvent(ctx, nil, LinkContactToEventInput{
		ContactID: added.Contact.ID,
		EventID:   event.Event.ID,
	})
	require.NoError(t, err)
	assert.Len(t, out.Contact.EventLinks, 1)
}

func TestLinkContactToEventDefaultsRole(t *testing.T) {
	s := newTestStore(t)
	eh := NewEventHandlers(s)
	ch := NewContactHandlers(s)
	ctx := context.Background()

	_, added, err := ch.AddContact(ctx, nil, AddContactInput{Name: "Ann"})
	require.NoError(t, err)
	_, event, err := eh.AddEvent(ctx, nil, AddEventInput{Name: "Meetup"})
	require.NoError(t, err)

	_, out, err := eh.LinkContactToEvent(ctx, nil, LinkContactToEventInput{
		ContactID: added.Contact.ID,
		EventID:   event.Event.ID,
	})
	require.NoError(t, err)
	require.Len(t, out.Contact.EventLinks, 1)
	assert.Equal(t, models.RoleAttendee, out.Contact.EventLinks[0].Role)
}

func TestLinkContactToEventValidation(t *testing.T) {
	s := newTestStore(t)
	eh := NewEventHandlers(s)
	ctx := context.Background()

	_, _, err := eh.LinkContactToEvent(ctx, nil, LinkContactToEventInput{
		ContactID: "nope", EventID: "also-nope",
	})
	assert.EqualError(t, err, "contact not found: nope")

	_, event, err := eh.AddEvent(ctx, nil, AddEventInput{Name: "Meetup"})
	require.NoError(t, err)

	_, _, err = eh.LinkContactToEvent(ctx, nil, LinkContactToEventInput{
		ContactID: models.FeaturedContactID,
		EventID:   event.Event.ID,
		Role:      "Janitor",
	})
	assert.EqualError(t, err, "unknown event role: Janitor")
}

func TestDeleteEventCascade(t *testing.T) {
	s := newTestStore(t)
	eh := NewEventHandlers(s)
	ctx := context.Background()

	// The seeded featured contact is linked to the seeded event
	_, out, err := eh.DeleteEvent(ctx, nil, DeleteEventInput{ID: models.SeedEventID})
	require.NoError(t, err)
	assert.True(t, out.Deleted)

	contact, ok := s.ContactByID(models.FeaturedContactID)
	require.True(t, ok)
	assert.Empty(t, contact.EventLinks)
}

func TestListEventsHidesArchived(t *testing.T) {
	s := newTestStore(t)
	eh := NewEventHandlers(s)
	ctx := context.Background()

	_, event, err := eh.AddEvent(ctx, nil, AddEventInput{Name: "Meetup"})
	require.NoError(t, err)
	s.ToggleHideEvent(event.Event.ID)

	_, out, err := eh.ListEvents(ctx, nil, ListEventsInput{})
	require.NoError(t, err)
	for _, e := range out.Events {
		assert.NotEqual(t, event.Event.ID, e.ID)
	}

	_, out, err = eh.ListEvents(ctx, nil, ListEventsInput{IncludeHidden: true})
	require.NoError(t, err)
	found := false
	for _, e := range out.Events {
		if e.ID == event.Event.ID {
			found = true
		}
	}
	assert.True(t, found)
}
