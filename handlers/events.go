// ABOUTME: MCP tool handlers for event operations
// ABOUTME: Event deletion strips links from contacts through the store cascade
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

type EventHandlers struct {
	store *store.Store
}

func NewEventHandlers(s *store.Store) *EventHandlers {
	return &EventHandlers{store: s}
}

type AddEventInput struct {
	Name        string `json:"name" jsonschema:"Event name (required)"`
	Date        string `json:"date,omitempty" jsonschema:"Event date (YYYY-MM-DD)"`
	Location    string `json:"location,omitempty" jsonschema:"Event location"`
	Description string `json:"description,omitempty" jsonschema:"Event description"`
	URL         string `json:"url,omitempty" jsonschema:"Event website"`
}

type EventOutput struct {
	Event models.Event `json:"event"`
}

func (h *EventHandlers) AddEvent(_ context.Context, request *mcp.CallToolRequest, input AddEventInput) (*mcp.CallToolResult, EventOutput, error) {
	if input.Name == "" {
		return nil, EventOutput{}, fmt.Errorf("name is required")
	}

	event := h.store.CreateEvent(models.Event{
		Name:        input.Name,
		Date:        input.Date,
		Location:    input.Location,
		Description: input.Description,
		URL:         input.URL,
	})

	return nil, EventOutput{Event: event}, nil
}

type ListEventsInput struct {
	IncludeHidden bool `json:"include_hidden,omitempty" jsonschema:"Include archived events"`
}

type ListEventsOutput struct {
	Events []models.Event `json:"events"`
}

func (h *EventHandlers) ListEvents(_ context.Context, request *mcp.CallToolRequest, input ListEventsInput) (*mcp.CallToolResult, ListEventsOutput, error) {
	var events []models.Event
	for _, e := range h.store.Events() {
		if e.Hidden && !input.IncludeHidden {
			continue
		}
		events = append(events, e)
	}
	return nil, ListEventsOutput{Events: events}, nil
}

type DeleteEventInput struct {
	ID string `json:"id" jsonschema:"Event ID (required). Links to it are removed from all contacts"`
}

func (h *EventHandlers) DeleteEvent(_ context.Context, request *mcp.CallToolRequest, input DeleteEventInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	h.store.DeleteEvent(input.ID)
	return nil, DeleteOutput{Deleted: true}, nil
}

type LinkContactToEventInput struct {
	ContactID string `json:"contact_id" jsonschema:"Contact ID (required)"`
	EventID   string `json:"event_id" jsonschema:"Event ID (required)"`
	Role      string `json:"role,omitempty" jsonschema:"Role at the event: Attendee, Speaker, Host, Guest, or Exhibitor"`
}

func (h *EventHandlers) LinkContactToEvent(_ context.Context, request *mcp.CallToolRequest, input LinkContactToEventInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, ok := h.store.ContactByID(input.ContactID)
	if !ok {
		return nil, ContactOutput{}, fmt.Errorf("contact not found: %s", input.ContactID)
	}
	if _, ok := h.store.EventByID(input.EventID); !ok {
		return nil, ContactOutput{}, fmt.Errorf("event not found: %s", input.EventID)
	}

	role := models.EventRole(input.Role)
	if input.Role == "" {
		role = models.RoleAttendee
		if def := h.store.Settings().DefaultEventRole; def != "" {
			role = models.EventRole(def)
		}
	} else if !models.ValidEventRole(role) {
		return nil, ContactOutput{}, fmt.Errorf("unknown event role: %s", input.Role)
	}

	for _, link := range contact.EventLinks {
		if link.EventID == input.EventID {
			return nil, ContactOutput{Contact: contact}, nil
		}
	}

	contact.EventLinks = append(contact.EventLinks, models.EventLink{EventID: input.EventID, Role: role})
	h.store.UpdateContact(contact)
	return nil, ContactOutput{Contact: contact}, nil
}
