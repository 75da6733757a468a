// ABOUTME: Tests for list membership operations
// ABOUTME: Validates set semantics on create, add, and remove
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradiigm/cardstack/models"
)

func TestCreateListCollapsesDuplicates(t *testing.T) {
	s, _ := newTestStore(t)

	list := s.CreateList(models.ContactList{
		Name:       "VIPs",
		ContactIDs: []string{"a", "b", "a"},
	})

	assert.NotEmpty(t, list.ID)
	assert.Equal(t, []string{"a", "b"}, list.ContactIDs)
	assert.NotEmpty(t, list.CreatedAt)
}

func TestAddContactsToListIsAUnion(t *testing.T) {
	s, _ := newTestStore(t)

	list := s.CreateList(models.ContactList{Name: "VIPs", ContactIDs: []string{"a"}})

	s.AddContactsToList(list.ID, []string{"b", "a", "c"})

	got, ok := s.ListByID(list.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, got.ContactIDs)

	// Adding again changes nothing
	s.AddContactsToList(list.ID, []string{"a", "b"})
	got, _ = s.ListByID(list.ID)
	assert.Equal(t, []string{"a", "b", "c"}, got.ContactIDs)
}

func TestRemoveContactFromList(t *testing.T) {
	s, _ := newTestStore(t)

	list := s.CreateList(models.ContactList{Name: "VIPs", ContactIDs: []string{"a", "b"}})

	s.RemoveContactFromList(list.ID, "a")

	got, ok := s.ListByID(list.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, got.ContactIDs)

	// Unknown member is a no-op
	s.RemoveContactFromList(list.ID, "zzz")
	got, _ = s.ListByID(list.ID)
	assert.Equal(t, []string{"b"}, got.ContactIDs)
}

func TestDeleteList(t *testing.T) {
	s, _ := newTestStore(t)

	list := s.CreateList(models.ContactList{Name: "VIPs"})
	s.DeleteList(list.ID)

	_, ok := s.ListByID(list.ID)
	assert.False(t, ok)
}

func TestUpdateList(t *testing.T) {
	s, _ := newTestStore(t)

	list := s.CreateList(models.ContactList{Name: "VIPs"})
	list.Name = "Inner Circle"
	list.ContactIDs = []string{"a", "a"}
	s.UpdateList(list)

	got, ok := s.ListByID(list.ID)
	require.True(t, ok)
	assert.Equal(t, "Inner Circle", got.Name)
	assert.Equal(t, []string{"a"}, got.ContactIDs)
}

func TestRemoveContactFromListLeavesEarlierSnapshotsIntact(t *testing.T) {
	s, _ := newTestStore(t)

	list := s.CreateList(models.ContactList{Name: "VIPs", ContactIDs: []string{"a", "b"}})

	snapshot, ok := s.ListByID(list.ID)
	require.True(t, ok)

	s.RemoveContactFromList(list.ID, "a")

	assert.Equal(t, []string{"a", "b"}, snapshot.ContactIDs)
	got, _ := s.ListByID(list.ID)
	assert.Equal(t, []string{"b"}, got.ContactIDs)
}
