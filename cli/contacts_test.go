// ABOUTME: Tests for contact CLI commands
// ABOUTME: Validates add/list/update/delete flows and tag handling
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

func contactByName(s *store.Store, name string) (models.Contact, bool) {
	for _, c := range s.Contacts() {
		if c.Name == name {
			return c, true
		}
	}
	return models.Contact{}, false
}

func TestAddContactCommand(t *testing.T) {
	s := setupTestCLI(t)

	err := AddContactCommand(s, []string{
		"--name", "Ann Perkins",
		"--role", "Nurse",
		"--company", "Pawnee Health",
		"--email", "ann@example.com",
		"--tags", "health, friendly",
	})
	require.NoError(t, err)

	c, ok := contactByName(s, "Ann Perkins")
	require.True(t, ok)
	assert.Equal(t, "Nurse", c.Role)
	assert.Equal(t, "ann@example.com", c.Email)
	assert.Equal(t, []string{"health", "friendly"}, c.Tags)
	assert.NotEmpty(t, c.CompanyID, "saving with a company name should link a company record")
}

func TestAddContactCommandRequiresName(t *testing.T) {
	s := setupTestCLI(t)

	err := AddContactCommand(s, []string{"--email", "nobody@example.com"})
	assert.Error(t, err)
}

func TestListContactsCommand(t *testing.T) {
	s := setupTestCLI(t)

	require.NoError(t, ListContactsCommand(s, []string{}))
	require.NoError(t, ListContactsCommand(s, []string{"--query", "kyle"}))
	require.NoError(t, ListContactsCommand(s, []string{"--favorites"}))
}

func TestUpdateContactCommand(t *testing.T) {
	s := setupTestCLI(t)
	require.NoError(t, AddContactCommand(s, []string{"--name", "Ben Wyatt"}))
	c, ok := contactByName(s, "Ben Wyatt")
	require.True(t, ok)

	require.NoError(t, UpdateContactCommand(s, []string{"--role", "Accountant", c.ID}))

	updated, ok := s.ContactByID(c.ID)
	require.True(t, ok)
	assert.Equal(t, "Accountant", updated.Role)
	assert.Equal(t, "Ben Wyatt", updated.Name)
}

func TestDeleteContactCommand(t *testing.T) {
	s := setupTestCLI(t)
	require.NoError(t, AddContactCommand(s, []string{"--name", "Temp Contact"}))
	c, ok := contactByName(s, "Temp Contact")
	require.True(t, ok)

	require.NoError(t, DeleteContactCommand(s, []string{c.ID}))
	_, ok = s.ContactByID(c.ID)
	assert.False(t, ok)
}

func TestFavoriteContactCommand(t *testing.T) {
	s := setupTestCLI(t)
	require.NoError(t, AddContactCommand(s, []string{"--name", "Fav Target"}))
	c, _ := contactByName(s, "Fav Target")

	require.NoError(t, FavoriteContactCommand(s, []string{c.ID}))
	updated, _ := s.ContactByID(c.ID)
	assert.True(t, updated.IsFavorite)
}

func TestTagContactCommand(t *testing.T) {
	s := setupTestCLI(t)
	require.NoError(t, AddContactCommand(s, []string{"--name", "Tag Target"}))
	c, _ := contactByName(s, "Tag Target")

	require.NoError(t, TagContactCommand(s, []string{c.ID, "vip"}))
	updated, _ := s.ContactByID(c.ID)
	assert.Contains(t, updated.Tags, "vip")

	require.NoError(t, TagContactCommand(s, []string{"--remove", c.ID, "vip"}))
	updated, _ = s.ContactByID(c.ID)
	assert.NotContains(t, updated.Tags, "vip")
}
