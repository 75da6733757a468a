// ABOUTME: Tests for TUI view rendering
// ABOUTME: Verifies list tables and detail views render store data
package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/storage"
	"github.com/paradiigm/cardstack/store"
)

func setupTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	kv, err := storage.OpenBadger("", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	s := store.Open(kv)
	return NewModel(s), s
}

func TestListViewRendersAllTabs(t *testing.T) {
	m, _ := setupTestModel(t)

	for _, entity := range []EntityType{EntityContacts, EntityCompanies, EntityEvents, EntityLists} {
		m.entityType = entity
		output := m.View()
		require.NotEmpty(t, output)
	}
}

func TestCompaniesTableShowsLocation(t *testing.T) {
	m, s := setupTestModel(t)
	s.CreateCompany(models.Company{Name: "Globex", Location: "Cypress Creek"})

	m.entityType = EntityCompanies
	output := m.renderCompaniesTable()

	assert.Contains(t, output, "Globex")
	assert.Contains(t, output, "Cypress Creek")
}

func TestContactDetailRendersWebsites(t *testing.T) {
	m, s := setupTestModel(t)
	c := s.SaveContact(models.Contact{
		Name:     "Ann Perkins",
		Websites: []string{"https://ann.example.com", "https://health.example.com"},
	})

	m.viewMode = ViewDetail
	m.entityType = EntityContacts
	m.selectedID = c.ID
	output := m.View()

	assert.Contains(t, output, "Ann Perkins")
	assert.Contains(t, output, "https://ann.example.com, https://health.example.com")
}

func TestCompanyDetailRendersDescription(t *testing.T) {
	m, s := setupTestModel(t)
	co := s.CreateCompany(models.Company{
		Name:        "Globex",
		Description: "Industrial conglomerate",
		Location:    "Cypress Creek",
	})

	m.viewMode = ViewDetail
	m.entityType = EntityCompanies
	m.selectedID = co.ID
	output := m.View()

	assert.Contains(t, output, "Industrial conglomerate")
	assert.Contains(t, output, "Cypress Creek")
}

func TestDetailViewUnknownID(t *testing.T) {
	m, _ := setupTestModel(t)

	m.viewMode = ViewDetail
	m.entityType = EntityContacts
	m.selectedID = "contact_nope"

	assert.Contains(t, m.View(), "not found")
}
