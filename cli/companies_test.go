// ABOUTME: Tests for company CLI commands
// ABOUTME: Validates flag handling, listing, and deletion behavior
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradiigm/cardstack/storage"
	"github.com/paradiigm/cardstack/store"
)

func setupTestCLI(t *testing.T) *store.Store {
	t.Helper()
	kv, err := storage.OpenBadger("", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return store.Open(kv)
}

func TestAddCompanyCommand(t *testing.T) {
	s := setupTestCLI(t)

	err := AddCompanyCommand(s, []string{
		"--name", "Globex",
		"--description", "Industrial conglomerate",
		"--website", "https://globex.example.com",
		"--location", "Cypress Creek",
	})
	require.NoError(t, err)

	var found bool
	for _, c := range s.Companies() {
		if c.Name == "Globex" {
			found = true
			assert.Equal(t, "Industrial conglomerate", c.Description)
			assert.Equal(t, "https://globex.example.com", c.Website)
			assert.Equal(t, "Cypress Creek", c.Location)
		}
	}
	assert.True(t, found)
}

func TestAddCompanyCommandRequiresName(t *testing.T) {
	s := setupTestCLI(t)

	err := AddCompanyCommand(s, []string{"--website", "https://example.com"})
	assert.Error(t, err)
}

func TestListCompaniesCommand(t *testing.T) {
	s := setupTestCLI(t)

	err := ListCompaniesCommand(s, []string{})
	assert.NoError(t, err)
}

func TestDeleteCompanyCommand(t *testing.T) {
	s := setupTestCLI(t)
	require.NoError(t, AddCompanyCommand(s, []string{"--name", "Initech"}))

	var id string
	for _, c := range s.Companies() {
		if c.Name == "Initech" {
			id = c.ID
		}
	}
	require.NotEmpty(t, id)

	require.NoError(t, DeleteCompanyCommand(s, []string{id}))
	_, ok := s.CompanyByID(id)
	assert.False(t, ok)
}

func TestDeleteCompanyCommandUnknownID(t *testing.T) {
	s := setupTestCLI(t)

	err := DeleteCompanyCommand(s, []string{"company_nope"})
	assert.Error(t, err)
}
