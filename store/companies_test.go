// ABOUTME: Tests for company operations
// ABOUTME: Validates timestamps, de-duplication, and contact detachment on delete
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradiigm/cardstack/models"
)

func TestCreateCompany(t *testing.T) {
	s, _ := newTestStore(t)

	company := s.CreateCompany(models.Company{Name: "Acme", Description: "Tech"})

	assert.NotEmpty(t, company.ID)
	assert.NotEmpty(t, company.CreatedAt)
	assert.Equal(t, company.CreatedAt, company.UpdatedAt)
	assert.Equal(t, company.ID, s.Companies()[0].ID)
}

func TestUpdateCompanyBumpsTimestamp(t *testing.T) {
	s, _ := newTestStore(t)

	company := s.CreateCompany(models.Company{Name: "Acme"})
	company.Name = "Acme Corp"
	s.UpdateCompany(company)

	got, ok := s.CompanyByID(company.ID)
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.NotEmpty(t, got.UpdatedAt)
}

func TestDeleteCompanyDetachesContacts(t *testing.T) {
	s, _ := newTestStore(t)

	contact := s.SaveContact(models.Contact{Name: "Ann", Company: "Acme"})
	require.NotEmpty(t, contact.CompanyID)

	s.DeleteCompany(contact.CompanyID)

	_, ok := s.CompanyByID(contact.CompanyID)
	assert.False(t, ok)

	// The contact survives with its free-text name, but no dangling link
	got, ok := s.ContactByID(contact.ID)
	require.True(t, ok)
	assert.Empty(t, got.CompanyID)
	assert.Equal(t, "Acme", got.Company)
}

func TestDeleteCompanyUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	before := len(s.Companies())
	s.DeleteCompany("nope")
	assert.Len(t, s.Companies(), before)
}

func TestFindOrCreateCompanyByName(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.FindOrCreateCompanyByName("Globex")
	second := s.FindOrCreateCompanyByName("  gLoBeX ")
	assert.Equal(t, first.ID, second.ID)

	// The featured seed company matches too
	featured := s.FindOrCreateCompanyByName("paradiigm llc")
	assert.Equal(t, models.FeaturedCompanyID, featured.ID)
}

func TestToggleCompanyFlags(t *testing.T) {
	s, _ := newTestStore(t)

	company := s.CreateCompany(models.Company{Name: "Acme"})

	s.ToggleFavoriteCompany(company.ID)
	got, _ := s.CompanyByID(company.ID)
	assert.True(t, got.IsFavorite)

	s.ToggleHideCompany(company.ID)
	got, _ = s.CompanyByID(company.ID)
	assert.True(t, got.Hidden)
}
