// ABOUTME: Company operations on the entity store
// ABOUTME: Name lookup is trimmed and case-insensitive; deletion detaches contacts
package store

import (
	"strings"

	"github.com/paradiigm/cardstack/models"
)

// CreateCompany assigns a fresh id and timestamps and prepends the company.
func (s *Store) CreateCompany(details models.Company) models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := models.NowISO()
	details.ID = models.NewID(models.PrefixCompany)
	details.CreatedAt = now
	details.UpdatedAt = now

	s.companies = append([]models.Company{details}, s.companies...)
	s.persistCompanies()
	return details
}

// UpdateCompany replaces the company matching by id and bumps its updated
// timestamp. Unknown ids are a silent no-op.
func (s *Store) UpdateCompany(c models.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.companies {
		if s.companies[i].ID == c.ID {
			c.UpdatedAt = models.NowISO()
			s.companies[i] = c
			s.persistCompanies()
			return
		}
	}
}

// DeleteCompany removes the company and clears CompanyID on every contact
// that referenced it. The contacts' free-text company name is left as is.
func (s *Store) DeleteCompany(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.companies {
		if s.companies[i].ID == id {
			s.companies = append(s.companies[:i], s.companies[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}

	detached := false
	for i := range s.contacts {
		if s.contacts[i].CompanyID == id {
			s.contacts[i].CompanyID = ""
			detached = true
		}
	}

	s.persistCompanies()
	if detached {
		s.persistContacts()
	}
}

// ToggleFavoriteCompany flips the favorite flag on a company.
func (s *Store) ToggleFavoriteCompany(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.companies {
		if s.companies[i].ID == id {
			s.companies[i].IsFavorite = !s.companies[i].IsFavorite
			s.persistCompanies()
			return
		}
	}
}

// ToggleHideCompany flips the archive flag on a company.
func (s *Store) ToggleHideCompany(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.companies {
		if s.companies[i].ID == id {
			s.companies[i].Hidden = !s.companies[i].Hidden
			s.persistCompanies()
			return
		}
	}
}

// FindOrCreateCompanyByName returns the company whose name matches the
// trimmed, case-insensitive input, creating it when absent.
func (s *Store) FindOrCreateCompanyByName(name string) models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	company, created := s.findOrCreateCompany(strings.TrimSpace(name))
	if created {
		s.persistCompanies()
	}
	return company
}

// findOrCreateCompany is the lock-held implementation shared with
// SaveContact. name must already be trimmed.
func (s *Store) findOrCreateCompany(name string) (models.Company, bool) {
	lower := strings.ToLower(name)
	for _, c := range s.companies {
		if strings.ToLower(c.Name) == lower {
			return c, false
		}
	}

	now := models.NowISO()
	company := models.Company{
		ID:        models.NewID(models.PrefixCompany),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.companies = append([]models.Company{company}, s.companies...)
	return company, true
}

// Companies returns a copy of the companies collection in display order.
func (s *Store) Companies() []models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Company(nil), s.companies...)
}

// CompanyByID looks up a company.
func (s *Store) CompanyByID(id string) (models.Company, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.companies {
		if c.ID == id {
			return c, true
		}
	}
	return models.Company{}, false
}
