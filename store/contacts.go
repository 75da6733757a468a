// ABOUTME: Contact operations on the entity store
// ABOUTME: Save resolves companies by name; bulk delete protects featured contacts
package store

import (
	"strings"

	"github.com/paradiigm/cardstack/models"
)

// SaveContact assigns a fresh id and prepends the contact. A non-empty
// free-text company name is resolved to a Company entity, creating one when
// no case-insensitive match exists, and the resulting id is attached.
func (s *Store) SaveContact(c models.Contact) models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name := strings.TrimSpace(c.Company); name != "" {
		company, created := s.findOrCreateCompany(name)
		c.CompanyID = company.ID
		if created {
			s.persistCompanies()
		}
	}

	c.ID = models.NewID(models.PrefixContact)
	c.Tags = dedupe(c.Tags)

	s.contacts = append([]models.Contact{c}, s.contacts...)
	s.persistContacts()
	return c
}

// UpdateContact replaces the contact matching by id. Unknown ids are a
// silent no-op.
func (s *Store) UpdateContact(c models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == c.ID {
			c.Tags = dedupe(c.Tags)
			s.contacts[i] = c
			s.persistContacts()
			return
		}
	}
}

// DeleteContact removes a single contact by id. List membership is not
// pruned here; only BulkDeleteContacts does that.
func (s *Store) DeleteContact(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			s.persistContacts()
			return
		}
	}
}

// BulkDeleteContacts removes the given contacts and prunes them from every
// list. Featured contacts are silently excluded from the deletion.
func (s *Store) BulkDeleteContacts(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		for i := range s.contacts {
			if s.contacts[i].ID == id {
				if !s.contacts[i].Featured {
					doomed[id] = struct{}{}
				}
				break
			}
		}
	}
	if len(doomed) == 0 {
		return
	}

	kept := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if _, gone := doomed[c.ID]; !gone {
			kept = append(kept, c)
		}
	}
	s.contacts = kept

	for i := range s.lists {
		pruned := make([]string, 0, len(s.lists[i].ContactIDs))
		for _, id := range s.lists[i].ContactIDs {
			if _, gone := doomed[id]; !gone {
				pruned = append(pruned, id)
			}
		}
		s.lists[i].ContactIDs = pruned
	}

	s.persistContacts()
	s.persistLists()
}

// ToggleFavorite flips the favorite flag on a contact.
func (s *Store) ToggleFavorite(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts[i].IsFavorite = !s.contacts[i].IsFavorite
			s.persistContacts()
			return
		}
	}
}

// ToggleHideContact flips the archive flag on a contact.
func (s *Store) ToggleHideContact(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts[i].Hidden = !s.contacts[i].Hidden
			s.persistContacts()
			return
		}
	}
}

// BulkAddToFavorites marks every listed contact as a favorite.
func (s *Store) BulkAddToFavorites(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		member[id] = struct{}{}
	}

	changed := false
	for i := range s.contacts {
		if _, ok := member[s.contacts[i].ID]; ok && !s.contacts[i].IsFavorite {
			s.contacts[i].IsFavorite = true
			changed = true
		}
	}
	if changed {
		s.persistContacts()
	}
}

// AddContactTag appends a tag to a contact. Tags are a set: adding a tag
// already present is a no-op.
func (s *Store) AddContactTag(id, tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID != id {
			continue
		}
		for _, existing := range s.contacts[i].Tags {
			if existing == tag {
				return
			}
		}
		s.contacts[i].Tags = append(s.contacts[i].Tags, tag)
		s.persistContacts()
		return
	}
}

// RemoveContactTag removes a tag from a contact.
func (s *Store) RemoveContactTag(id, tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID != id {
			continue
		}
		for j, existing := range s.contacts[i].Tags {
			if existing == tag {
				s.contacts[i].Tags = append(s.contacts[i].Tags[:j], s.contacts[i].Tags[j+1:]...)
				s.persistContacts()
				return
			}
		}
		return
	}
}

// Contacts returns a copy of the contacts collection in display order.
func (s *Store) Contacts() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Contact(nil), s.contacts...)
}

// ContactByID looks up a contact.
func (s *Store) ContactByID(id string) (models.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

// ContactByHandle resolves a contact by its public profile slug.
func (s *Store) ContactByHandle(handle string) (models.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.contacts {
		if c.Handle != "" && c.Handle == handle {
			return c, true
		}
	}
	return models.Contact{}, false
}

// ContactsByCompanyID returns every contact referencing the company.
func (s *Store) ContactsByCompanyID(companyID string) []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Contact
	for _, c := range s.contacts {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out
}

// AllTags returns the distinct tags across all contacts, first-seen order.
func (s *Store) AllTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []string
	for _, c := range s.contacts {
		all = append(all, c.Tags...)
	}
	return dedupe(all)
}
