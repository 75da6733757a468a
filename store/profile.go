// ABOUTME: Profile and settings operations on the entity store
// ABOUTME: The profile singleton stays in sync with its mirrored contact entry
package store

import "github.com/paradiigm/cardstack/models"

// Profile returns the user's own contact card.
func (s *Store) Profile() models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UpdateProfile replaces the profile. When a contact with the profile's id
// exists in the contacts collection (the mirror used for public-handle
// lookup), that entry is replaced too so both views stay consistent.
func (s *Store) UpdateProfile(p models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = p
	s.persistProfile()

	for i := range s.contacts {
		if s.contacts[i].ID == p.ID {
			s.contacts[i] = p
			s.persistContacts()
			return
		}
	}
}

// Settings returns the current installation settings.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the settings record.
func (s *Store) UpdateSettings(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	s.persistSettings()
}
