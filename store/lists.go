// ABOUTME: Contact list operations on the entity store
// ABOUTME: Membership is a set: unions never introduce duplicate ids
package store

import "github.com/paradiigm/cardstack/models"

// CreateList assigns a fresh id and timestamps and prepends the list.
// Duplicate contact ids in the input are collapsed.
func (s *Store) CreateList(details models.ContactList) models.ContactList {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := models.NowISO()
	details.ID = models.NewID(models.PrefixList)
	details.CreatedAt = now
	details.UpdatedAt = now
	details.ContactIDs = dedupe(details.ContactIDs)

	s.lists = append([]models.ContactList{details}, s.lists...)
	s.persistLists()
	return details
}

// UpdateList replaces the list matching by id and bumps its updated
// timestamp. Unknown ids are a silent no-op.
func (s *Store) UpdateList(l models.ContactList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID == l.ID {
			l.UpdatedAt = models.NowISO()
			l.ContactIDs = dedupe(l.ContactIDs)
			s.lists[i] = l
			s.persistLists()
			return
		}
	}
}

// DeleteList removes a list by id.
func (s *Store) DeleteList(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID == id {
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			s.persistLists()
			return
		}
	}
}

// AddContactsToList unions the given contact ids into the list's membership,
// preserving existing order and skipping ids already present.
func (s *Store) AddContactsToList(listID string, contactIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID != listID {
			continue
		}
		s.lists[i].ContactIDs = dedupe(append(s.lists[i].ContactIDs, contactIDs...))
		s.lists[i].UpdatedAt = models.NowISO()
		s.persistLists()
		return
	}
}

// RemoveContactFromList filters a single contact id out of the list.
func (s *Store) RemoveContactFromList(listID, contactID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID != listID {
			continue
		}
		kept := make([]string, 0, len(s.lists[i].ContactIDs))
		for _, id := range s.lists[i].ContactIDs {
			if id != contactID {
				kept = append(kept, id)
			}
		}
		s.lists[i].ContactIDs = kept
		s.lists[i].UpdatedAt = models.NowISO()
		s.persistLists()
		return
	}
}

// Lists returns a copy of the lists collection in display order.
func (s *Store) Lists() []models.ContactList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ContactList(nil), s.lists...)
}

// ListByID looks up a list.
func (s *Store) ListByID(id string) (models.ContactList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.lists {
		if l.ID == id {
			return l, true
		}
	}
	return models.ContactList{}, false
}
