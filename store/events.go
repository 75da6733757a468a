// ABOUTME: Event operations on the entity store
// ABOUTME: Deleting an event strips its links from every contact
package store

import "github.com/paradiigm/cardstack/models"

// CreateEvent assigns a fresh id and prepends the event.
func (s *Store) CreateEvent(details models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	details.ID = models.NewID(models.PrefixEvent)
	s.events = append([]models.Event{details}, s.events...)
	s.persistEvents()
	return details
}

// UpdateEvent replaces the event matching by id. Unknown ids are a silent
// no-op.
func (s *Store) UpdateEvent(e models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e
			s.persistEvents()
			return
		}
	}
}

// DeleteEvent removes the event and filters any link to it out of every
// contact's event links. Other links are preserved unchanged.
func (s *Store) DeleteEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}

	unlinked := false
	for i := range s.contacts {
		// Fresh slice: the old backing array may be shared with snapshots
		// handed out by the accessors.
		kept := make([]models.EventLink, 0, len(s.contacts[i].EventLinks))
		for _, link := range s.contacts[i].EventLinks {
			if link.EventID != id {
				kept = append(kept, link)
			} else {
				unlinked = true
			}
		}
		s.contacts[i].EventLinks = kept
	}

	s.persistEvents()
	if unlinked {
		s.persistContacts()
	}
}

// ToggleHideEvent flips the archive flag on an event.
func (s *Store) ToggleHideEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Hidden = !s.events[i].Hidden
			s.persistEvents()
			return
		}
	}
}

// Events returns a copy of the events collection in display order.
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Event(nil), s.events...)
}

// EventByID looks up an event.
func (s *Store) EventByID(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}
