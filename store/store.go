// ABOUTME: In-memory entity store backed by the persistence adapter
// ABOUTME: Owns the six collections and writes each back after every mutation
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/paradiigm/cardstack/migrate"
	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/storage"
)

// Store is the authoritative in-memory state for a running session. All
// mutations go through its methods; after each one the touched collection is
// serialized back through the persistence adapter. A failed write warns once
// and leaves memory authoritative.
type Store struct {
	mu   sync.RWMutex
	kv   storage.KV
	warn func(msg string)

	contacts  []models.Contact
	events    []models.Event
	profile   models.Contact
	companies []models.Company
	lists     []models.ContactList
	settings  models.Settings
}

// Open hydrates a store from kv, running schema migrations first. It never
// fails; unreadable data falls back to the built-in defaults.
func Open(kv storage.KV) *Store {
	s := New(kv, migrate.Load(kv))

	// The merged settings are written back so new keys introduced by this
	// build are durable for old installations.
	s.mu.Lock()
	s.persistSettings()
	s.mu.Unlock()

	return s
}

// New builds a store around an already-hydrated snapshot. Tests use this to
// construct isolated instances without touching migration.
func New(kv storage.KV, snap *migrate.Snapshot) *Store {
	return &Store{
		kv:        kv,
		warn:      func(msg string) { log.Print(msg) },
		contacts:  snap.Contacts,
		events:    snap.Events,
		profile:   snap.Profile,
		companies: snap.Companies,
		lists:     snap.Lists,
		settings:  snap.Settings,
	}
}

// OnStorageWarning installs the hook invoked once per failed write. The
// default logs; a UI consumer can surface an alert instead.
func (s *Store) OnStorageWarning(fn func(msg string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn != nil {
		s.warn = fn
	}
}

// Reset discards all user data and reinstalls the seed dataset. Settings are
// deliberately kept, matching the application's reset behavior.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{
		storage.KeyContacts, storage.KeyEvents, storage.KeyProfile,
		storage.KeyCompanies, storage.KeyLists,
	} {
		if err := s.kv.Delete(key); err != nil {
			s.warn(fmt.Sprintf("failed to clear %s: %v", key, err))
		}
	}

	s.contacts = models.SeedContacts()
	s.events = models.SeedEvents()
	s.profile = models.InitialProfile()
	s.companies = []models.Company{}
	s.lists = []models.ContactList{}

	if err := s.kv.Set(storage.KeyDataVersion, []byte(migrate.CurrentVersion)); err != nil {
		s.warn(fmt.Sprintf("failed to write version marker: %v", err))
	}
	s.persistContacts()
	s.persistEvents()
	s.persistProfile()
	s.persistCompanies()
	s.persistLists()
}

// persist serializes one collection and writes it through the adapter.
// Quota failures warn exactly once per write; in-memory state is never
// rolled back. Callers must hold the write lock.
func (s *Store) persist(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.warn(fmt.Sprintf("failed to serialize %s: %v", key, err))
		return
	}

	if err := s.kv.Set(key, data); err != nil {
		if errors.Is(err, storage.ErrQuotaExceeded) {
			s.warn("Storage is full. Data could not be saved. Please delete old data or clear storage.")
		} else {
			s.warn(fmt.Sprintf("failed to save %s: %v", key, err))
		}
	}
}

func (s *Store) persistContacts()  { s.persist(storage.KeyContacts, s.contacts) }
func (s *Store) persistEvents()    { s.persist(storage.KeyEvents, s.events) }
func (s *Store) persistProfile()   { s.persist(storage.KeyProfile, s.profile) }
func (s *Store) persistSettings()  { s.persist(storage.KeySettings, s.settings) }
func (s *Store) persistCompanies() { s.persist(storage.KeyCompanies, s.companies) }
func (s *Store) persistLists()     { s.persist(storage.KeyLists, s.lists) }

// dedupe returns values with duplicates removed, preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
