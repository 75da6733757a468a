// ABOUTME: Schema migration and hydration for the persisted dataset
// ABOUTME: Tagged version steps bring stored collections up to the current shape
package migrate

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/storage"
)

// CurrentVersion is the schema version this build reads and writes.
// Versions are totally ordered strings; an absent marker means "1".
const CurrentVersion = "3"

// Snapshot is the fully hydrated dataset handed to the entity store.
type Snapshot struct {
	Contacts  []models.Contact
	Events    []models.Event
	Profile   models.Contact
	Companies []models.Company
	Lists     []models.ContactList
	Settings  models.Settings
}

// step transforms a snapshot from one schema version to the next. Adding a
// future version "4" means appending one entry here.
type step struct {
	from, to string
	apply    func(*Snapshot)
}

var steps = []step{
	{from: "1", to: "2", apply: stepSeedContacts},
	{from: "2", to: "3", apply: stepNormalizeCompanies},
}

// stepSeedContacts discards whatever was stored before versioning existed and
// installs the built-in seed contacts.
func stepSeedContacts(s *Snapshot) {
	s.Contacts = models.SeedContacts()
}

// stepNormalizeCompanies converts free-text company names into Company
// entities. One company per distinct trimmed name, compared
// case-insensitively, with the featured company always present. Events and
// the profile are replaced with the current defaults.
func stepNormalizeCompanies(s *Snapshot) {
	featured := models.FeaturedCompany()
	companies := []models.Company{featured}
	index := map[string]string{strings.ToLower(featured.Name): featured.ID}

	for _, c := range s.Contacts {
		name := strings.TrimSpace(c.Company)
		if name == "" {
			continue
		}
		if _, ok := index[strings.ToLower(name)]; ok {
			continue
		}
		now := models.NowISO()
		company := models.Company{
			ID:        models.NewID(models.PrefixCompany),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		companies = append(companies, company)
		index[strings.ToLower(name)] = company.ID
	}

	for i, c := range s.Contacts {
		name := strings.TrimSpace(c.Company)
		if name == "" {
			continue
		}
		if id, ok := index[strings.ToLower(name)]; ok {
			s.Contacts[i].CompanyID = id
		}
	}

	s.Companies = companies
	s.Events = models.SeedEvents()
	s.Profile = models.InitialProfile()
}

// Detect reads the stored schema version marker. An absent or unreadable
// marker is treated as the oldest version.
func Detect(kv storage.KV) string {
	raw, err := kv.Get(storage.KeyDataVersion)
	if err != nil {
		return "1"
	}
	return string(raw)
}

// Defaults returns the complete built-in dataset used for fresh state and as
// the fallback when stored data cannot be read.
func Defaults() *Snapshot {
	return &Snapshot{
		Contacts:  models.SeedContacts(),
		Events:    models.SeedEvents(),
		Profile:   models.InitialProfile(),
		Companies: []models.Company{models.FeaturedCompany()},
		Lists:     []models.ContactList{},
		Settings:  models.DefaultSettings(),
	}
}

// Load hydrates the dataset from kv, migrating outdated schema versions and
// merging stored settings onto defaults. It never fails: any error during
// the load sequence logs once and falls back to the built-in defaults.
func Load(kv storage.KV) *Snapshot {
	snap, err := load(kv)
	if err != nil {
		log.Printf("failed to hydrate state, falling back to defaults: %v", err)
		return Defaults()
	}
	return snap
}

func load(kv storage.KV) (*Snapshot, error) {
	snap := &Snapshot{Lists: []models.ContactList{}}

	version := Detect(kv)
	if version != CurrentVersion {
		log.Printf("migrating stored data from version %q to %q", version, CurrentVersion)

		// Only a version-2 store has contacts worth carrying forward;
		// anything older is replaced by the seed step.
		contacts, err := readContacts(kv)
		if err != nil {
			return nil, err
		}
		snap.Contacts = contacts

		applied := false
		for _, st := range steps {
			if st.from == version || applied {
				st.apply(snap)
				version = st.to
				applied = true
			}
		}
		if !applied {
			// Unknown future marker: treat like a fresh install
			for _, st := range steps {
				st.apply(snap)
			}
		}

		if err := persistMigrated(kv, snap); err != nil {
			return nil, err
		}
	} else {
		if err := readCurrent(kv, snap); err != nil {
			return nil, err
		}
	}

	settings, err := mergeSettings(kv)
	if err != nil {
		return nil, err
	}
	snap.Settings = settings

	return snap, nil
}

// readContacts loads the raw contacts collection, defaulting to the seed set
// when nothing is stored.
func readContacts(kv storage.KV) ([]models.Contact, error) {
	raw, err := kv.Get(storage.KeyContacts)
	if err == storage.ErrNotFound {
		return models.SeedContacts(), nil
	}
	if err != nil {
		return nil, err
	}

	var contacts []models.Contact
	if err := json.Unmarshal(raw, &contacts); err != nil {
		return nil, fmt.Errorf("corrupt contacts collection: %w", err)
	}
	return contacts, nil
}

// readCurrent loads every collection of an up-to-date store. Companies are
// defensively re-seeded with the featured company when empty, independent of
// migration history.
func readCurrent(kv storage.KV, snap *Snapshot) error {
	if err := readJSON(kv, storage.KeyContacts, &snap.Contacts); err != nil {
		return err
	}
	if snap.Contacts == nil {
		snap.Contacts = models.SeedContacts()
	}

	if err := readJSON(kv, storage.KeyEvents, &snap.Events); err != nil {
		return err
	}
	if snap.Events == nil {
		snap.Events = models.SeedEvents()
	}

	profile := models.InitialProfile()
	found, err := readJSONValue(kv, storage.KeyProfile, &profile)
	if err != nil {
		return err
	}
	if !found {
		profile = models.InitialProfile()
	}
	snap.Profile = profile

	if err := readJSON(kv, storage.KeyCompanies, &snap.Companies); err != nil {
		return err
	}
	if len(snap.Companies) == 0 {
		snap.Companies = []models.Company{models.FeaturedCompany()}
	}

	if err := readJSON(kv, storage.KeyLists, &snap.Lists); err != nil {
		return err
	}
	if snap.Lists == nil {
		snap.Lists = []models.ContactList{}
	}

	return nil
}

// mergeSettings shallow-merges stored settings onto the hardcoded defaults.
// Unmarshaling into a prefilled struct only overwrites keys present in the
// stored JSON, which also merges notification preferences one level deep.
func mergeSettings(kv storage.KV) (models.Settings, error) {
	settings := models.DefaultSettings()

	raw, err := kv.Get(storage.KeySettings)
	if err == storage.ErrNotFound {
		return settings, nil
	}
	if err != nil {
		return settings, err
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.DefaultSettings(), fmt.Errorf("corrupt settings: %w", err)
	}
	return settings, nil
}

// persistMigrated writes the migrated collections and the version marker.
func persistMigrated(kv storage.KV, snap *Snapshot) error {
	if err := writeJSON(kv, storage.KeyContacts, snap.Contacts); err != nil {
		return err
	}
	if err := writeJSON(kv, storage.KeyCompanies, snap.Companies); err != nil {
		return err
	}
	if err := writeJSON(kv, storage.KeyEvents, snap.Events); err != nil {
		return err
	}
	if err := writeJSON(kv, storage.KeyProfile, snap.Profile); err != nil {
		return err
	}
	return kv.Set(storage.KeyDataVersion, []byte(CurrentVersion))
}

func readJSON(kv storage.KV, key string, out interface{}) error {
	raw, err := kv.Get(key)
	if err == storage.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("corrupt collection %s: %w", key, err)
	}
	return nil
}

func readJSONValue(kv storage.KV, key string, out interface{}) (bool, error) {
	raw, err := kv.Get(key)
	if err == storage.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("corrupt collection %s: %w", key, err)
	}
	return true, nil
}

func writeJSON(kv storage.KV, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(key, data)
}
