// ABOUTME: Tests for schema version detection and migration
// ABOUTME: Covers fresh installs, legacy upgrades, and corrupt-data fallback
package migrate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/storage"
)

func newTestKV(t *testing.T) storage.KV {
	t.Helper()
	kv, err := storage.OpenBadger("", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func writeCollection(t *testing.T, kv storage.KV, key string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, kv.Set(key, data))
}

func TestDetect(t *testing.T) {
	kv := newTestKV(t)

	// An absent marker means the oldest version
	assert.Equal(t, "1", Detect(kv))

	require.NoError(t, kv.Set(storage.KeyDataVersion, []byte("2")))
	assert.Equal(t, "2", Detect(kv))
}

func TestLoadFreshInstall(t *testing.T) {
	kv := newTestKV(t)

	snap := Load(kv)

	require.Len(t, snap.Contacts, 2)
	assert.Equal(t, models.FeaturedContactID, snap.Contacts[0].ID)
	assert.Equal(t, models.ProfileID, snap.Contacts[1].ID)
	assert.Equal(t, models.ProfileID, snap.Profile.ID)

	require.Len(t, snap.Events, 1)
	assert.Equal(t, models.SeedEventID, snap.Events[0].ID)

	require.Len(t, snap.Companies, 1)
	assert.Equal(t, models.FeaturedCompanyID, snap.Companies[0].ID)
	assert.True(t, snap.Companies[0].Featured)

	assert.Empty(t, snap.Lists)
	assert.Equal(t, models.DefaultSettings(), snap.Settings)

	// The migrated data and marker are durable
	marker, err := kv.Get(storage.KeyDataVersion)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, string(marker))

	var stored []models.Contact
	raw, err := kv.Get(storage.KeyContacts)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Len(t, stored, 2)
}

func TestLoadVersion2Upgrade(t *testing.T) {
	kv := newTestKV(t)

	contacts := []models.Contact{
		{ID: "c1", Name: "Ann", Company: "Acme Inc"},
		{ID: "c2", Name: "Ben", Company: "acme inc"},
		{ID: "c3", Name: "Cay", Company: "  Globex  "},
		{ID: "c4", Name: "Dee", Company: ""},
	}
	writeCollection(t, kv, storage.KeyContacts, contacts)
	require.NoError(t, kv.Set(storage.KeyDataVersion, []byte("2")))

	snap := Load(kv)

	// Stored contacts survive the upgrade
	require.Len(t, snap.Contacts, 4)
	assert.Equal(t, "Ann", snap.Contacts[0].Name)

	// One company per distinct trimmed case-insensitive name, plus the
	// featured company first
	require.Len(t, snap.Companies, 3)
	assert.Equal(t, "Paradiigm LLC", snap.Companies[0].Name)
	assert.Equal(t, "Acme Inc", snap.Companies[1].Name)
	assert.Equal(t, "Globex", snap.Companies[2].Name)

	// Both spellings of Acme resolve to the same entity
	assert.Equal(t, snap.Contacts[0].CompanyID, snap.Contacts[1].CompanyID)
	assert.Equal(t, snap.Companies[1].ID, snap.Contacts[0].CompanyID)
	assert.Equal(t, snap.Companies[2].ID, snap.Contacts[2].CompanyID)
	assert.Empty(t, snap.Contacts[3].CompanyID)

	// Events and profile are replaced with the current defaults
	require.Len(t, snap.Events, 1)
	assert.Equal(t, models.SeedEventID, snap.Events[0].ID)
	assert.Equal(t, models.ProfileID, snap.Profile.ID)

	marker, err := kv.Get(storage.KeyDataVersion)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, string(marker))
}

func TestLoadVersion1ReplacesContacts(t *testing.T) {
	kv := newTestKV(t)

	// Pre-versioning data is discarded in favor of the seeds
	writeCollection(t, kv, storage.KeyContacts, []models.Contact{
		{ID: "old", Name: "Forgotten"},
	})

	snap := Load(kv)

	require.Len(t, snap.Contacts, 2)
	assert.Equal(t, models.FeaturedContactID, snap.Contacts[0].ID)
}

func TestLoadUnknownMarkerAppliesAllSteps(t *testing.T) {
	kv := newTestKV(t)

	writeCollection(t, kv, storage.KeyContacts, []models.Contact{
		{ID: "c1", Name: "Ann", Company: "Acme"},
	})
	require.NoError(t, kv.Set(storage.KeyDataVersion, []byte("weird")))

	snap := Load(kv)

	// Treated like a fresh install: seeds win
	require.Len(t, snap.Contacts, 2)
	assert.Equal(t, models.FeaturedContactID, snap.Contacts[0].ID)
	assert.Equal(t, CurrentVersion, Detect(kv))
}

func TestLoadCurrentVersionReadsStored(t *testing.T) {
	kv := newTestKV(t)

	contacts := []models.Contact{{ID: "c1", Name: "Ann"}}
	companies := []models.Company{{ID: "co1", Name: "Acme"}}
	lists := []models.ContactList{{ID: "l1", Name: "VIPs", ContactIDs: []string{"c1"}}}
	writeCollection(t, kv, storage.KeyContacts, contacts)
	writeCollection(t, kv, storage.KeyCompanies, companies)
	writeCollection(t, kv, storage.KeyLists, lists)
	require.NoError(t, kv.Set(storage.KeyDataVersion, []byte(CurrentVersion)))

	snap := Load(kv)

	require.Len(t, snap.Contacts, 1)
	assert.Equal(t, "Ann", snap.Contacts[0].Name)
	require.Len(t, snap.Companies, 1)
	assert.Equal(t, "Acme", snap.Companies[0].Name)
	require.Len(t, snap.Lists, 1)
	assert.Equal(t, []string{"c1"}, snap.Lists[0].ContactIDs)

	// Absent events fall back to seeds
	require.Len(t, snap.Events, 1)
	assert.Equal(t, models.SeedEventID, snap.Events[0].ID)
}

func TestLoadReseedsEmptyCompanies(t *testing.T) {
	kv := newTestKV(t)

	writeCollection(t, kv, storage.KeyCompanies, []models.Company{})
	require.NoError(t, kv.Set(storage.KeyDataVersion, []byte(CurrentVersion)))

	snap := Load(kv)

	require.Len(t, snap.Companies, 1)
	assert.Equal(t, models.FeaturedCompanyID, snap.Companies[0].ID)
}

func TestLoadIdempotent(t *testing.T) {
	kv := newTestKV(t)

	first := Load(kv)

	// The second load must not migrate again or change what is stored
	assert.Equal(t, CurrentVersion, Detect(kv))
	second := Load(kv)

	require.Len(t, second.Contacts, len(first.Contacts))
	for i := range first.Contacts {
		assert.Equal(t, first.Contacts[i].ID, second.Contacts[i].ID)
	}
	assert.Equal(t, first.Events, second.Events)
	assert.Equal(t, first.Profile.ID, second.Profile.ID)
	assert.Equal(t, first.Settings, second.Settings)

	require.Len(t, second.Companies, 1)
	assert.Equal(t, first.Companies[0].ID, second.Companies[0].ID)
}

func TestLoadCorruptDataFallsBackToDefaults(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Set(storage.KeyContacts, []byte("{not json")))
	require.NoError(t, kv.Set(storage.KeyDataVersion, []byte(CurrentVersion)))

	snap := Load(kv)

	require.Len(t, snap.Contacts, 2)
	assert.Equal(t, models.FeaturedContactID, snap.Contacts[0].ID)
	require.Len(t, snap.Companies, 1)
	assert.Equal(t, models.FeaturedCompanyID, snap.Companies[0].ID)
	assert.Equal(t, models.DefaultSettings(), snap.Settings)
}

func TestMergeSettings(t *testing.T) {
	kv := newTestKV(t)

	// A partial stored record only overrides the keys it carries
	require.NoError(t, kv.Set(storage.KeySettings, []byte(`{
		"theme": "Ocean",
		"notificationPreferences": {"emailNotifications": true}
	}`)))

	snap := Load(kv)

	assert.Equal(t, models.ThemeOcean, snap.Settings.Theme)
	assert.Equal(t, models.FontBase, snap.Settings.FontSize)
	assert.Equal(t, models.LangEnglish, snap.Settings.Language)
	assert.True(t, snap.Settings.SnapAndGo)
	assert.Equal(t, 5, snap.Settings.AutoSaveInterval)

	// Nested preferences merge one level deep
	assert.True(t, snap.Settings.NotificationPreferences.EmailNotifications)
	assert.True(t, snap.Settings.NotificationPreferences.ReminderAlerts)
	assert.True(t, snap.Settings.NotificationPreferences.EventUpdates)
}

func TestMergeSettingsCorruptFallsBack(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Set(storage.KeySettings, []byte("nope")))
	require.NoError(t, kv.Set(storage.KeyDataVersion, []byte(CurrentVersion)))

	snap := Load(kv)

	assert.Equal(t, models.DefaultSettings(), snap.Settings)
}
