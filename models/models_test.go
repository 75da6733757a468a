// ABOUTME: Tests for data models and id generation
// ABOUTME: Validates enums, seed data, and default settings
package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID(PrefixContact)
	assert.True(t, strings.HasPrefix(id, "contact_"))
	assert.Equal(t, strings.ToLower(id), id)

	assert.NotEqual(t, NewID(PrefixContact), NewID(PrefixContact))
}

func TestValidContactType(t *testing.T) {
	assert.True(t, ValidContactType("Prospect"))
	assert.True(t, ValidContactType("Partner"))
	assert.False(t, ValidContactType("Alien"))
	assert.False(t, ValidContactType(""))
}

func TestValidEventRole(t *testing.T) {
	assert.True(t, ValidEventRole(RoleAttendee))
	assert.True(t, ValidEventRole(RoleSpeaker))
	assert.False(t, ValidEventRole("Janitor"))
}

func TestSeedContacts(t *testing.T) {
	contacts := SeedContacts()
	require.Len(t, contacts, 2)

	featured := contacts[0]
	assert.Equal(t, FeaturedContactID, featured.ID)
	assert.True(t, featured.Featured)
	assert.Equal(t, FeaturedCompanyID, featured.CompanyID)
	require.Len(t, featured.EventLinks, 1)
	assert.Equal(t, SeedEventID, featured.EventLinks[0].EventID)

	profile := contacts[1]
	assert.Equal(t, ProfileID, profile.ID)
	assert.Empty(t, profile.Name)
	assert.NotNil(t, profile.Tags)
	assert.NotNil(t, profile.EventLinks)
}

func TestFeaturedCompany(t *testing.T) {
	company := FeaturedCompany()
	assert.Equal(t, FeaturedCompanyID, company.ID)
	assert.Equal(t, "Paradiigm LLC", company.Name)
	assert.True(t, company.Featured)
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, ThemeSystem, settings.Theme)
	assert.Equal(t, FontBase, settings.FontSize)
	assert.Equal(t, LangEnglish, settings.Language)
	assert.Equal(t, ContactType("Prospect"), settings.DefaultContactType)
	assert.True(t, settings.SnapAndGo)
	assert.False(t, settings.NotificationPreferences.EmailNotifications)
	assert.True(t, settings.NotificationPreferences.ReminderAlerts)
	assert.Equal(t, 5, settings.AutoSaveInterval)
}
