// ABOUTME: Tests for profile and settings operations
// ABOUTME: Validates the contact mirror and settings durability
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradiigm/cardstack/models"
)

func TestUpdateProfileMirrorsIntoContacts(t *testing.T) {
	s, _ := newTestStore(t)

	profile := s.Profile()
	profile.Name = "Riley Stone"
	profile.Email = "riley@example.com"
	s.UpdateProfile(profile)

	assert.Equal(t, "Riley Stone", s.Profile().Name)

	// The seeded contact mirror carries the same data
	mirror, ok := s.ContactByID(models.ProfileID)
	require.True(t, ok)
	assert.Equal(t, "Riley Stone", mirror.Name)
	assert.Equal(t, "riley@example.com", mirror.Email)
}

func TestUpdateProfileWithoutMirror(t *testing.T) {
	s, _ := newTestStore(t)

	// Remove the mirrored entry; the profile singleton still updates
	s.DeleteContact(models.ProfileID)

	profile := s.Profile()
	profile.Name = "Solo"
	s.UpdateProfile(profile)

	assert.Equal(t, "Solo", s.Profile().Name)
	_, ok := s.ContactByID(models.ProfileID)
	assert.False(t, ok)
}

func TestUpdateSettings(t *testing.T) {
	s, kv := newTestStore(t)

	settings := s.Settings()
	settings.Theme = models.ThemeForest
	settings.DefaultContactType = "Client"
	s.UpdateSettings(settings)

	assert.Equal(t, models.ThemeForest, s.Settings().Theme)

	// Durable immediately
	raw, err := kv.Get("bc_settings")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Forest")
}
