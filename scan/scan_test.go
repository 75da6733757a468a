// ABOUTME: Tests for the card-scan capture flow
// ABOUTME: Validates drafts, settings defaults, failure degradation, and auto-save
package scan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradiigm/cardstack/models"
)

type stubParser struct {
	result CardScan
	err    error
}

func (p stubParser) Parse(_ context.Context, _ []byte) (CardScan, error) {
	return p.result, p.err
}

func TestDraft(t *testing.T) {
	draft := Draft(CardScan{
		Name:    "Ann",
		Role:    "CTO",
		Company: "Acme",
		Email:   "ann@acme.com",
	}, models.DefaultSettings())

	assert.Empty(t, draft.ID)
	assert.Equal(t, "Ann", draft.Name)
	assert.Equal(t, "Acme", draft.Company)
	assert.Equal(t, models.ContactType("Prospect"), draft.ContactType)
	assert.NotNil(t, draft.Tags)
	assert.NotNil(t, draft.EventLinks)
}

func TestDraftUsesConfiguredType(t *testing.T) {
	settings := models.DefaultSettings()
	settings.DefaultContactType = "Client"

	draft := Draft(CardScan{Name: "Ann"}, settings)
	assert.Equal(t, models.ContactType("Client"), draft.ContactType)
}

func TestCapture(t *testing.T) {
	p := stubParser{result: CardScan{Name: "Ann", Email: "ann@acme.com"}}

	draft, err := Capture(context.Background(), p, []byte("img"), models.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, "Ann", draft.Name)
}

func TestCaptureDegradesOnParserFailure(t *testing.T) {
	p := stubParser{err: errors.New("vision service unavailable")}

	draft, err := Capture(context.Background(), p, []byte("img"), models.DefaultSettings())
	require.Error(t, err)

	// The draft is usable for manual entry despite the failure
	assert.Empty(t, draft.Name)
	assert.Equal(t, models.ContactType("Prospect"), draft.ContactType)
}

func TestAutoSave(t *testing.T) {
	settings := models.DefaultSettings()
	assert.True(t, AutoSave(settings))

	settings.SnapAndGo = false
	assert.False(t, AutoSave(settings))
}
