// ABOUTME: Card-scanning boundary contract and draft contact building
// ABOUTME: Parser failures degrade to an empty draft for manual entry
package scan

import (
	"context"

	"github.com/paradiigm/cardstack/models"
)

// CardScan is a best-effort structured guess extracted from a card image.
// Any field may come back empty.
type CardScan struct {
	Name     string         `json:"name"`
	Role     string         `json:"role"`
	Company  string         `json:"company"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Websites []string       `json:"websites"`
	Address  models.Address `json:"address"`
}

// Parser extracts contact fields from a captured card image. Implementations
// wrap external vision services; errors must never crash the store.
type Parser interface {
	Parse(ctx context.Context, image []byte) (CardScan, error)
}

// Draft builds a contact draft from a scan result, applying the
// installation's default contact type and event role. The draft has no id
// until the store saves it.
func Draft(result CardScan, settings models.Settings) models.Contact {
	contactType := settings.DefaultContactType
	if contactType == "" {
		contactType = "Prospect"
	}

	return models.Contact{
		Name:        result.Name,
		Role:        result.Role,
		Company:     result.Company,
		Email:       result.Email,
		Phone:       result.Phone,
		Websites:    result.Websites,
		Address:     result.Address,
		Tags:        []string{},
		EventLinks:  []models.EventLink{},
		ContactType: contactType,
	}
}

// Capture parses an image and returns a draft contact. On parser failure it
// returns an empty draft along with the error so the caller can fall back to
// manual entry with the form left blank.
func Capture(ctx context.Context, p Parser, image []byte, settings models.Settings) (models.Contact, error) {
	result, err := p.Parse(ctx, image)
	if err != nil {
		return Draft(CardScan{}, settings), err
	}
	return Draft(result, settings), nil
}

// AutoSave reports whether a scanned card should be saved immediately
// without a manual review step (the snap-and-go setting).
func AutoSave(settings models.Settings) bool {
	return settings.SnapAndGo
}
