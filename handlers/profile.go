// ABOUTME: MCP tool handlers for the profile singleton and exports
// ABOUTME: Profile updates keep the mirrored contact entry in sync
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paradiigm/cardstack/export"
	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

type ProfileHandlers struct {
	store *store.Store
}

func NewProfileHandlers(s *store.Store) *ProfileHandlers {
	return &ProfileHandlers{store: s}
}

func (h *ProfileHandlers) GetProfile(_ context.Context, request *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, ContactOutput, error) {
	return nil, ContactOutput{Contact: h.store.Profile()}, nil
}

type UpdateProfileInput struct {
	Name     string   `json:"name,omitempty" jsonschema:"Your name"`
	Role     string   `json:"role,omitempty" jsonschema:"Your job title"`
	Company  string   `json:"company,omitempty" jsonschema:"Your company name"`
	Email    string   `json:"email,omitempty" jsonschema:"Your email address"`
	Phone    string   `json:"phone,omitempty" jsonschema:"Your phone number"`
	Handle   string   `json:"handle,omitempty" jsonschema:"Public profile slug"`
	Websites []string `json:"websites,omitempty" jsonschema:"Your websites"`
}

func (h *ProfileHandlers) UpdateProfile(_ context.Context, request *mcp.CallToolRequest, input UpdateProfileInput) (*mcp.CallToolResult, ContactOutput, error) {
	profile := h.store.Profile()

	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.Role != "" {
		profile.Role = input.Role
	}
	if input.Company != "" {
		profile.Company = input.Company
	}
	if input.Email != "" {
		profile.Email = input.Email
	}
	if input.Phone != "" {
		profile.Phone = input.Phone
	}
	if input.Handle != "" {
		profile.Handle = input.Handle
	}
	if len(input.Websites) > 0 {
		profile.Websites = input.Websites
	}

	h.store.UpdateProfile(profile)
	return nil, ContactOutput{Contact: profile}, nil
}

type ExportVCardInput struct {
	ContactID string `json:"contact_id,omitempty" jsonschema:"Contact ID to export; empty exports your own profile"`
}

type ExportVCardOutput struct {
	Filename string `json:"filename"`
	VCard    string `json:"vcard"`
}

func (h *ProfileHandlers) ExportVCard(_ context.Context, request *mcp.CallToolRequest, input ExportVCardInput) (*mcp.CallToolResult, ExportVCardOutput, error) {
	var contact models.Contact
	if input.ContactID == "" {
		contact = h.store.Profile()
	} else {
		var ok bool
		contact, ok = h.store.ContactByID(input.ContactID)
		if !ok {
			return nil, ExportVCardOutput{}, fmt.Errorf("contact not found: %s", input.ContactID)
		}
	}

	return nil, ExportVCardOutput{
		Filename: export.VCardFilename(contact),
		VCard:    export.VCard(contact),
	}, nil
}

type ExportCSVInput struct {
	IncludeHidden bool `json:"include_hidden,omitempty" jsonschema:"Include archived contacts"`
}

type ExportCSVOutput struct {
	CSV string `json:"csv"`
}

func (h *ProfileHandlers) ExportCSV(_ context.Context, request *mcp.CallToolRequest, input ExportCSVInput) (*mcp.CallToolResult, ExportCSVOutput, error) {
	var contacts []models.Contact
	for _, c := range h.store.Contacts() {
		if c.Hidden && !input.IncludeHidden {
			continue
		}
		contacts = append(contacts, c)
	}
	return nil, ExportCSVOutput{CSV: export.CSV(contacts)}, nil
}
