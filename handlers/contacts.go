// ABOUTME: MCP tool handlers for contact operations
// ABOUTME: Exposes the entity store's contact operations as tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

type ContactHandlers struct {
	store *store.Store
}

func NewContactHandlers(s *store.Store) *ContactHandlers {
	return &ContactHandlers{store: s}
}

type AddContactInput struct {
	Name        string   `json:"name" jsonschema:"Contact name (required)"`
	Role        string   `json:"role,omitempty" jsonschema:"Job title or role"`
	CompanyName string   `json:"company_name,omitempty" jsonschema:"Company name (will be looked up or created)"`
	Email       string   `json:"email,omitempty" jsonschema:"Contact email address"`
	Phone       string   `json:"phone,omitempty" jsonschema:"Contact phone number"`
	Notes       string   `json:"notes,omitempty" jsonschema:"Additional notes about the contact"`
	Tags        []string `json:"tags,omitempty" jsonschema:"Tags to attach to the contact"`
	ContactType string   `json:"contact_type,omitempty" jsonschema:"Contact type, e.g. Prospect or Partner"`
}

type ContactOutput struct {
	Contact models.Contact `json:"contact"`
}

func (h *ContactHandlers) AddContact(_ context.Context, request *mcp.CallToolRequest, input AddContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	if input.Name == "" {
		return nil, ContactOutput{}, fmt.Errorf("name is required")
	}

	contactType := h.store.Settings().DefaultContactType
	if input.ContactType != "" {
		if !models.ValidContactType(models.ContactType(input.ContactType)) {
			return nil, ContactOutput{}, fmt.Errorf("unknown contact type: %s", input.ContactType)
		}
		contactType = models.ContactType(input.ContactType)
	}

	contact := h.store.SaveContact(models.Contact{
		Name:        input.Name,
		Role:        input.Role,
		Company:     input.CompanyName,
		Email:       input.Email,
		Phone:       input.Phone,
		Notes:       input.Notes,
		Tags:        input.Tags,
		EventLinks:  []models.EventLink{},
		ContactType: contactType,
	})

	return nil, ContactOutput{Contact: contact}, nil
}

type FindContactsInput struct {
	Query     string `json:"query,omitempty" jsonschema:"Search query (searches name and email)"`
	CompanyID string `json:"company_id,omitempty" jsonschema:"Filter by company ID"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindContactsOutput struct {
	Contacts []models.Contact `json:"contacts"`
}

func (h *ContactHandlers) FindContacts(_ context.Context, request *mcp.CallToolRequest, input FindContactsInput) (*mcp.CallToolResult, FindContactsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	query := strings.ToLower(input.Query)

	var matched []models.Contact
	for _, c := range h.store.Contacts() {
		if input.CompanyID != "" && c.CompanyID != input.CompanyID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Email), query) {
			continue
		}
		matched = append(matched, c)
		if len(matched) == limit {
			break
		}
	}

	return nil, FindContactsOutput{Contacts: matched}, nil
}

type UpdateContactInput struct {
	ID    string `json:"id" jsonschema:"Contact ID (required)"`
	Name  string `json:"name,omitempty" jsonschema:"New contact name"`
	Role  string `json:"role,omitempty" jsonschema:"New role"`
	Email string `json:"email,omitempty" jsonschema:"New email address"`
	Phone string `json:"phone,omitempty" jsonschema:"New phone number"`
	Notes string `json:"notes,omitempty" jsonschema:"New notes"`
}

func (h *ContactHandlers) UpdateContact(_ context.Context, request *mcp.CallToolRequest, input UpdateContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, ok := h.store.ContactByID(input.ID)
	if !ok {
		return nil, ContactOutput{}, fmt.Errorf("contact not found: %s", input.ID)
	}

	if input.Name != "" {
		contact.Name = input.Name
	}
	if input.Role != "" {
		contact.Role = input.Role
	}
	if input.Email != "" {
		contact.Email = input.Email
	}
	if input.Phone != "" {
		contact.Phone = input.Phone
	}
	if input.Notes != "" {
		contact.Notes = input.Notes
	}

	h.store.UpdateContact(contact)
	return nil, ContactOutput{Contact: contact}, nil
}

type DeleteContactInput struct {
	ID string `json:"id" jsonschema:"Contact ID (required)"`
}

type DeleteOutput struct {
	Deleted bool `json:"deleted"`
}

func (h *ContactHandlers) DeleteContact(_ context.Context, request *mcp.CallToolRequest, input DeleteContactInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	h.store.DeleteContact(input.ID)
	return nil, DeleteOutput{Deleted: true}, nil
}

type BulkDeleteContactsInput struct {
	IDs []string `json:"ids" jsonschema:"Contact IDs to delete (featured contacts are skipped)"`
}

func (h *ContactHandlers) BulkDeleteContacts(_ context.Context, request *mcp.CallToolRequest, input BulkDeleteContactsInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if len(input.IDs) == 0 {
		return nil, DeleteOutput{}, fmt.Errorf("ids are required")
	}
	h.store.BulkDeleteContacts(input.IDs)
	return nil, DeleteOutput{Deleted: true}, nil
}

type ToggleFavoriteInput struct {
	ID string `json:"id" jsonschema:"Contact ID (required)"`
}

type ToggleOutput struct {
	Toggled bool `json:"toggled"`
}

func (h *ContactHandlers) ToggleFavorite(_ context.Context, request *mcp.CallToolRequest, input ToggleFavoriteInput) (*mcp.CallToolResult, ToggleOutput, error) {
	if input.ID == "" {
		return nil, ToggleOutput{}, fmt.Errorf("id is required")
	}
	h.store.ToggleFavorite(input.ID)
	return nil, ToggleOutput{Toggled: true}, nil
}
