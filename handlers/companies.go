// ABOUTME: MCP tool handlers for company operations
// ABOUTME: Covers lookup-or-create semantics and the detach-on-delete cascade
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

type CompanyHandlers struct {
	store *store.Store
}

func NewCompanyHandlers(s *store.Store) *CompanyHandlers {
	return &CompanyHandlers{store: s}
}

type AddCompanyInput struct {
	Name        string `json:"name" jsonschema:"Company name (required)"`
	Description string `json:"description,omitempty" jsonschema:"Short company description"`
	Website     string `json:"website,omitempty" jsonschema:"Company website"`
	Email       string `json:"email,omitempty" jsonschema:"Company email address"`
	Phone       string `json:"phone,omitempty" jsonschema:"Company phone number"`
	Location    string `json:"location,omitempty" jsonschema:"Company location"`
}

type CompanyOutput struct {
	Company models.Company `json:"company"`
}

func (h *CompanyHandlers) AddCompany(_ context.Context, request *mcp.CallToolRequest, input AddCompanyInput) (*mcp.CallToolResult, CompanyOutput, error) {
	if input.Name == "" {
		return nil, CompanyOutput{}, fmt.Errorf("name is required")
	}

	company := h.store.CreateCompany(models.Company{
		Name:        input.Name,
		Description: input.Description,
		Website:     input.Website,
		Email:       input.Email,
		Phone:       input.Phone,
		Location:    input.Location,
	})

	return nil, CompanyOutput{Company: company}, nil
}

type FindCompaniesInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (searches name and website)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindCompaniesOutput struct {
	Companies []models.Company `json:"companies"`
}

func (h *CompanyHandlers) FindCompanies(_ context.Context, request *mcp.CallToolRequest, input FindCompaniesInput) (*mcp.CallToolResult, FindCompaniesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	query := strings.ToLower(input.Query)

	var matched []models.Company
	for _, c := range h.store.Companies() {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Website), query) {
			continue
		}
		matched = append(matched, c)
		if len(matched) == limit {
			break
		}
	}

	return nil, FindCompaniesOutput{Companies: matched}, nil
}

type FindOrCreateCompanyInput struct {
	Name string `json:"name" jsonschema:"Company name (required, matched case-insensitively)"`
}

func (h *CompanyHandlers) FindOrCreateCompany(_ context.Context, request *mcp.CallToolRequest, input FindOrCreateCompanyInput) (*mcp.CallToolResult, CompanyOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, CompanyOutput{}, fmt.Errorf("name is required")
	}
	company := h.store.FindOrCreateCompanyByName(input.Name)
	return nil, CompanyOutput{Company: company}, nil
}

type DeleteCompanyInput struct {
	ID string `json:"id" jsonschema:"Company ID (required). Contacts referencing it are detached, not deleted"`
}

func (h *CompanyHandlers) DeleteCompany(_ context.Context, request *mcp.CallToolRequest, input DeleteCompanyInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	h.store.DeleteCompany(input.ID)
	return nil, DeleteOutput{Deleted: true}, nil
}

type CompanyContactsInput struct {
	CompanyID string `json:"company_id" jsonschema:"Company ID (required)"`
}

func (h *CompanyHandlers) CompanyContacts(_ context.Context, request *mcp.CallToolRequest, input CompanyContactsInput) (*mcp.CallToolResult, FindContactsOutput, error) {
	if input.CompanyID == "" {
		return nil, FindContactsOutput{}, fmt.Errorf("company_id is required")
	}
	return nil, FindContactsOutput{Contacts: h.store.ContactsByCompanyID(input.CompanyID)}, nil
}
