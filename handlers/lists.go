// ABOUTME: MCP tool handlers for contact list operations
// ABOUTME: Membership changes go through the store's set-union semantics
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

type ListHandlers struct {
	store *store.Store
}

func NewListHandlers(s *store.Store) *ListHandlers {
	return &ListHandlers{store: s}
}

type CreateListInput struct {
	Name        string   `json:"name" jsonschema:"List name (required)"`
	Description string   `json:"description,omitempty" jsonschema:"List description"`
	Color       string   `json:"color,omitempty" jsonschema:"Display color"`
	ContactIDs  []string `json:"contact_ids,omitempty" jsonschema:"Initial members"`
}

type ListOutput struct {
	List models.ContactList `json:"list"`
}

func (h *ListHandlers) CreateList(_ context.Context, request *mcp.CallToolRequest, input CreateListInput) (*mcp.CallToolResult, ListOutput, error) {
	if input.Name == "" {
		return nil, ListOutput{}, fmt.Errorf("name is required")
	}

	list := h.store.CreateList(models.ContactList{
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		ContactIDs:  input.ContactIDs,
	})

	return nil, ListOutput{List: list}, nil
}

type ListListsOutput struct {
	Lists []models.ContactList `json:"lists"`
}

func (h *ListHandlers) ListLists(_ context.Context, request *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, ListListsOutput, error) {
	return nil, ListListsOutput{Lists: h.store.Lists()}, nil
}

type ListMembersInput struct {
	ListID     string   `json:"list_id" jsonschema:"List ID (required)"`
	ContactIDs []string `json:"contact_ids" jsonschema:"Contact IDs to add (required)"`
}

func (h *ListHandlers) AddContactsToList(_ context.Context, request *mcp.CallToolRequest, input ListMembersInput) (*mcp.CallToolResult, ListOutput, error) {
	if input.ListID == "" || len(input.ContactIDs) == 0 {
		return nil, ListOutput{}, fmt.Errorf("list_id and contact_ids are required")
	}

	h.store.AddContactsToList(input.ListID, input.ContactIDs)

	list, ok := h.store.ListByID(input.ListID)
	if !ok {
		return nil, ListOutput{}, fmt.Errorf("list not found: %s", input.ListID)
	}
	return nil, ListOutput{List: list}, nil
}

type RemoveListMemberInput struct {
	ListID    string `json:"list_id" jsonschema:"List ID (required)"`
	ContactID string `json:"contact_id" jsonschema:"Contact ID to remove (required)"`
}

func (h *ListHandlers) RemoveContactFromList(_ context.Context, request *mcp.CallToolRequest, input RemoveListMemberInput) (*mcp.CallToolResult, ListOutput, error) {
	if input.ListID == "" || input.ContactID == "" {
		return nil, ListOutput{}, fmt.Errorf("list_id and contact_id are required")
	}

	h.store.RemoveContactFromList(input.ListID, input.ContactID)

	list, ok := h.store.ListByID(input.ListID)
	if !ok {
		return nil, ListOutput{}, fmt.Errorf("list not found: %s", input.ListID)
	}
	return nil, ListOutput{List: list}, nil
}

type DeleteListInput struct {
	ID string `json:"id" jsonschema:"List ID (required)"`
}

func (h *ListHandlers) DeleteList(_ context.Context, request *mcp.CallToolRequest, input DeleteListInput) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required")
	}
	h.store.DeleteList(input.ID)
	return nil, DeleteOutput{Deleted: true}, nil
}
