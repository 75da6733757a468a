// ABOUTME: MCP server subcommand
// ABOUTME: Exposes the contact store as MCP tools over stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/paradiigm/cardstack/handlers"
	"github.com/paradiigm/cardstack/store"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(s *store.Store) error {
	log.Println("Starting cardstack MCP server...")

	contactHandlers := handlers.NewContactHandlers(s)
	companyHandlers := handlers.NewCompanyHandlers(s)
	eventHandlers := handlers.NewEventHandlers(s)
	listHandlers := handlers.NewListHandlers(s)
	profileHandlers := handlers.NewProfileHandlers(s)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cardstack",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_contact",
		Description: "Add a new contact, creating its company on the fly when needed",
	}, contactHandlers.AddContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_contacts",
		Description: "Search for contacts by name, email, or company",
	}, contactHandlers.FindContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_contact",
		Description: "Update an existing contact's information",
	}, contactHandlers.UpdateContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_contact",
		Description: "Delete a single contact by ID",
	}, contactHandlers.DeleteContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bulk_delete_contacts",
		Description: "Delete several contacts at once and prune their list memberships",
	}, contactHandlers.BulkDeleteContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_favorite",
		Description: "Toggle a contact's favorite flag",
	}, contactHandlers.ToggleFavorite)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_company",
		Description: "Add a new company",
	}, companyHandlers.AddCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_companies",
		Description: "Search for companies by name or website",
	}, companyHandlers.FindCompanies)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_or_create_company",
		Description: "Look up a company by name, creating it when missing",
	}, companyHandlers.FindOrCreateCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_company",
		Description: "Delete a company, detaching its contacts",
	}, companyHandlers.DeleteCompany)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "company_contacts",
		Description: "List the contacts belonging to a company",
	}, companyHandlers.CompanyContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_event",
		Description: "Add a new event",
	}, eventHandlers.AddEvent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_events",
		Description: "List events",
	}, eventHandlers.ListEvents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_event",
		Description: "Delete an event and remove it from contact links",
	}, eventHandlers.DeleteEvent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "link_contact_to_event",
		Description: "Link a contact to an event with a role",
	}, eventHandlers.LinkContactToEvent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_list",
		Description: "Create a named contact list",
	}, listHandlers.CreateList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_lists",
		Description: "List all contact lists",
	}, listHandlers.ListLists)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_contacts_to_list",
		Description: "Add contacts to a list, skipping duplicates",
	}, listHandlers.AddContactsToList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_contact_from_list",
		Description: "Remove a contact from a list",
	}, listHandlers.RemoveContactFromList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_list",
		Description: "Delete a contact list",
	}, listHandlers.DeleteList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the owner profile",
	}, profileHandlers.GetProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_profile",
		Description: "Update the owner profile",
	}, profileHandlers.UpdateProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_vcard",
		Description: "Export a contact (or the owner profile) as a vCard",
	}, profileHandlers.ExportVCard)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_csv",
		Description: "Export contacts as CSV",
	}, profileHandlers.ExportCSV)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
