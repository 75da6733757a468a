// ABOUTME: Entry point for the cardstack contact manager
// ABOUTME: Routes to MCP server, CLI commands, or the TUI based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/paradiigm/cardstack/cli"
	"github.com/paradiigm/cardstack/storage"
	"github.com/paradiigm/cardstack/store"
	"github.com/paradiigm/cardstack/tui"
)

const version = "0.1.0"

func main() {
	// .env is optional
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	backend := flag.String("backend", "", "Storage backend: badger or sqlite (default from config)")
	dataDir := flag.String("data-dir", "", "Data directory (default: ~/.local/share/cardstack)")
	initOnly := flag.Bool("init", false, "Initialize storage with seed data and exit")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("cardstack version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 && !*initOnly {
		printUsage()
		os.Exit(0)
	}

	s, kv, err := openStore(*backend, *dataDir)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() { _ = kv.Close() }()

	if *initOnly {
		log.Println("Storage initialized successfully")
		return
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		if err := cli.MCPCommand(s); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "tui":
		p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "contacts":
		runSubcommand(s, commandArgs, map[string]commandFunc{
			"add":         cli.AddContactCommand,
			"list":        cli.ListContactsCommand,
			"update":      cli.UpdateContactCommand,
			"delete":      cli.DeleteContactCommand,
			"bulk-delete": cli.BulkDeleteContactsCommand,
			"favorite":    cli.FavoriteContactCommand,
			"tag":         cli.TagContactCommand,
		})

	case "companies":
		runSubcommand(s, commandArgs, map[string]commandFunc{
			"add":    cli.AddCompanyCommand,
			"list":   cli.ListCompaniesCommand,
			"delete": cli.DeleteCompanyCommand,
		})

	case "events":
		runSubcommand(s, commandArgs, map[string]commandFunc{
			"add":    cli.AddEventCommand,
			"list":   cli.ListEventsCommand,
			"link":   cli.LinkEventCommand,
			"delete": cli.DeleteEventCommand,
		})

	case "lists":
		runSubcommand(s, commandArgs, map[string]commandFunc{
			"add":     cli.AddListCommand,
			"list":    cli.ListListsCommand,
			"members": cli.ListMembersCommand,
			"delete":  cli.DeleteListCommand,
		})

	case "profile":
		runSubcommand(s, commandArgs, map[string]commandFunc{
			"show":   cli.ShowProfileCommand,
			"update": cli.UpdateProfileCommand,
		})

	case "settings":
		runSubcommand(s, commandArgs, map[string]commandFunc{
			"show":   cli.ShowSettingsCommand,
			"update": cli.UpdateSettingsCommand,
		})

	case "export":
		runSubcommand(s, commandArgs, map[string]commandFunc{
			"vcard":     cli.ExportVCardCommand,
			"csv":       cli.ExportCSVCommand,
			"follow-up": cli.FollowUpCommand,
		})

	case "viz":
		runSubcommand(s, commandArgs, map[string]commandFunc{
			"company": cli.VizGraphCompanyCommand,
			"events":  cli.VizGraphEventsCommand,
		})

	case "web":
		if err := cli.WebCommand(s, commandArgs); err != nil {
			log.Fatalf("Web server failed: %v", err)
		}

	case "reset":
		if err := cli.ResetCommand(s, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

type commandFunc func(*store.Store, []string) error

func runSubcommand(s *store.Store, args []string, commands map[string]commandFunc) {
	if len(args) == 0 {
		fmt.Println("Error: subcommand required")
		printUsage()
		os.Exit(1)
	}

	fn, ok := commands[args[0]]
	if !ok {
		fmt.Printf("Unknown subcommand: %s\n\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if err := fn(s, args[1:]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func openStore(backend, dataDir string) (*store.Store, storage.KV, error) {
	cfg, err := storage.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	kv, err := cfg.Open()
	if err != nil {
		return nil, nil, err
	}

	s := store.Open(kv)
	s.OnStorageWarning(func(msg string) {
		log.Println(msg)
	})
	return s, kv, nil
}

func printUsage() {
	fmt.Printf(`cardstack v%s - Business card contact manager

USAGE:
  cardstack [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --backend <name>       Storage backend: badger or sqlite
  --data-dir <path>      Data directory (default: ~/.local/share/cardstack)
  --init                 Initialize storage with seed data and exit

COMMANDS:
  mcp                    Start MCP server for assistant integration
  tui                    Interactive terminal interface
  web                    Serve public profile pages (default port 8080)
  contacts               Contact management
  companies              Company management
  events                 Event management
  lists                  Contact list management
  profile                Owner profile
  settings               App settings
  export                 vCard, CSV, and calendar export
  viz                    Network graph generation
  reset                  Reset all data to the built-in seeds

CONTACT COMMANDS:
  cardstack contacts add         Add a new contact
    --name <name>                  Contact name (required)
    --role <role>                  Job title or role
    --company <company>            Company name (created when missing)
    --email <email>                Email address
    --phone <phone>                Phone number
    --tags <a,b,c>                 Comma-separated tags
    --type <type>                  Contact type

  cardstack contacts list        List contacts
    --query <text>                 Search by name or email
    --company <id>                 Filter by company ID
    --tag <tag>                    Filter by tag
    --favorites                    Only favorites
    --limit <n>                    Max results (default: 50)

  cardstack contacts update [flags] <id>   Update a contact
  cardstack contacts delete <id>           Delete a contact
  cardstack contacts bulk-delete <id...>   Delete several contacts
  cardstack contacts favorite <id>         Toggle favorite
  cardstack contacts tag [--remove] <id> <tag>

COMPANY COMMANDS:
  cardstack companies add --name <name>    Add a company
  cardstack companies list                 List companies
  cardstack companies delete <id>          Delete a company (contacts kept)

EVENT COMMANDS:
  cardstack events add --name <name>       Add an event
  cardstack events list                    List events
  cardstack events link [--role <role>] <contact-id> <event-id>
  cardstack events delete <id>             Delete an event

LIST COMMANDS:
  cardstack lists add --name <name>        Create a contact list
  cardstack lists list                     Show all lists
  cardstack lists members [--remove] <list-id> <contact-id...>
  cardstack lists delete <id>              Delete a list

PROFILE AND SETTINGS:
  cardstack profile show                   Show the owner profile
  cardstack profile update [flags]         Edit the owner profile
  cardstack settings show                  Show settings
  cardstack settings update [flags]        Edit settings

EXPORT COMMANDS:
  cardstack export vcard [id]              Export a contact (default: profile)
  cardstack export csv                     Export contacts as CSV
  cardstack export follow-up <id>          Write a follow-up calendar reminder

VIZ COMMANDS:
  cardstack viz company <id>               Company org chart
    --output <file>                          Output file (default: stdout)
  cardstack viz events                     Contact-event network graph
    --output <file>                          Output file (default: stdout)

EXAMPLES:
  # Start MCP server
  cardstack mcp

  # Add a contact
  cardstack contacts add --name "John Smith" --email "john@acme.com" --company "Acme Corp"

  # Export everyone as CSV
  cardstack export csv --out contacts.csv

`, version)
}
