// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for managing contacts
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

// AddContactCommand adds a new contact.
func AddContactCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-contact", flag.ExitOnError)
	name := fs.String("name", "", "Contact name (required)")
	role := fs.String("role", "", "Job title or role")
	company := fs.String("company", "", "Company name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	notes := fs.String("notes", "", "Notes about the contact")
	tags := fs.String("tags", "", "Comma-separated tags")
	contactType := fs.String("type", "", "Contact type (default from settings)")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	ct := s.Settings().DefaultContactType
	if *contactType != "" {
		if !models.ValidContactType(models.ContactType(*contactType)) {
			return fmt.Errorf("unknown contact type: %s", *contactType)
		}
		ct = models.ContactType(*contactType)
	}

	contact := s.SaveContact(models.Contact{
		Name:        *name,
		Role:        *role,
		Company:     *company,
		Email:       *email,
		Phone:       *phone,
		Notes:       *notes,
		Tags:        splitTags(*tags),
		EventLinks:  []models.EventLink{},
		ContactType: ct,
	})

	fmt.Printf("Created contact: %s (%s)\n", contact.Name, contact.ID)
	if contact.CompanyID != "" {
		fmt.Printf("Company: %s\n", contact.CompanyID)
	}
	return nil
}

// ListContactsCommand lists contacts, optionally filtered.
func ListContactsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-contacts", flag.ExitOnError)
	query := fs.String("query", "", "Search by name or email")
	companyID := fs.String("company", "", "Filter by company ID")
	tag := fs.String("tag", "", "Filter by tag")
	favorites := fs.Bool("favorites", false, "Only favorites")
	hidden := fs.Bool("hidden", false, "Include archived contacts")
	limit := fs.Int("limit", 50, "Max results")
	_ = fs.Parse(args)

	q := strings.ToLower(*query)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tCOMPANY\tEMAIL\tPHONE\tTAGS")

	count := 0
	for _, c := range s.Contacts() {
		if c.Hidden && !*hidden {
			continue
		}
		if *favorites && !c.IsFavorite {
			continue
		}
		if *companyID != "" && c.CompanyID != *companyID {
			continue
		}
		if *tag != "" && !hasTag(c, *tag) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Role, c.Company, c.Email, c.Phone, strings.Join(c.Tags, ","))

		count++
		if count == *limit {
			break
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d contact(s)\n", count)
	return nil
}

// UpdateContactCommand updates a contact's fields. Flags must come before
// the contact ID.
func UpdateContactCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-contact", flag.ExitOnError)
	name := fs.String("name", "", "Contact name")
	role := fs.String("role", "", "Job title or role")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("contact ID is required")
	}
	id := fs.Arg(0)

	contact, ok := s.ContactByID(id)
	if !ok {
		return fmt.Errorf("contact not found: %s", id)
	}

	if *name != "" {
		contact.Name = *name
	}
	if *role != "" {
		contact.Role = *role
	}
	if *email != "" {
		contact.Email = *email
	}
	if *phone != "" {
		contact.Phone = *phone
	}
	if *notes != "" {
		contact.Notes = *notes
	}

	s.UpdateContact(contact)
	fmt.Printf("Updated contact: %s\n", contact.Name)
	return nil
}

// DeleteContactCommand deletes a single contact by ID.
func DeleteContactCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("contact ID is required")
	}

	id := args[0]
	contact, ok := s.ContactByID(id)
	if !ok {
		return fmt.Errorf("contact not found: %s", id)
	}

	s.DeleteContact(id)
	fmt.Printf("Deleted contact: %s\n", contact.Name)
	return nil
}

// BulkDeleteContactsCommand deletes several contacts at once and prunes
// their list memberships. Featured contacts are skipped.
func BulkDeleteContactsCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one contact ID is required")
	}

	s.BulkDeleteContacts(args)
	fmt.Printf("Deleted up to %d contact(s)\n", len(args))
	return nil
}

// FavoriteContactCommand toggles a contact's favorite flag.
func FavoriteContactCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("contact ID is required")
	}

	s.ToggleFavorite(args[0])
	fmt.Println("Toggled favorite")
	return nil
}

// TagContactCommand adds or removes a tag on a contact.
func TagContactCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("tag-contact", flag.ExitOnError)
	remove := fs.Bool("remove", false, "Remove the tag instead of adding it")
	_ = fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: tag-contact [--remove] <id> <tag>")
	}

	id, tag := fs.Arg(0), fs.Arg(1)
	if *remove {
		s.RemoveContactTag(id, tag)
		fmt.Printf("Removed tag %q\n", tag)
	} else {
		s.AddContactTag(id, tag)
		fmt.Printf("Added tag %q\n", tag)
	}
	return nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func hasTag(c models.Contact, tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
