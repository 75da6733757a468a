// ABOUTME: Contact list CLI commands
// ABOUTME: Commands for managing named contact lists
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

// AddListCommand creates a new contact list.
func AddListCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-list", flag.ExitOnError)
	name := fs.String("name", "", "List name (required)")
	description := fs.String("description", "", "Description")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	list := s.CreateList(models.ContactList{
		Name:        *name,
		Description: *description,
	})

	fmt.Printf("Created list: %s (%s)\n", list.Name, list.ID)
	return nil
}

// ListListsCommand shows all contact lists with member counts.
func ListListsCommand(s *store.Store, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tDESCRIPTION")

	lists := s.Lists()
	for _, l := range lists {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", l.ID, l.Name, len(l.ContactIDs), l.Description)
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d list(s)\n", len(lists))
	return nil
}

// ListMembersCommand adds contacts to a list or removes one.
func ListMembersCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-members", flag.ExitOnError)
	remove := fs.Bool("remove", false, "Remove the contact instead of adding")
	_ = fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: list-members [--remove] <list-id> <contact-id> [contact-id...]")
	}

	listID := fs.Arg(0)
	list, ok := s.ListByID(listID)
	if !ok {
		return fmt.Errorf("list not found: %s", listID)
	}

	if *remove {
		s.RemoveContactFromList(listID, fs.Arg(1))
		fmt.Printf("Removed contact from %s\n", list.Name)
		return nil
	}

	s.AddContactsToList(listID, fs.Args()[1:])
	fmt.Printf("Added %d contact(s) to %s\n", fs.NArg()-1, list.Name)
	return nil
}

// DeleteListCommand deletes a list. Member contacts are unaffected.
func DeleteListCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("list ID is required")
	}

	id := args[0]
	list, ok := s.ListByID(id)
	if !ok {
		return fmt.Errorf("list not found: %s", id)
	}

	s.DeleteList(id)
	fmt.Printf("Deleted list: %s\n", list.Name)
	return nil
}
