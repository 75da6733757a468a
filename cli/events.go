// ABOUTME: Event CLI commands
// ABOUTME: Commands for managing events and contact-event links
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

// AddEventCommand creates a new event.
func AddEventCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-event", flag.ExitOnError)
	name := fs.String("name", "", "Event name (required)")
	date := fs.String("date", "", "Event date (YYYY-MM-DD)")
	location := fs.String("location", "", "Location")
	description := fs.String("description", "", "Description")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	event := s.CreateEvent(models.Event{
		Name:        *name,
		Date:        *date,
		Location:    *location,
		Description: *description,
	})

	fmt.Printf("Created event: %s (%s)\n", event.Name, event.ID)
	return nil
}

// ListEventsCommand lists events.
func ListEventsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-events", flag.ExitOnError)
	hidden := fs.Bool("hidden", false, "Include archived events")
	_ = fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDATE\tLOCATION")

	count := 0
	for _, e := range s.Events() {
		if e.Hidden && !*hidden {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Date, e.Location)
		count++
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d event(s)\n", count)
	return nil
}

// LinkEventCommand links a contact to an event with a role.
func LinkEventCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("link-event", flag.ExitOnError)
	role := fs.String("role", "", "Role at the event (default from settings)")
	_ = fs.Parse(args)

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: link-event [--role <role>] <contact-id> <event-id>")
	}
	contactID, eventID := fs.Arg(0), fs.Arg(1)

	contact, ok := s.ContactByID(contactID)
	if !ok {
		return fmt.Errorf("contact not found: %s", contactID)
	}
	event, ok := s.EventByID(eventID)
	if !ok {
		return fmt.Errorf("event not found: %s", eventID)
	}

	r := models.RoleAttendee
	if def := s.Settings().DefaultEventRole; def != "" {
		r = models.EventRole(def)
	}
	if *role != "" {
		if !models.ValidEventRole(models.EventRole(*role)) {
			return fmt.Errorf("unknown event role: %s", *role)
		}
		r = models.EventRole(*role)
	}

	for _, link := range contact.EventLinks {
		if link.EventID == eventID {
			fmt.Printf("%s is already linked to %s\n", contact.Name, event.Name)
			return nil
		}
	}

	contact.EventLinks = append(contact.EventLinks, models.EventLink{EventID: eventID, Role: r})
	s.UpdateContact(contact)

	fmt.Printf("Linked %s to %s as %s\n", contact.Name, event.Name, r)
	return nil
}

// DeleteEventCommand deletes an event and strips it from contact links.
func DeleteEventCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("event ID is required")
	}

	id := args[0]
	event, ok := s.EventByID(id)
	if !ok {
		return fmt.Errorf("event not found: %s", id)
	}

	s.DeleteEvent(id)
	fmt.Printf("Deleted event: %s\n", event.Name)
	return nil
}
