// ABOUTME: Profile and export CLI commands
// ABOUTME: Shows and edits the owner profile, exports vCard/CSV/ICS
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/paradiigm/cardstack/export"
	"github.com/paradiigm/cardstack/models"
	"github.com/paradiigm/cardstack/store"
)

// ShowProfileCommand prints the owner profile.
func ShowProfileCommand(s *store.Store, args []string) error {
	p := s.Profile()
	fmt.Printf("Name:    %s\n", p.Name)
	fmt.Printf("Role:    %s\n", p.Role)
	fmt.Printf("Company: %s\n", p.Company)
	fmt.Printf("Email:   %s\n", p.Email)
	fmt.Printf("Phone:   %s\n", p.Phone)
	if len(p.Tags) > 0 {
		fmt.Printf("Tags:    %s\n", strings.Join(p.Tags, ", "))
	}
	return nil
}

// UpdateProfileCommand edits the owner profile. Changes are mirrored into
// the contacts collection.
func UpdateProfileCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ExitOnError)
	name := fs.String("name", "", "Name")
	role := fs.String("role", "", "Role")
	company := fs.String("company", "", "Company name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	_ = fs.Parse(args)

	p := s.Profile()
	if *name != "" {
		p.Name = *name
	}
	if *role != "" {
		p.Role = *role
	}
	if *company != "" {
		p.Company = *company
	}
	if *email != "" {
		p.Email = *email
	}
	if *phone != "" {
		p.Phone = *phone
	}

	s.UpdateProfile(p)
	fmt.Printf("Updated profile: %s\n", p.Name)
	return nil
}

// ExportVCardCommand writes a contact as a vCard. Exports the owner
// profile when no contact ID is given.
func ExportVCardCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("export-vcard", flag.ExitOnError)
	out := fs.String("out", "", "Output file (default derived from contact name)")
	_ = fs.Parse(args)

	contact := s.Profile()
	if fs.NArg() > 0 {
		c, ok := s.ContactByID(fs.Arg(0))
		if !ok {
			return fmt.Errorf("contact not found: %s", fs.Arg(0))
		}
		contact = c
	}

	path := *out
	if path == "" {
		path = export.VCardFilename(contact)
	}

	if err := os.WriteFile(path, []byte(export.VCard(contact)), 0644); err != nil {
		return fmt.Errorf("writing vCard: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// ExportCSVCommand writes all visible contacts as CSV.
func ExportCSVCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("export-csv", flag.ExitOnError)
	out := fs.String("out", "contacts.csv", "Output file")
	hidden := fs.Bool("hidden", false, "Include archived contacts")
	_ = fs.Parse(args)

	var contacts []models.Contact
	for _, c := range s.Contacts() {
		if c.Hidden && !*hidden {
			continue
		}
		contacts = append(contacts, c)
	}

	if err := os.WriteFile(*out, []byte(export.CSV(contacts)), 0644); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	fmt.Printf("Wrote %s (%d contact(s))\n", *out, len(contacts))
	return nil
}

// FollowUpCommand writes a calendar reminder for following up with a
// contact.
func FollowUpCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("follow-up", flag.ExitOnError)
	at := fs.String("at", "", "Reminder time (RFC 3339, default contact's follow-up date or now+24h)")
	minutes := fs.Int("minutes", 5, "Reminder duration in minutes")
	out := fs.String("out", "follow-up.ics", "Output file")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("contact ID is required")
	}
	contact, ok := s.ContactByID(fs.Arg(0))
	if !ok {
		return fmt.Errorf("contact not found: %s", fs.Arg(0))
	}

	start := time.Now().Add(24 * time.Hour)
	if contact.FollowUpDate != "" {
		if t, err := time.Parse(time.RFC3339, contact.FollowUpDate); err == nil {
			start = t
		}
	}
	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			return fmt.Errorf("parsing --at: %w", err)
		}
		start = t
	}

	ics := export.FollowUpICS("Follow up with "+contact.Name, start, time.Duration(*minutes)*time.Minute)
	if err := os.WriteFile(*out, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing ICS: %w", err)
	}
	fmt.Printf("Wrote %s\n", *out)
	return nil
}
