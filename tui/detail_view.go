// ABOUTME: Detail view for TUI
// ABOUTME: Shows the full record for the selected contact, company, event, or list
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CARDSTACK"))
	s.WriteString("\n\n")

	switch m.entityType {
	case EntityContacts:
		s.WriteString(m.renderContactDetail())
	case EntityCompanies:
		s.WriteString(m.renderCompanyDetail())
	case EntityEvents:
		s.WriteString(m.renderEventDetail())
	case EntityLists:
		s.WriteString(m.renderListDetail())
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("esc: Back • d: Delete • q: Quit"))

	return s.String()
}

func (m Model) renderContactDetail() string {
	contact, ok := m.store.ContactByID(m.selectedID)
	if !ok {
		return "Contact not found"
	}

	var s strings.Builder
	writeField(&s, "Name", contact.Name)
	writeField(&s, "Role", contact.Role)
	writeField(&s, "Company", contact.Company)
	writeField(&s, "Type", string(contact.ContactType))
	writeField(&s, "Email", contact.Email)
	writeField(&s, "Phone", contact.Phone)
	writeField(&s, "Websites", strings.Join(contact.Websites, ", "))
	writeField(&s, "Tags", strings.Join(contact.Tags, ", "))
	writeField(&s, "Notes", contact.Notes)
	writeField(&s, "Follow up", contact.FollowUpDate)

	if len(contact.EventLinks) > 0 {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Events:"))
		s.WriteString("\n")
		for _, link := range contact.EventLinks {
			name := link.EventID
			if event, ok := m.store.EventByID(link.EventID); ok {
				name = event.Name
			}
			fmt.Fprintf(&s, "  %s (%s)\n", name, link.Role)
		}
	}

	return s.String()
}

func (m Model) renderCompanyDetail() string {
	company, ok := m.store.CompanyByID(m.selectedID)
	if !ok {
		return "Company not found"
	}

	var s strings.Builder
	writeField(&s, "Name", company.Name)
	writeField(&s, "Description", company.Description)
	writeField(&s, "Website", company.Website)
	writeField(&s, "Location", company.Location)

	contacts := m.store.ContactsByCompanyID(company.ID)
	if len(contacts) > 0 {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Contacts:"))
		s.WriteString("\n")
		for _, c := range contacts {
			fmt.Fprintf(&s, "  %s (%s)\n", c.Name, c.Role)
		}
	}

	return s.String()
}

func (m Model) renderEventDetail() string {
	event, ok := m.store.EventByID(m.selectedID)
	if !ok {
		return "Event not found"
	}

	var s strings.Builder
	writeField(&s, "Name", event.Name)
	writeField(&s, "Date", event.Date)
	writeField(&s, "Location", event.Location)
	writeField(&s, "Description", event.Description)

	var attendees []string
	for _, c := range m.store.Contacts() {
		for _, link := range c.EventLinks {
			if link.EventID == event.ID {
				attendees = append(attendees, fmt.Sprintf("  %s (%s)", c.Name, link.Role))
			}
		}
	}
	if len(attendees) > 0 {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Attendees:"))
		s.WriteString("\n")
		s.WriteString(strings.Join(attendees, "\n"))
		s.WriteString("\n")
	}

	return s.String()
}

func (m Model) renderListDetail() string {
	list, ok := m.store.ListByID(m.selectedID)
	if !ok {
		return "List not found"
	}

	var s strings.Builder
	writeField(&s, "Name", list.Name)
	writeField(&s, "Description", list.Description)

	if len(list.ContactIDs) > 0 {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Members:"))
		s.WriteString("\n")
		for _, id := range list.ContactIDs {
			name := id
			if c, ok := m.store.ContactByID(id); ok {
				name = c.Name
			}
			fmt.Fprintf(&s, "  %s\n", name)
		}
	}

	return s.String()
}

func writeField(s *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(s, "%s %s\n", labelStyle.Render(label+":"), value)
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.selectedID = ""
	case "d":
		m.viewMode = ViewConfirmDelete
	}

	return m, nil
}
