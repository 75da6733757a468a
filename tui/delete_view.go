// ABOUTME: Delete confirmation view for TUI
// ABOUTME: Confirms deletion of contacts, companies, events, and lists
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	confirmButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("9")).
				Padding(0, 2).
				MarginRight(2)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8")).
				Padding(0, 2)
)

func (m Model) renderConfirmDeleteView() string {
	entityName, entityType := m.selectedEntity()
	if entityName == "" {
		return "Record not found"
	}

	title := warningStyle.Render("⚠  DELETE CONFIRMATION  ⚠")
	message := fmt.Sprintf("Are you sure you want to delete this %s?", entityType)
	entityInfo := fmt.Sprintf("\n%s\n", entityName)
	warning := "\nThis action cannot be undone!"

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		confirmButtonStyle.Render("Yes, Delete (y)"),
		cancelButtonStyle.Render("Cancel (n/esc)"),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		message,
		entityInfo,
		warning,
		"",
		buttons,
	)

	box := confirmBoxStyle.Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

func (m Model) selectedEntity() (name, kind string) {
	switch m.entityType {
	case EntityContacts:
		if contact, ok := m.store.ContactByID(m.selectedID); ok {
			return contact.Name, "contact"
		}
	case EntityCompanies:
		if company, ok := m.store.CompanyByID(m.selectedID); ok {
			return company.Name, "company"
		}
	case EntityEvents:
		if event, ok := m.store.EventByID(m.selectedID); ok {
			return event.Name, "event"
		}
	case EntityLists:
		if list, ok := m.store.ListByID(m.selectedID); ok {
			return list.Name, "list"
		}
	}
	return "", ""
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.performDelete()
		m.statusMessage = "Deleted"
		m.viewMode = ViewList
		m.selectedID = ""
		m.selectedRow = 0
	case "n", "N", "esc":
		m.viewMode = ViewList
	}

	return m, nil
}

func (m Model) performDelete() {
	switch m.entityType {
	case EntityContacts:
		m.store.DeleteContact(m.selectedID)
	case EntityCompanies:
		m.store.DeleteCompany(m.selectedID)
	case EntityEvents:
		m.store.DeleteEvent(m.selectedID)
	case EntityLists:
		m.store.DeleteList(m.selectedID)
	}
}
