// ABOUTME: List view rendering and navigation for the entity tabs
// ABOUTME: Builds bubbles tables and handles per-tab key actions
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paradiigm/cardstack/models"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("CARDSTACK"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	s.WriteString(m.renderTable())
	s.WriteString("\n")

	if m.statusMessage != "" {
		s.WriteString(statusStyle.Render(m.statusMessage))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Contacts", "Companies", "Events", "Lists"}
	var rendered []string

	for i, tab := range tabs {
		if EntityType(i) == m.entityType {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTable() string {
	switch m.entityType {
	case EntityContacts:
		return m.renderContactsTable()
	case EntityCompanies:
		return m.renderCompaniesTable()
	case EntityEvents:
		return m.renderEventsTable()
	case EntityLists:
		return m.renderListsTable()
	}
	return ""
}

func (m Model) renderContactsTable() string {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Role", Width: 20},
		{Title: "Company", Width: 20},
		{Title: "Email", Width: 25},
		{Title: "Fav", Width: 3},
	}

	var rows []table.Row
	for _, contact := range m.visibleContacts() {
		fav := ""
		if contact.IsFavorite {
			fav = "★"
		}
		rows = append(rows, table.Row{
			contact.Name,
			contact.Role,
			contact.Company,
			contact.Email,
			fav,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderCompaniesTable() string {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Location", Width: 20},
		{Title: "Contacts", Width: 10},
		{Title: "Fav", Width: 3},
	}

	var rows []table.Row
	for _, company := range m.visibleCompanies() {
		fav := ""
		if company.IsFavorite {
			fav = "★"
		}
		rows = append(rows, table.Row{
			company.Name,
			company.Location,
			fmt.Sprintf("%d", len(m.store.ContactsByCompanyID(company.ID))),
			fav,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderEventsTable() string {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Date", Width: 15},
		{Title: "Location", Width: 25},
	}

	var rows []table.Row
	for _, event := range m.visibleEvents() {
		rows = append(rows, table.Row{
			event.Name,
			event.Date,
			event.Location,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderListsTable() string {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Members", Width: 10},
		{Title: "Description", Width: 35},
	}

	var rows []table.Row
	for _, list := range m.store.Lists() {
		rows = append(rows, table.Row{
			list.Name,
			fmt.Sprintf("%d", len(list.ContactIDs)),
			list.Description,
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) buildTable(columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Tab: Switch tabs",
		"Enter: View details",
		"f: Favorite",
		"d: Delete",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "tab":
		m.entityType = (m.entityType + 1) % 4
		m.selectedRow = 0
		m.statusMessage = ""
	case "enter":
		if id := m.getSelectedID(); id != "" {
			m.viewMode = ViewDetail
			m.selectedID = id
		}
	case "f":
		m = m.toggleSelectedFavorite()
	case "d":
		if id := m.getSelectedID(); id != "" {
			m.viewMode = ViewConfirmDelete
			m.selectedID = id
		}
	}

	return m, nil
}

func (m Model) toggleSelectedFavorite() Model {
	id := m.getSelectedID()
	if id == "" {
		return m
	}

	switch m.entityType {
	case EntityContacts:
		m.store.ToggleFavorite(id)
		m.statusMessage = "Toggled favorite"
	case EntityCompanies:
		m.store.ToggleFavoriteCompany(id)
		m.statusMessage = "Toggled favorite"
	}
	return m
}

func (m Model) rowCount() int {
	switch m.entityType {
	case EntityContacts:
		return len(m.visibleContacts())
	case EntityCompanies:
		return len(m.visibleCompanies())
	case EntityEvents:
		return len(m.visibleEvents())
	case EntityLists:
		return len(m.store.Lists())
	}
	return 0
}

func (m Model) getSelectedID() string {
	switch m.entityType {
	case EntityContacts:
		contacts := m.visibleContacts()
		if m.selectedRow < len(contacts) {
			return contacts[m.selectedRow].ID
		}
	case EntityCompanies:
		companies := m.visibleCompanies()
		if m.selectedRow < len(companies) {
			return companies[m.selectedRow].ID
		}
	case EntityEvents:
		events := m.visibleEvents()
		if m.selectedRow < len(events) {
			return events[m.selectedRow].ID
		}
	case EntityLists:
		lists := m.store.Lists()
		if m.selectedRow < len(lists) {
			return lists[m.selectedRow].ID
		}
	}
	return ""
}

func (m Model) visibleContacts() []models.Contact {
	var out []models.Contact
	for _, c := range m.store.Contacts() {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) visibleCompanies() []models.Company {
	var out []models.Company
	for _, c := range m.store.Companies() {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) visibleEvents() []models.Event {
	var out []models.Event
	for _, e := range m.store.Events() {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}
