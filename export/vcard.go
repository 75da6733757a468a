// ABOUTME: vCard 3.0 formatting for contacts
// ABOUTME: Pure string output; absent optional fields are skipped
package export

import (
	"fmt"
	"strings"

	"github.com/paradiigm/cardstack/models"
)

// VCard renders a contact as a vCard 3.0 document with CRLF line endings.
// Lines whose value would be empty are omitted entirely.
func VCard(c models.Contact) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + c.Name,
	}

	appendField := func(prop, value string) {
		if value != "" {
			lines = append(lines, prop+":"+value)
		}
	}

	appendField("EMAIL", c.Email)
	appendField("TEL", c.Phone)
	appendField("TITLE", c.Role)
	appendField("ORG", c.Company)

	addr := c.Address
	if addr != (models.Address{}) {
		lines = append(lines, fmt.Sprintf("ADR:;;%s;%s;%s;%s;%s",
			addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country))
	}

	appendField("NOTE", c.Notes)

	for _, url := range c.Websites {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			lines = append(lines, "URL:"+trimmed)
		}
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n")
}

// VCardFilename returns the download filename for a contact's card.
func VCardFilename(c models.Contact) string {
	name := c.Name
	if name == "" {
		name = "contact"
	}
	return strings.Join(strings.Fields(name), "_") + ".vcf"
}
