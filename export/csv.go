// ABOUTME: CSV export for contact collections
// ABOUTME: Quoted fields, pipe-joined tags, empty strings for absent values
package export

import (
	"strings"

	"github.com/paradiigm/cardstack/models"
)

var csvHeaders = []string{"Name", "Role", "Company", "Email", "Phone", "City", "State", "Country", "Tags"}

// CSV renders contacts as comma-separated values with every field quoted.
func CSV(contacts []models.Contact) string {
	var b strings.Builder
	writeRow(&b, csvHeaders)

	for _, c := range contacts {
		writeRow(&b, []string{
			c.Name, c.Role, c.Company, c.Email, c.Phone,
			c.Address.City, c.Address.State, c.Address.Country,
			strings.Join(c.Tags, "|"),
		})
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
