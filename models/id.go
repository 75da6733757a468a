// ABOUTME: Entity id generation
// ABOUTME: Prefixed ULIDs give sortable, collision-free ids per entity type
package models

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Id prefixes per entity type. The prefix is cosmetic; uniqueness comes from
// the ULID (millisecond timestamp plus random entropy).
const (
	PrefixContact = "contact"
	PrefixCompany = "company"
	PrefixEvent   = "event"
	PrefixList    = "list"
)

// NewID returns a fresh unique id for the given entity prefix.
func NewID(prefix string) string {
	return prefix + "_" + strings.ToLower(ulid.Make().String())
}
