// ABOUTME: Tests for ICS follow-up reminder generation
// ABOUTME: Validates timestamps, unique UIDs, and default duration
package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUpICS(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	out := FollowUpICS("Follow up with Ann", start, 30*time.Minute)

	lines := strings.Split(out, "\r\n")
	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])

	assert.Contains(t, lines, "DTSTART:20260314T150000Z")
	assert.Contains(t, lines, "DTEND:20260314T153000Z")
	assert.Contains(t, lines, "SUMMARY:Follow up with Ann")

	var uid string
	for _, line := range lines {
		if strings.HasPrefix(line, "UID:") {
			uid = strings.TrimPrefix(line, "UID:")
		}
	}
	require.NotEmpty(t, uid)

	// Each document gets a distinct UID
	second := FollowUpICS("Follow up with Ann", start, 30*time.Minute)
	assert.NotContains(t, second, uid)
}

func TestFollowUpICSDefaultDuration(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	out := FollowUpICS("Ping", start, 0)

	assert.Contains(t, out, "DTEND:20260314T150500Z")
}
