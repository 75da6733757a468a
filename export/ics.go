// ABOUTME: iCalendar follow-up reminder generation
// ABOUTME: Single VEVENT documents for contact follow-up dates
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const icsTimeLayout = "20060102T150405Z"

// FollowUpICS renders a single-event iCalendar document starting at start
// and lasting the given duration. Used for follow-up reminders.
func FollowUpICS(summary string, start time.Time, duration time.Duration) string {
	if duration <= 0 {
		duration = 5 * time.Minute
	}
	end := start.Add(duration)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//cardstack//EN",
		"BEGIN:VEVENT",
		"UID:" + uuid.NewString(),
		fmt.Sprintf("DTSTAMP:%s", time.Now().UTC().Format(icsTimeLayout)),
		fmt.Sprintf("DTSTART:%s", start.UTC().Format(icsTimeLayout)),
		fmt.Sprintf("DTEND:%s", end.UTC().Format(icsTimeLayout)),
		"SUMMARY:" + summary,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}
