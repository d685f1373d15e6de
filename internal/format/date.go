package format

import (
	"fmt"
	"time"

	"github.com/indianbuddy/personal-finance-manager/internal/models"
)

// RelativeDate labels d relative to the calendar day of now: "Today",
// "Yesterday", or an abbreviated day and month such as "29 Jul".
func RelativeDate(d models.Date, now time.Time) string {
	today := models.DateOf(now)
	switch {
	case d.Equal(today):
		return "Today"
	case d.Equal(today.AddDays(-1)):
		return "Yesterday"
	default:
		return d.Format("2 Jan")
	}
}

// ShortDate renders d as day/month without padding ("31/7"), the compact
// label used on chart axes.
func ShortDate(d models.Date) string {
	return fmt.Sprintf("%d/%d", d.Day(), int(d.Month()))
}
