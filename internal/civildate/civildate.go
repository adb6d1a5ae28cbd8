// Package civildate resolves the service date for meal records. The desk
// operates in a single physical venue, so "today" is always evaluated in
// Pacific time regardless of where the server runs; UTC or server-local
// time would shift records across days around midnight.
package civildate

import (
	"time"
	_ "time/tzdata" // Pacific zone must resolve even on hosts without tzdata
)

const Layout = "2006-01-02"

var pacific *time.Location

func init() {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		// Hosts without tzdata still get a fixed Pacific offset rather
		// than a startup failure.
		loc = time.FixedZone("PST", -8*60*60)
	}
	pacific = loc
}

// Today returns the current service date as YYYY-MM-DD.
func Today() string {
	return At(time.Now())
}

// At returns the service date for an arbitrary instant.
func At(t time.Time) string {
	return t.In(pacific).Format(Layout)
}
