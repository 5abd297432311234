// Package ledger is the pure balance computation core: classification rules
// mapping each financial record to its signed cash/bank effect, inclusive
// as-of-date cutoff semantics, and the snapshot aggregator that derives a
// consistent point-in-time position from the event stores. The package does
// no I/O; callers fetch the records and hand them in.
package ledger

import "time"

// Cutoff is the inclusive upper bound of an as-of computation. A record dated
// exactly at the cutoff instant is included.
type Cutoff struct {
	t time.Time
}

// At builds a cutoff at an exact instant.
func At(t time.Time) Cutoff {
	return Cutoff{t: t}
}

// EndOfDay builds a cutoff at the last nanosecond of t's calendar day, in
// t's location. Callers that hold only a calendar date use this so same-day
// records are included; truncating to midnight was a recurring source of
// off-by-one discrepancies in the legacy balance scripts.
func EndOfDay(t time.Time) Cutoff {
	y, m, d := t.Date()
	return Cutoff{t: time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())}
}

// Now builds a cutoff at the current instant.
func Now() Cutoff {
	return Cutoff{t: time.Now().UTC()}
}

// Includes reports whether a record dated at t falls within the cutoff.
func (c Cutoff) Includes(t time.Time) bool {
	return !t.After(c.t)
}

// Time returns the cutoff instant.
func (c Cutoff) Time() time.Time {
	return c.t
}
