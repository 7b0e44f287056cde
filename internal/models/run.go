package models

import "time"

// Run is one pipeline invocation as recorded in the run journal. Either
// ErrorCode is set or the three date fields hold whatever categories the
// site reported (empty string for an absent category).
type Run struct {
	ID        int64     `db:"id"`
	RanAt     time.Time `db:"ran_at"`
	Postcode  string    `db:"postcode"`
	ErrorCode string    `db:"error_code"`
	Rubbish   string    `db:"rubbish"`
	Recycling string    `db:"recycling"`
	Food      string    `db:"food"`
}

// Record renders the run in the output-contract shape.
func (r Run) Record() map[string]string {
	if r.ErrorCode != "" {
		return map[string]string{"Error": r.ErrorCode}
	}
	out := make(map[string]string, 3)
	if r.Rubbish != "" {
		out[string(Rubbish)] = r.Rubbish
	}
	if r.Recycling != "" {
		out[string(Recycling)] = r.Recycling
	}
	if r.Food != "" {
		out[string(Food)] = r.Food
	}
	return out
}
