package application

import "github.com/bnema/mana-kadai/internal/domain"

// Report summarises one run.
type Report struct {
	RunID      string
	Candidates int
	Records    []domain.Record
	Decision   domain.Decision
	Suppressed bool
}

func (r Report) Delivered() int {
	switch {
	case !r.Decision.Deliver:
		return 0
	case r.Decision.NoAssignmentsNotice:
		return 1
	default:
		return len(r.Records)
	}
}
