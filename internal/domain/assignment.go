package domain

import (
	"fmt"
	"strings"
	"time"
)

// DueLayout is the portal's due-date format, also used for display.
const DueLayout = "2006-01-02 15:04"

// PortalZone is the fixed +09:00 offset the portal renders due dates in.
var PortalZone = time.FixedZone("JST", 9*60*60)

type Tier int

const (
	TierUrgent   Tier = 1
	TierSoon     Tier = 2
	TierUpcoming Tier = 3
)

func (t Tier) Label() string {
	switch t {
	case TierUrgent:
		return "urgent"
	case TierSoon:
		return "soon"
	case TierUpcoming:
		return "upcoming"
	default:
		return fmt.Sprintf("tier-%d", int(t))
	}
}

type Candidate struct {
	Title   string
	Course  string
	URL     string
	DueText string
	Due     time.Time
}

// DeadlineISO returns the due text with a T separator and no zone.
func (c Candidate) DeadlineISO() string {
	return strings.Replace(c.DueText, " ", "T", 1)
}

type Record struct {
	Candidate
	Tier      Tier
	Remaining time.Duration
}

func (r Record) RemainingText() string {
	return FormatRemaining(r.Remaining)
}

// FormatRemaining renders whole days plus the hour and minute remainders.
func FormatRemaining(d time.Duration) string {
	total := int64(d / time.Second)
	days := total / 86400
	seconds := total % 86400
	if seconds < 0 {
		days--
		seconds += 86400
	}

	return fmt.Sprintf("%dd %dh %dm", days, seconds/3600, seconds/60%60)
}

// TierFor maps the time left until a deadline to its tier. ok is false when
// the deadline is a week or more away.
func TierFor(remaining time.Duration) (Tier, bool) {
	switch {
	case remaining < 24*time.Hour:
		return TierUrgent, true
	case remaining < 3*24*time.Hour:
		return TierSoon, true
	case remaining < 7*24*time.Hour:
		return TierUpcoming, true
	default:
		return 0, false
	}
}

func Classify(candidates []Candidate, now time.Time) []Record {
	records := make([]Record, 0, len(candidates))
	for _, candidate := range candidates {
		remaining := candidate.Due.Sub(now)
		tier, ok := TierFor(remaining)
		if !ok {
			continue
		}

		records = append(records, Record{
			Candidate: candidate,
			Tier:      tier,
			Remaining: remaining,
		})
	}

	return records
}
