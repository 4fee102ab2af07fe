package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierForBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		remaining time.Duration
		want      Tier
		wantOK    bool
	}{
		{name: "due now", remaining: 0, want: TierUrgent, wantOK: true},
		{name: "just under a day", remaining: 24*time.Hour - time.Second, want: TierUrgent, wantOK: true},
		{name: "exactly a day", remaining: 24 * time.Hour, want: TierSoon, wantOK: true},
		{name: "just under three days", remaining: 72*time.Hour - time.Minute, want: TierSoon, wantOK: true},
		{name: "exactly three days", remaining: 72 * time.Hour, want: TierUpcoming, wantOK: true},
		{name: "just under a week", remaining: 7*24*time.Hour - time.Nanosecond, want: TierUpcoming, wantOK: true},
		{name: "exactly a week is dropped", remaining: 7 * 24 * time.Hour, wantOK: false},
		{name: "far future is dropped", remaining: 30 * 24 * time.Hour, wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := TierFor(tc.remaining)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestFormatRemainingUsesRemainderComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "zero", d: 0, want: "0d 0h 0m"},
		{name: "two days three hours", d: 51 * time.Hour, want: "2d 3h 0m"},
		{name: "minutes only", d: 59*time.Minute + 59*time.Second, want: "0d 0h 59m"},
		{name: "mixed", d: 6*24*time.Hour + 23*time.Hour + 7*time.Minute, want: "6d 23h 7m"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatRemaining(tc.d), tc.name)
	}
}

func TestClassifyAssignsTiersAndDropsFarDeadlines(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, PortalZone)
	candidates := []Candidate{
		{Title: "urgent", Due: now.Add(2 * time.Hour)},
		{Title: "soon", Due: now.Add(51 * time.Hour)},
		{Title: "upcoming", Due: now.Add(5 * 24 * time.Hour)},
		{Title: "later", Due: now.Add(8 * 24 * time.Hour)},
	}

	records := Classify(candidates, now)
	require.Len(t, records, 3)

	assert.Equal(t, "urgent", records[0].Title)
	assert.Equal(t, TierUrgent, records[0].Tier)
	assert.Equal(t, "soon", records[1].Title)
	assert.Equal(t, TierSoon, records[1].Tier)
	assert.Equal(t, "2d 3h 0m", records[1].RemainingText())
	assert.Equal(t, "upcoming", records[2].Title)
	assert.Equal(t, TierUpcoming, records[2].Tier)
}

func TestClassifyEmptyInput(t *testing.T) {
	t.Parallel()

	records := Classify(nil, time.Now())
	assert.Empty(t, records)
}

func TestCandidateDeadlineISO(t *testing.T) {
	t.Parallel()

	c := Candidate{DueText: "2026-10-20 23:59"}
	assert.Equal(t, "2026-10-20T23:59", c.DeadlineISO())
}

func TestDecideTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current NotifyState
		records int
		want    Decision
	}{
		{
			name:    "records clear idle",
			current: StateIdle,
			records: 2,
			want:    Decision{Next: StateIdle, Persist: true, Deliver: true},
		},
		{
			name:    "records clear notified",
			current: StateNotified,
			records: 1,
			want:    Decision{Next: StateIdle, Persist: true, Deliver: true},
		},
		{
			name:    "empty from idle sends notice",
			current: StateIdle,
			records: 0,
			want:    Decision{Next: StateNotified, Persist: true, Deliver: true, NoAssignmentsNotice: true},
		},
		{
			name:    "empty while notified is suppressed",
			current: StateNotified,
			records: 0,
			want:    Decision{Next: StateNotified},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Decide(tc.current, tc.records))
		})
	}
}

func TestDecideTwoEmptyRunsNotifyOnce(t *testing.T) {
	t.Parallel()

	state := StateIdle
	notices := 0
	for i := 0; i < 2; i++ {
		decision := Decide(state, 0)
		if decision.NoAssignmentsNotice {
			notices++
		}
		state = decision.Next
	}

	assert.Equal(t, 1, notices)
	assert.Equal(t, StateNotified, state)
}

func TestErrorsFormatting(t *testing.T) {
	t.Parallel()

	authErr := &AuthError{Step: "consumer", Reason: "missing service session cookie"}
	assert.Equal(t, "auth step consumer: missing service session cookie", authErr.Error())

	deliveryErr := &DeliveryError{Target: "webhook", StatusCode: 429, Body: "rate limited"}
	assert.Equal(t, "deliver to webhook: status 429: rate limited", deliveryErr.Error())
}
