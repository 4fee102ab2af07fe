package assignments

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

var renderNow = time.Date(2026, 10, 18, 12, 0, 0, 0, domain.PortalZone)

func record(title, course string, remaining time.Duration) domain.Record {
	due := renderNow.Add(remaining)
	tier, _ := domain.TierFor(remaining)
	return domain.Record{
		Candidate: domain.Candidate{
			Title:   title,
			Course:  course,
			DueText: due.Format(domain.DueLayout),
			Due:     due,
		},
		Tier:      tier,
		Remaining: remaining,
	}
}

func TestRenderRecords(t *testing.T) {
	t.Parallel()

	output := Render([]domain.Record{
		record("期末レポート", "統計学", 51*time.Hour),
		record("Quiz 3", "Linear Algebra", 90*time.Minute),
	}, RenderOptions{Now: renderNow})

	assert.Contains(t, output, "records: 2 (urgent 1, soon 1, upcoming 0)")
	assert.Contains(t, output, "as of 2026-10-18 12:00")
	assert.Contains(t, output, "期末レポート")
	assert.Contains(t, output, "統計学")
	assert.Contains(t, output, "2d 3h 0m")
	assert.Contains(t, output, "0d 1h 30m")
	assert.Contains(t, output, "2026-10-20 15:00")
	assert.Contains(t, output, "urgent")
	assert.Contains(t, output, "soon")
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	output := Render(nil, RenderOptions{Now: renderNow})

	assert.Contains(t, output, "records: 0")
	assert.Contains(t, output, "直近の課題なし")
	assert.NotContains(t, output, "course")
}

func TestSummaryCountsTiers(t *testing.T) {
	t.Parallel()

	got := Summary([]domain.Record{
		record("a", "c", 2*time.Hour),
		record("b", "c", 3*time.Hour),
		record("d", "c", 100*time.Hour),
	})
	assert.Equal(t, "records: 3 (urgent 2, soon 0, upcoming 1)", got)
}

func TestCellPadsByDisplayWidth(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "ascii padded", text: "abc", width: 6, want: "abc   "},
		{name: "cjk padded", text: "統計", width: 6, want: "統計  "},
		{name: "cjk truncated", text: "情報科学演習", width: 7, want: "情報科~"},
		{name: "exact", text: "abcdef", width: 6, want: "abcdef"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := cell(tc.text, tc.width)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.width, runewidth.StringWidth(got))
		})
	}
}

func TestRenderUrgencyBar(t *testing.T) {
	t.Parallel()

	s := newStyles()
	plain := lipgloss.NewStyle()

	testCases := []struct {
		name      string
		remaining time.Duration
		filled    int
	}{
		{name: "due now", remaining: 0, filled: 10},
		{name: "half week", remaining: horizon / 2, filled: 5},
		{name: "beyond week", remaining: 2 * horizon, filled: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bar := renderUrgencyBar(tc.remaining, 10, plain, s)
			assert.Equal(t, tc.filled, strings.Count(bar, "="))
			assert.Equal(t, 10-tc.filled, strings.Count(bar, "-"))
		})
	}
}
