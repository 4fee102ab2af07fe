package assignments

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	defaultTitleWidth  = 32
	defaultCourseWidth = 20
	barWidth           = 14
	horizon            = 7 * 24 * time.Hour
	ellipsis           = "~"
)

type RenderOptions struct {
	Now         time.Time
	TitleWidth  int
	CourseWidth int
}

func (o RenderOptions) widths() (int, int) {
	title, course := o.TitleWidth, o.CourseWidth
	if title <= 0 {
		title = defaultTitleWidth
	}
	if course <= 0 {
		course = defaultCourseWidth
	}
	return title, course
}

func renderView(records []domain.Record, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("manaba assignments due within 7 days"),
		s.header.Render(headerLine(records, opts.Now)),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("直近の課題なし"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	titleWidth, courseWidth := opts.widths()
	lines = append(lines, s.column.Render(strings.Join([]string{
		cell("tier", 8),
		cell("due", len(domain.DueLayout)),
		cell("left", 11),
		cell("", barWidth+2),
		cell("course", courseWidth),
		cell("title", titleWidth),
	}, " ")))

	for _, record := range records {
		lines = append(lines, recordLine(record, titleWidth, courseWidth, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Render draws the check table for records.
func Render(records []domain.Record, opts RenderOptions) string {
	return renderView(records, opts, newStyles())
}

// Summary counts records per tier, e.g. "records: 2 (urgent 1, soon 1, upcoming 0)".
func Summary(records []domain.Record) string {
	counts := map[domain.Tier]int{}
	for _, record := range records {
		counts[record.Tier]++
	}

	return fmt.Sprintf("records: %d (urgent %d, soon %d, upcoming %d)",
		len(records), counts[domain.TierUrgent], counts[domain.TierSoon], counts[domain.TierUpcoming])
}

func headerLine(records []domain.Record, now time.Time) string {
	line := Summary(records)
	if !now.IsZero() {
		line += " as of " + now.In(domain.PortalZone).Format(domain.DueLayout)
	}
	return line
}

func recordLine(record domain.Record, titleWidth, courseWidth int, s styles) string {
	tierStyle := s.tier(record.Tier)

	return strings.Join([]string{
		tierStyle.Render(cell(record.Tier.Label(), 8)),
		s.detail.Render(cell(record.DueText, len(domain.DueLayout))),
		tierStyle.Render(cell(record.RemainingText(), 11)),
		renderUrgencyBar(record.Remaining, barWidth, tierStyle, s),
		s.course.Render(cell(record.Course, courseWidth)),
		s.detail.Render(cell(record.Title, titleWidth)),
	}, " ")
}

// cell truncates and pads text to a fixed display width. Course and title
// text is mostly double-width, so byte or rune counts would misalign columns.
func cell(text string, width int) string {
	text = strings.TrimSpace(text)
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, ellipsis)
	}
	return runewidth.FillRight(text, width)
}

// renderUrgencyBar fills in proportion to how much of the week has elapsed
// before the deadline.
func renderUrgencyBar(remaining time.Duration, width int, fill lipgloss.Style, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := 1 - float64(remaining)/float64(horizon)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(float64(width) * fraction))
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
