package assignments

import (
	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Tier colors mirror the webhook embed colors.
var tierColors = map[domain.Tier]lipgloss.Color{
	domain.TierUrgent:   lipgloss.Color("#FF0000"),
	domain.TierSoon:     lipgloss.Color("#F58216"),
	domain.TierUpcoming: lipgloss.Color("#86DC3D"),
}

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	column     lipgloss.Style
	course     lipgloss.Style
	detail     lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		column:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
		course:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#33C7FF")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

func (s styles) tier(t domain.Tier) lipgloss.Style {
	color, ok := tierColors[t]
	if !ok {
		return s.detail
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
