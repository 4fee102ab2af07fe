package cmd

import (
	"context"
	"fmt"
	"io"

	assignmentsrender "github.com/bnema/mana-kadai/internal/adapters/render/assignments"
	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const previewLabel = "Signing in to manaba and reading assignments..."

// previewResultMsg carries what Preview returned back into the program.
type previewResultMsg struct {
	records []domain.Record
	err     error
}

// previewModel spins until the preview arrives, then leaves a one-line
// tier summary behind on success.
type previewModel struct {
	spinner spinner.Model
	done    lipgloss.Style
	preview func() tea.Msg
	result  *previewResultMsg
}

func newPreviewModel(preview func() tea.Msg) previewModel {
	return previewModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#33C7FF"))),
		),
		done:    lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD787")),
		preview: preview,
	}
}

func (m previewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.preview)
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case previewResultMsg:
		m.result = &msg
		return m, tea.Quit
	case spinner.TickMsg:
		if m.result != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m previewModel) View() string {
	switch {
	case m.result == nil:
		return m.spinner.View() + " " + previewLabel
	case m.result.err != nil:
		return ""
	default:
		return m.done.Render("✓ "+assignmentsrender.Summary(m.result.records)) + "\n"
	}
}

// previewWithSpinner runs preview behind a spinner drawn on output and
// returns its records.
func previewWithSpinner(ctx context.Context, output io.Writer, preview func(context.Context) ([]domain.Record, error)) ([]domain.Record, error) {
	p := tea.NewProgram(
		newPreviewModel(func() tea.Msg {
			records, err := preview(ctx)
			return previewResultMsg{records: records, err: err}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(previewModel)
	if !ok || m.result == nil {
		return nil, fmt.Errorf("preview did not finish (model %T)", final)
	}
	return m.result.records, m.result.err
}
