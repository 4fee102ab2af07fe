package cmd

import (
	"encoding/json"
	"fmt"

	assignmentsrender "github.com/bnema/mana-kadai/internal/adapters/render/assignments"
	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/spf13/cobra"
)

type checkRecord struct {
	Title     string `json:"title"`
	Course    string `json:"course"`
	URL       string `json:"url"`
	Deadline  string `json:"deadline"`
	Tier      int    `json:"tier"`
	TierLabel string `json:"tier_label"`
	Remaining string `json:"remaining"`
}

func newCheckCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show upcoming deadlines without notifying",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runCheck(cmd *cobra.Command, app *app, asJSON bool) error {
	if asJSON {
		records, err := app.runService.Preview(cmd.Context())
		if err != nil {
			return err
		}
		return writeCheckJSON(cmd, records)
	}

	records, err := previewWithSpinner(cmd.Context(), cmd.ErrOrStderr(), app.runService.Preview)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.renderer(records, assignmentsrender.RenderOptions{Now: app.now()}))
	return err
}

func writeCheckJSON(cmd *cobra.Command, records []domain.Record) error {
	out := make([]checkRecord, 0, len(records))
	for _, record := range records {
		out = append(out, checkRecord{
			Title:     record.Title,
			Course:    record.Course,
			URL:       record.URL,
			Deadline:  record.DeadlineISO(),
			Tier:      int(record.Tier),
			TierLabel: record.Tier.Label(),
			Remaining: record.RemainingText(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
