package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/bnema/mana-kadai/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Extractor turns a listing page into the candidates still open at now.
type Extractor func(page string, now time.Time, baseURL string) []domain.Candidate

type Deps struct {
	Authenticator ports.Authenticator
	Listing       ports.ListingSource
	Extract       Extractor
	PortalURL     string
	Notifier      ports.Notifier
	Aggregator    ports.Aggregator
	Flags         ports.FlagStore
	Clock         ports.Clock
	Logger        zerolog.Logger
	NewRunID      func() string
}

type RunService struct {
	auth       ports.Authenticator
	listing    ports.ListingSource
	extract    Extractor
	portalURL  string
	notifier   ports.Notifier
	aggregator ports.Aggregator
	flags      ports.FlagStore
	clock      ports.Clock
	logger     zerolog.Logger
	newRunID   func() string
}

func NewRunService(deps Deps) *RunService {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	newRunID := deps.NewRunID
	if newRunID == nil {
		newRunID = func() string { return uuid.NewString() }
	}

	return &RunService{
		auth:       deps.Authenticator,
		listing:    deps.Listing,
		extract:    deps.Extract,
		portalURL:  deps.PortalURL,
		notifier:   deps.Notifier,
		aggregator: deps.Aggregator,
		flags:      deps.Flags,
		clock:      clock,
		logger:     deps.Logger,
		newRunID:   newRunID,
	}
}

// Execute performs one scheduled run and reports any failure to the
// notification channel before returning it.
func (s *RunService) Execute(ctx context.Context) error {
	report, err := s.Run(ctx)
	if err == nil {
		return nil
	}

	s.logger.Error().Err(err).Str("run_id", report.RunID).Msg("run failed")

	if reportErr := s.ReportFailure(ctx, err); reportErr != nil {
		s.logger.Error().Err(reportErr).Str("run_id", report.RunID).Msg("failure report not delivered")
		return errors.Join(err, fmt.Errorf("report failure: %w", reportErr))
	}

	return err
}

func (s *RunService) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: s.newRunID()}
	log := s.logger.With().Str("run_id", report.RunID).Logger()

	now := s.clock.Now()
	records, candidates, err := s.collect(ctx, log, now)
	report.Candidates = candidates
	report.Records = records
	if err != nil {
		return report, err
	}

	log.Debug().Msg("loading notify flag")
	current, err := s.flags.Load(ctx)
	if err != nil {
		return report, fmt.Errorf("load notify flag: %w", err)
	}

	decision := domain.Decide(current, len(records))
	report.Decision = decision
	report.Suppressed = !decision.Deliver

	log.Info().
		Str("flag", current.Label()).
		Str("next", decision.Next.Label()).
		Bool("deliver", decision.Deliver).
		Bool("no_assignments", decision.NoAssignmentsNotice).
		Msg("notification decided")

	// The notified flag is written only once its notice is out.
	if decision.Persist && !decision.NoAssignmentsNotice {
		if err := s.flags.Save(ctx, decision.Next); err != nil {
			return report, fmt.Errorf("save notify flag: %w", err)
		}
	}

	if len(records) > 0 {
		log.Debug().Int("records", len(records)).Msg("publishing deadlines")
		if err := s.aggregator.PutDeadlines(ctx, records); err != nil {
			return report, fmt.Errorf("publish deadlines: %w", err)
		}
	}

	switch {
	case !decision.Deliver:
		log.Info().Msg("no-assignments notice already sent, suppressed")
	case decision.NoAssignmentsNotice:
		if err := s.notifier.SendNoAssignments(ctx); err != nil {
			return report, fmt.Errorf("send no-assignments notice: %w", err)
		}
		if err := s.flags.Save(ctx, decision.Next); err != nil {
			return report, fmt.Errorf("save notify flag: %w", err)
		}
	default:
		for _, record := range records {
			if err := s.notifier.SendRecord(ctx, record); err != nil {
				return report, fmt.Errorf("send record %q: %w", record.Title, err)
			}
		}
		log.Info().Int("sent", len(records)).Msg("records delivered")
	}

	return report, nil
}

// Preview collects the current records without delivering or touching the flag.
func (s *RunService) Preview(ctx context.Context) ([]domain.Record, error) {
	log := s.logger.With().Str("run_id", s.newRunID()).Bool("preview", true).Logger()
	records, _, err := s.collect(ctx, log, s.clock.Now())
	return records, err
}

func (s *RunService) ReportFailure(ctx context.Context, runErr error) error {
	if runErr == nil {
		return nil
	}
	return s.notifier.SendError(ctx, runErr.Error())
}

func (s *RunService) collect(ctx context.Context, log zerolog.Logger, now time.Time) ([]domain.Record, int, error) {
	log.Debug().Msg("authenticating")
	cred, err := s.auth.Authenticate(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("authenticate: %w", err)
	}

	log.Debug().Msg("fetching listing")
	page, err := s.listing.FetchListing(ctx, cred)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch listing: %w", err)
	}

	candidates := s.extract(page, now, s.portalURL)
	records := domain.Classify(candidates, now)

	log.Info().
		Int("candidates", len(candidates)).
		Int("records", len(records)).
		Msg("listing classified")

	return records, len(candidates), nil
}
