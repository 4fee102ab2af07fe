package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/bnema/mana-kadai/internal/adapters/aggregator"
	"github.com/bnema/mana-kadai/internal/adapters/notify/discord"
	"github.com/bnema/mana-kadai/internal/adapters/portal"
	assignmentsrender "github.com/bnema/mana-kadai/internal/adapters/render/assignments"
	passstore "github.com/bnema/mana-kadai/internal/adapters/secrets/pass"
	"github.com/bnema/mana-kadai/internal/adapters/shibboleth"
	statefile "github.com/bnema/mana-kadai/internal/adapters/state/file"
	"github.com/bnema/mana-kadai/internal/application"
	"github.com/bnema/mana-kadai/internal/config"
	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/bnema/mana-kadai/internal/logging"
	"github.com/bnema/mana-kadai/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	cfg          config.Config
	logger       zerolog.Logger
	runService   *application.RunService
	stateService *application.StateService
	statePath    string
	renderer     func([]domain.Record, assignmentsrender.RenderOptions) string
	now          func() time.Time
}

func wireApp(logOut io.Writer) (*app, error) {
	cfg, err := config.Load(viper.New(), config.Options{})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel(), cfg.LogPretty(), logOut)

	authenticator := shibboleth.NewClient(shibboleth.Config{
		PortalURL:   cfg.PortalURL(),
		IdPURL:      cfg.IdPURL(),
		Username:    cfg.PortalUsername(),
		Password:    cfg.PortalPassword(),
		PasswordRef: cfg.PasswordPass(),
		UserAgent:   cfg.UserAgent(),
		Timeout:     cfg.HTTPTimeout(),
	}, logger).WithSecretSource(passstore.NewStore())

	flags := statefile.NewStore(cfg.StatePath())

	runService := application.NewRunService(application.Deps{
		Authenticator: authenticator,
		Listing:       portal.NewFetcher(cfg.PortalURL(), cfg.UserAgent(), cfg.HTTPTimeout()),
		Extract:       portal.Extract,
		PortalURL:     cfg.PortalURL(),
		Notifier:      discord.NewWebhook(cfg.WebhookURL(), cfg.HTTPTimeout()),
		Aggregator:    aggregator.NewClient(cfg.AggregatorURL(), cfg.AggregatorToken(), cfg.HTTPTimeout()),
		Flags:         flags,
		Clock:         ports.SystemClock{},
		Logger:        logger,
	})

	return &app{
		cfg:          cfg,
		logger:       logger,
		runService:   runService,
		stateService: application.NewStateService(flags),
		statePath:    flags.Path(),
		renderer:     assignmentsrender.Render,
		now:          time.Now,
	}, nil
}
