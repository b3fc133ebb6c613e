// Package main is the trackboard CLI: a terminal front end for the tracker
// API's project board. It wires all dependencies using samber/do v2, runs a
// single subcommand, and flushes telemetry before exiting.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/samber/do/v2"
	"github.com/spf13/pflag"

	"github.com/trackboard/trackboard/internal/adapters/clients/acl"
	"github.com/trackboard/trackboard/internal/app"
	"github.com/trackboard/trackboard/internal/app/session"
	"github.com/trackboard/trackboard/internal/platform/config"
	"github.com/trackboard/trackboard/internal/platform/health"
	"github.com/trackboard/trackboard/internal/platform/httpclient"
	"github.com/trackboard/trackboard/internal/platform/logging"
	"github.com/trackboard/trackboard/internal/platform/telemetry"
	"github.com/trackboard/trackboard/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

const usage = `trackboard - terminal client for the tracker API

Usage:
  trackboard [--profile P] [--config-dir DIR] <command> [args]

Commands:
  login            sign in (prompts for credentials)
  signup           create an account
  logout           sign out and forget the stored session
  projects         list projects under the configured parent
  project create <name>
  project rm <id>
  board <project-id>      show the three-column board
  ticket new --project <id> --title T --description D [--priority P] [--reporter R]
  ticket move <id>        advance a ticket one workflow step
  ticket rm <id>
  comments <ticket-id>    show a ticket's comment thread
  comment <ticket-id> --body B [--author A]
  health           check tracker API availability
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("trackboard", pflag.ContinueOnError)
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	profile := flags.String("profile", "local", "config profile (configs/{profile}.yaml)")
	configDir := flags.String("config-dir", "configs", "directory holding config YAML files")
	flags.SetInterspersed(false)

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	args := flags.Args()
	if len(args) == 0 {
		flags.Usage()
		return errors.New("missing command")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := logging.WithLogger(context.Background(), logger)
	ctx = httpclient.WithInvocationID(ctx, uuid.NewString())

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Hydrate the session before dispatching; commands use the stored
	// identity as the default reporter/author.
	sess, err := do.Invoke[*session.Session](injector)
	if err != nil {
		return fmt.Errorf("resolving session: %w", err)
	}
	if err := sess.Hydrate(); err != nil {
		return err
	}

	// Downstream health reporting rides on the circuit breaker state.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))

	return dispatch(ctx, injector, args)
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "tracker-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TrackerClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTrackerClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewAuthClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.SessionStore, error) {
		return session.NewFileStore(cfg.Session.Path)
	})

	do.Provide(injector, func(i do.Injector) (*session.Session, error) {
		auth := do.MustInvoke[ports.AuthClient](i)
		store := do.MustInvoke[ports.SessionStore](i)
		return session.New(auth, store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*app.Syncer, error) {
		return app.NewSyncer(logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.Confirmer, error) {
		return terminalConfirmer(), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.ProjectStore, error) {
		client := do.MustInvoke[ports.TrackerClient](i)
		syncer := do.MustInvoke[*app.Syncer](i)
		confirmer := do.MustInvoke[ports.Confirmer](i)
		return app.NewProjectStore(client, syncer, confirmer, cfg.Board.ParentProject, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.TicketStore, error) {
		client := do.MustInvoke[ports.TrackerClient](i)
		syncer := do.MustInvoke[*app.Syncer](i)
		confirmer := do.MustInvoke[ports.Confirmer](i)
		return app.NewTicketStore(client, syncer, confirmer, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.CommentStore, error) {
		client := do.MustInvoke[ports.TrackerClient](i)
		syncer := do.MustInvoke[*app.Syncer](i)
		tickets := do.MustInvoke[*app.TicketStore](i)
		return app.NewCommentStore(client, syncer, tickets.Refresh, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}
