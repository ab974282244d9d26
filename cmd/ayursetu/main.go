package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/ayursetu-client/gateway"
	"github.com/jrsteele09/ayursetu-client/internal/config"
	"github.com/jrsteele09/ayursetu-client/sessions"
	"github.com/jrsteele09/ayursetu-client/token"
	"github.com/jrsteele09/ayursetu-client/token/filerepo"
	tokenfakerepo "github.com/jrsteele09/ayursetu-client/token/repofake"
	"github.com/jrsteele09/ayursetu-client/token/sqliterepo"
	"github.com/jrsteele09/ayursetu-client/users"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const restoreTimeout = 5 * time.Second

// exitRelogin is the exit status when the backend rejected the session mid-command.
const exitRelogin = 3

func main() {
	err := run(os.Args[1:])
	switch {
	case errors.Is(err, errRelogin):
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(exitRelogin)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	if len(args) == 0 {
		usage()
		return errors.New("no command given")
	}

	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	store, closeStore, err := newTokenStore(c)
	if err != nil {
		return err
	}
	defer closeStore()

	registry := prometheus.NewRegistry()
	metrics, err := gateway.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("gateway.NewMetrics: %w", err)
	}
	defer logRequestTotals(registry)

	gw := gateway.New(c.GetAPIURL(), append(gatewayOptions(c), gateway.WithMetrics(metrics))...)
	usersAPI := users.NewAPI(gw)
	redirect := &loginRedirect{}
	manager := sessions.New(gw, usersAPI, store, redirect)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager.RestoreSession(ctx)
	waitCtx, cancel := context.WithTimeout(ctx, restoreTimeout)
	defer cancel()
	if err := manager.WaitReady(waitCtx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	app := &app{gw: gw, users: usersAPI, session: manager, redirect: redirect}
	return app.dispatch(ctx, args[0], args[1:])
}

func setupLogging(c config.Config) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func gatewayOptions(c config.Config) []gateway.Option {
	opts := []gateway.Option{gateway.WithDebug(c.IsDev())}
	for k, v := range c.GetDefaultHeaders() {
		opts = append(opts, gateway.WithHeader(k, v))
	}
	return opts
}

// newTokenStore opens the configured token store. The returned func releases it.
func newTokenStore(c config.Config) (token.Repo, func(), error) {
	switch c.GetTokenStore() {
	case config.StoreMemory:
		return tokenfakerepo.NewFakeTokenRepo(), func() {}, nil
	case config.StoreSQLite:
		repo, err := sqliterepo.NewSQLiteTokenRepo(c.GetTokenStorePath())
		if err != nil {
			return nil, nil, fmt.Errorf("sqliterepo.NewSQLiteTokenRepo: %w", err)
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Warn().Err(err).Msg("Closing token store")
			}
		}, nil
	default:
		repo, err := filerepo.NewFileTokenRepo(c.GetTokenStorePath())
		if err != nil {
			return nil, nil, fmt.Errorf("filerepo.NewFileTokenRepo: %w", err)
		}
		return repo, func() {}, nil
	}
}

// logRequestTotals logs how many backend calls the command made, per method and code.
func logRequestTotals(g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Debug().Err(err).Msg("Gathering gateway metrics")
		return
	}
	for _, f := range families {
		if f.GetName() != "ayursetu_gateway_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			ev := log.Debug()
			for _, l := range m.GetLabel() {
				ev = ev.Str(l.GetName(), l.GetValue())
			}
			ev.Float64("count", m.GetCounter().GetValue()).Msg("Backend requests")
		}
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
