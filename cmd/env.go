package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/fitbook/internal/application"
	"github.com/inovacc/fitbook/internal/booking"
	"github.com/inovacc/fitbook/internal/catalog"
	"github.com/inovacc/fitbook/internal/cli"
	"github.com/inovacc/fitbook/internal/config"
	"github.com/inovacc/fitbook/internal/model"
	"github.com/inovacc/fitbook/internal/notify"
	"github.com/inovacc/fitbook/internal/profile"
	"github.com/inovacc/fitbook/internal/store"
	"github.com/spf13/cobra"
)

// env is the per-invocation wiring shared by commands.
type env struct {
	cfg     model.Config
	dir     string
	logger  *slog.Logger
	logFile *os.File
	kv      store.KV
}

// setup loads configuration and builds the logger. When tui is set, logs go
// to fitbook.log so they do not draw over the screen.
func setup(cmd *cobra.Command, tui bool) (*env, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if ephemeral {
		cfg.Store.Backend = model.BackendMemory
	}

	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, dir: dir}

	var out io.Writer = cmd.ErrOrStderr()

	if tui {
		f, err := os.OpenFile(filepath.Join(dir, application.LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}

		e.logFile = f
		out = f
	}

	e.logger, err = newLogger(out, cfg.Log)
	if err != nil {
		e.Close()

		return nil, err
	}

	slog.SetDefault(e.logger)

	return e, nil
}

func (e *env) Close() {
	if e.kv != nil {
		if err := e.kv.Close(); err != nil {
			e.logger.Warn("close store", "error", err)
		}
	}

	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

func (e *env) store(ctx context.Context) (store.KV, error) {
	if e.kv != nil {
		return e.kv, nil
	}

	kv, err := store.Open(ctx, e.cfg.Store, e.dir)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("store opened", "backend", e.cfg.Store.Backend)
	e.kv = kv

	return kv, nil
}

func (e *env) booker() *booking.Simulator {
	return booking.NewSimulator(
		booking.WithDelay(e.cfg.Booking.Delay),
		booking.WithFailureRate(e.cfg.Booking.FailureRate),
	)
}

func (e *env) catalog() *catalog.Catalog {
	return catalog.New(catalog.Default(), e.cfg.Catalog.LoadDelay)
}

// dispatcher fans messages out to the given senders plus the log.
func (e *env) dispatcher(senders ...notify.Sender) *notify.Dispatcher {
	d := notify.NewDispatcher(false, e.logger)

	for _, s := range senders {
		d.Register(s)
	}

	d.Register(notify.NewLog(e.logger))

	return d
}

// deps wires the TUI screens. kv may be nil for screens without a profile.
func (e *env) deps(kv store.KV) cli.Deps {
	toast := notify.NewToast()

	d := cli.Deps{
		Catalog:         e.catalog(),
		Booker:          e.booker(),
		Dispatcher:      e.dispatcher(toast),
		Toast:           toast,
		HighlightWindow: e.cfg.Booking.Highlight,
		Logger:          e.logger,
	}

	if kv != nil {
		d.Profile = profile.NewService(kv, e.logger)
	}

	return d
}

// newLogger builds the slog handler described by cfg.
func newLogger(w io.Writer, cfg model.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", cfg.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
