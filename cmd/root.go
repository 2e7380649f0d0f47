// Package cmd implements the verse CLI.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/aallbrig/verse/cobramenu"
	"github.com/aallbrig/verse/config"
	"github.com/aallbrig/verse/history"
	"github.com/aallbrig/verse/menu"
)

type handlerFunc func(cmd *cobra.Command, inv *menu.Invocation) error

// app carries what the statement handlers share.
type app struct {
	cfg      *config.Config
	menu     *menu.Menu
	handlers map[string]handlerFunc
}

// NewRootCmd returns a fresh root command. Configuration is read from the
// environment when it is called.
func NewRootCmd() *cobra.Command {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}
	setupLogging(cfg)

	a := &app{cfg: cfg}
	a.menu = NewMenu(menu.WithLogger(log.Logger))
	a.handlers = map[string]handlerFunc{
		"build":   a.runBuild,
		"tree":    a.runTree,
		"history": a.runHistory,
		"version": a.runVersion,
	}

	c := cobramenu.NewCommand(a.menu, a.handle)
	c.PersistentPreRunE = func(*cobra.Command, []string) error {
		if cfgErr != nil {
			return fmt.Errorf("load config: %w", cfgErr)
		}
		return nil
	}
	return c
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(cobramenu.Execute(NewRootCmd()))
}

func setupLogging(cfg *config.Config) {
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if cfg.LogFile != "" {
		w = zerolog.MultiLevelWriter(w, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger().Level(cfg.LogLevel)
}

func (a *app) handle(cmd *cobra.Command, inv *menu.Invocation) error {
	name := inv.Statement().Name()
	run, ok := a.handlers[name]
	if !ok {
		return fmt.Errorf("statement %q has no handler", name)
	}
	if err := run(cmd, inv); err != nil {
		return err
	}
	if name != "history" {
		a.record(inv)
	}
	return nil
}

// record stores a successful invocation. Failures are logged, never returned.
func (a *app) record(inv *menu.Invocation) {
	if a.cfg.NoHistory {
		return
	}
	store, err := history.Open(a.cfg.HistoryDir)
	if err != nil {
		log.Warn().Err(err).Msg("could not open history, not recording")
		return
	}
	defer store.Close()
	e, err := store.Record(inv.Statement().Name(), inv.Tokens())
	if err != nil {
		log.Warn().Err(err).Msg("history write failed")
		return
	}
	log.Debug().Str("id", e.ID).Str("statement", e.Statement).Msg("recorded invocation")
}
