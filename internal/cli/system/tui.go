package system

import (
	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/logger"
	"github.com/dailystep/dailystep/internal/timer"
	"github.com/dailystep/dailystep/internal/tui"
)

type TuiCmd struct {
	Focus      int `default:"25" help:"Focus session length in minutes."`
	ShortBreak int `default:"5" help:"Short break length in minutes."`
	LongBreak  int `default:"15" help:"Long break length in minutes."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.RequireIdentity()
	if err != nil {
		return err
	}

	// A broken cache should not keep the TUI from starting.
	store, err := ctx.OpenCache()
	if err != nil {
		logger.Warn("offline cache unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	settings := timer.Settings{
		FocusMinutes:      c.Focus,
		ShortBreakMinutes: c.ShortBreak,
		LongBreakMinutes:  c.LongBreak,
	}
	return tui.Run(tui.NewApp(ctx.API, store, profile, settings))
}
