package main

import (
	"github.com/alecthomas/kong"

	"github.com/dailystep/dailystep/internal/api"
	"github.com/dailystep/dailystep/internal/cli"
	"github.com/dailystep/dailystep/internal/cli/activities"
	"github.com/dailystep/dailystep/internal/cli/auth"
	"github.com/dailystep/dailystep/internal/cli/system"
	"github.com/dailystep/dailystep/internal/cli/tasks"
	"github.com/dailystep/dailystep/internal/config"
	"github.com/dailystep/dailystep/internal/constants"
	"github.com/dailystep/dailystep/internal/errors"
	"github.com/dailystep/dailystep/internal/logger"
	"github.com/dailystep/dailystep/internal/session"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string `help:"Directory for local state." type:"path" default:"~/.config/dailystep"`
	Server    string `help:"Backend base URL." env:"DAILYSTEP_SERVER"`
	Debug     bool   `help:"Verbose logging to stderr." env:"DAILYSTEP_DEBUG"`

	Login    auth.LoginCmd    `cmd:"" help:"Log in to the backend."`
	Register auth.RegisterCmd `cmd:"" help:"Create a new account."`
	Logout   auth.LogoutCmd   `cmd:"" help:"Forget the saved session."`
	Whoami   auth.WhoamiCmd   `cmd:"" help:"Show the logged-in user."`

	Tui       system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show today's schedule and progress."`
	Rewards   cli.RewardsCmd   `cmd:"" help:"Show earned and locked rewards."`
	Doctor    system.DoctorCmd `cmd:"" help:"Check the local setup."`

	Activity struct {
		Add    activities.AddCmd    `cmd:"" help:"Add an activity to today's schedule."`
		List   activities.ListCmd   `cmd:"" help:"List today's activities."`
		Edit   activities.EditCmd   `cmd:"" help:"Edit an upcoming activity."`
		Delete activities.DeleteCmd `cmd:"" help:"Delete an activity."`
	} `cmd:"" help:"Manage today's schedule activities."`

	Task struct {
		Add    tasks.AddCmd    `cmd:"" help:"Add a task with a deadline."`
		List   tasks.ListCmd   `cmd:"" help:"List tasks."`
		Done   tasks.DoneCmd   `cmd:"" help:"Mark a task finished."`
		Undone tasks.UndoneCmd `cmd:"" help:"Reopen a finished task."`
		Delete tasks.DeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage deadline tasks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily schedule, tasks, and focus timer client"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.ConfigDir, CLI.Server, CLI.Debug)
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.ConfigDir}); err != nil {
		errors.Fatalf("failed to set up logging: %v", err)
	}

	appCtx := &cli.Context{
		Cfg:     cfg,
		API:     api.NewClient(cfg.ServerURL),
		Session: session.NewStore(cfg.ConfigDir),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
