// Package system holds commands about the client itself rather than the
// user's data.
package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dailystep/dailystep/internal/cli"
)

type DoctorCmd struct{}

// Run checks the local setup piece by piece and reports each result instead of
// stopping at the first failure.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	ok := true

	report := func(name string, err error) {
		if err != nil {
			ok = false
			fmt.Printf("✗ %s: %v\n", name, err)
			return
		}
		fmt.Printf("✓ %s\n", name)
	}

	report("config dir writable", checkWritable(ctx.Cfg.ConfigDir))

	if _, err := ctx.Session.Token(); err != nil {
		fmt.Printf("- session: not logged in\n")
	} else if profile, err := ctx.Session.Profile(); err != nil {
		ok = false
		fmt.Printf("✗ session: token present but profile unreadable: %v\n", err)
	} else {
		fmt.Printf("✓ session: logged in as %s\n", profile.Username)
	}

	store, err := ctx.OpenCache()
	report("offline cache", err)
	if err == nil {
		if at := store.RefreshedAt(); !at.IsZero() {
			fmt.Printf("  last refreshed %s\n", at.Local().Format("2006-01-02 15:04"))
		}
		store.Close()
	}

	report(fmt.Sprintf("server %s reachable", ctx.Cfg.ServerURL), ctx.API.Ping())

	if !ok {
		return fmt.Errorf("some checks failed")
	}
	return nil
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".doctor")
	if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
		return err
	}
	return os.Remove(probe)
}
