package tasks

import (
	"fmt"

	"github.com/dailystep/dailystep/internal/cli"
)

type DeleteCmd struct {
	ID int `arg:"" help:"Task id to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.RequireIdentity(); err != nil {
		return err
	}
	if err := ctx.API.DeleteTask(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task %d\n", c.ID)
	return nil
}
