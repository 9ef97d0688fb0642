package system

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/mealplan/internal/cli"
	"github.com/julianstephens/mealplan/internal/server"
)

type ServeCmd struct {
	Init bool `help:"Initialize the database first if it does not exist."`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	if c.Init {
		if _, err := os.Stat(ctx.Store.GetConfigPath()); os.IsNotExist(err) {
			if err := (&InitCmd{}).Run(ctx); err != nil {
				return err
			}
		}
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.Printf("Serving %s on http://%s\n", ctx.Store.GetConfigPath(), ctx.Config.Addr)
	return server.New(ctx.Store).ListenAndServe(sigCtx, ctx.Config.Addr)
}
