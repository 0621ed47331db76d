package main

import (
	"github.com/fsdevblog/smartlinks/internal/app"
	"github.com/spf13/cobra"
)

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  c.runServe,
	}
}

func (c *cli) runServe(cmd *cobra.Command, _ []string) error {
	conf, err := c.loadConfig()
	if err != nil {
		return err
	}

	a, err := app.New(cmd.Context(), *conf, c.out)
	if err != nil {
		return err //nolint:wrapcheck
	}
	a.Logger.WithField("config", conf.Masked()).Info("Config loaded")

	return a.Run(cmd.Context()) //nolint:wrapcheck
}
