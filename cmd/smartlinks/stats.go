package main

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/smartlinks/internal/app"
	"github.com/fsdevblog/smartlinks/internal/services"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <id>",
		Short: "Print a smartlink with its counters",
		Long:  `Prints the smartlink as JSON. Unlike the HTTP API, reading stats does not count as a view.`,
		Args:  cobra.ExactArgs(1),
		RunE:  c.runStats,
	}
}

func (c *cli) runStats(cmd *cobra.Command, args []string) error {
	id := args[0]

	conf, err := c.loadConfig()
	if err != nil {
		return err
	}

	a, err := app.New(cmd.Context(), *conf, c.errOut)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer func() { _ = a.Close() }()

	link, err := a.Services.SmartlinkService.Stats(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			return fmt.Errorf("smartlink %s not found", id)
		}
		return fmt.Errorf("get stats for %s: %w", id, err)
	}

	data, err := json.MarshalIndent(link, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err //nolint:wrapcheck
}
