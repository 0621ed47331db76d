package main

import (
	"fmt"

	"github.com/fsdevblog/smartlinks/internal/app"
	"github.com/fsdevblog/smartlinks/internal/config"
	"github.com/spf13/cobra"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long:  `Creates or updates the smartlinks table in the configured SQL storage.`,
		Args:  cobra.NoArgs,
		RunE:  c.runMigrate,
	}
}

func (c *cli) runMigrate(cmd *cobra.Command, _ []string) error {
	conf, err := c.loadConfig()
	if err != nil {
		return err
	}
	if conf.DBType == config.DBTypeInMemory {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "in-memory storage has no schema, nothing to migrate")
		return err //nolint:wrapcheck
	}

	// схема накатывается при подключении
	conn, err := app.Connect(cmd.Context(), *conf)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if closeErr := app.Close(conn); closeErr != nil {
		return closeErr //nolint:wrapcheck
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "migrations applied to %s storage\n", conf.DBType)
	return err //nolint:wrapcheck
}
