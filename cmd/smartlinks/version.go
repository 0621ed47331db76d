package main

import (
	"github.com/fsdevblog/smartlinks/internal/bmeta"
	"github.com/spf13/cobra"
)

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return bmeta.Fprint(cmd.OutOrStdout(), bmeta.Meta{ //nolint:wrapcheck
				Version: buildVersion,
				Date:    buildDate,
				Commit:  buildCommit,
			})
		},
	}
}
