package main

import (
	"io"

	"github.com/fsdevblog/smartlinks/internal/config"
	"github.com/spf13/cobra"
)

// cli общее состояние команд: значения флагов и потоки вывода.
type cli struct {
	flags  config.Config
	out    io.Writer
	errOut io.Writer
}

// newRootCmd собирает дерево команд. Без подкоманды запускается сервер.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "smartlinks",
		Short: "Smartlinks service",
		Long: `Smartlinks stores links with landing page settings and a list of platforms,
counts views and clicks, and serves them over an HTTP JSON API.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         c.runServe,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	config.BindFlags(root.PersistentFlags(), &c.flags)

	root.AddCommand(
		c.serveCmd(),
		c.migrateCmd(),
		c.statsCmd(),
		c.versionCmd(),
	)
	return root
}

func (c *cli) loadConfig() (*config.Config, error) {
	return config.LoadConfig(&c.flags) //nolint:wrapcheck
}
