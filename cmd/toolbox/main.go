package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/toolbox/internal/interfaces/cli/migrate"
	"github.com/orris-inc/toolbox/internal/interfaces/cli/probe"
	"github.com/orris-inc/toolbox/internal/interfaces/cli/server"
	"github.com/orris-inc/toolbox/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toolbox",
		Short: "Toolbox - links, QR codes, clients and uptime monitoring",
		Long:  `Toolbox serves a multi-tenant dashboard with plan quotas, a short link redirector and an uptime prober.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
		migrate.NewCommand(),
		probe.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
