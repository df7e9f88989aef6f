package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orris-inc/toolbox/internal/infrastructure/database"
	httpRouter "github.com/orris-inc/toolbox/internal/interfaces/http"
	"github.com/orris-inc/toolbox/internal/interfaces/cli"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

var (
	env  string
	once bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the uptime scheduler",
		Long:  `Probe every active monitored site on the configured interval, or once with --once.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&once, "once", false, "Run a single cycle, print its report and exit")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, env, err := cli.Bootstrap(env)
	if err != nil {
		return err
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting uptime worker", "environment", env, "interval", cfg.Uptime.Interval, "once", once)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	container, err := httpRouter.NewContainer(database.Get(), cfg, log)
	if err != nil {
		return err
	}
	defer container.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if once {
		report, err := container.RunUptimeCycle(ctx)
		if err != nil {
			return fmt.Errorf("uptime cycle failed: %w", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if err := container.StartScheduler(); err != nil {
		return err
	}

	<-ctx.Done()
	log.Infow("shutting down uptime worker")
	return nil
}
