package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm/schema"

	"github.com/orris-inc/toolbox/internal/infrastructure/database"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
	"github.com/orris-inc/toolbox/internal/interfaces/cli"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Create or update the toolbox tables and report which of them exist.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Create or update all tables",
			RunE:  runUp,
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which tables exist",
			RunE:  runStatus,
		},
	)

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, _, err := cli.Bootstrap(env)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := database.Get().AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations applied", "tables", len(models.All()))
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := cli.Bootstrap(env)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	out := cmd.OutOrStdout()
	for _, model := range models.All() {
		table := model.(schema.Tabler).TableName()
		state := "missing"
		if db.Migrator().HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "%-20s %s\n", table, state)
	}
	return nil
}
