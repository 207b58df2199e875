package cli

import (
	"employee-directory/internal/logging"
	"employee-directory/internal/repository/sqlite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the employees table if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			defer logger.Sync()

			store := sqlite.NewStore(cfg.Database.Path, cfg.Database.BusyTimeout)
			if err := store.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			logger.Info("схема готова", zap.String("db", store.Path()))
			return nil
		},
	}
}
