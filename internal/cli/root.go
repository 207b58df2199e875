package cli

import (
	"fmt"

	"employee-directory/config"

	"github.com/spf13/cobra"
)

// RootOptions — глобальные флаги, перекрывают конфиг и окружение.
type RootOptions struct {
	ConfigPath string
	DBPath     string
	Addr       string
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "employee-directory",
		Short:         "Employee directory HTTP service",
		Long:          "CRUD service for employee records (name, email, role) stored in a single SQLite file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to SQLite database file")
	cmd.PersistentFlags().StringVar(&opts.Addr, "addr", "", "HTTP listen address")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// loadConfig: файл -> .env/окружение -> флаги.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.DBPath != "" {
		cfg.Database.Path = opts.DBPath
	}
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
