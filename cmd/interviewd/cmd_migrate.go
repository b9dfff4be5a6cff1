package main

import (
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/interview-coach/internal/config"
	"github.com/saulo-duarte/interview-coach/internal/progress"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the progress tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Init()
		settings, err := config.Load()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := config.Connect(ctx, settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
			return err
		}
		if err := config.DB.WithContext(ctx).AutoMigrate(progress.Models()...); err != nil {
			return err
		}

		config.Logger.Info("Migrations applied")
		return nil
	},
}
