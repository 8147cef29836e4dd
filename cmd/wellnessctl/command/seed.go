package command

import (
	"fmt"

	"github.com/blaisecz/wellness-outcomes/internal/config"
	"github.com/blaisecz/wellness-outcomes/internal/seed"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a cohort into Postgres",
	Long:  "The seed command migrates the schema at DATABASE_URL and inserts the synthetic cohort, or the dataset given with --file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		dataset := seed.Generate(cfg.DataSeed)
		if seedFile != "" {
			loaded, err := seed.LoadDataset(seedFile)
			if err != nil {
				return err
			}
			dataset = loaded
		}

		db, err := config.NewDatabase(cfg)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		if err := seed.Run(cmd.Context(), db, dataset); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d organizations and %d users\n",
			len(dataset.Organizations), len(dataset.Users))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "Dataset file to load instead of the synthetic cohort")
	rootCmd.AddCommand(seedCmd)
}
