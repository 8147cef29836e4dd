package command

import (
	"fmt"

	"github.com/blaisecz/wellness-outcomes/internal/seed"
	"github.com/spf13/cobra"
)

var (
	generateSeed int64
	generateOut  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic dataset file",
	Long:  "The generate command writes a deterministic synthetic cohort to a JSON file usable with DATA_SOURCE=file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset := seed.Generate(generateSeed)
		if err := seed.WriteDataset(generateOut, dataset); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d organizations and %d users to %s\n",
			len(dataset.Organizations), len(dataset.Users), generateOut)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64Var(&generateSeed, "seed", seed.DefaultSeed, "Generator seed")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "data/dataset.json", "Output file")
	rootCmd.AddCommand(generateCmd)
}
