package command

import (
	"errors"

	"github.com/blaisecz/wellness-outcomes/internal/service"
	"github.com/spf13/cobra"
)

var analyticsAll bool

var analyticsCmd = &cobra.Command{
	Use:   "analytics [orgId]",
	Short: "Compute organization analytics",
	Long:  "The analytics command computes outcome analytics for one organization, or every organization with --all, and prints them as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !analyticsAll && len(args) == 0 {
			return errors.New("an organization id or --all is required")
		}
		return withAnalytics(cmd.Context(), func(svc service.AnalyticsService) error {
			if analyticsAll {
				all, err := svc.GetAllOrganizationsAnalytics(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, all)
			}
			a, err := svc.GetOrganizationAnalytics(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, a)
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAnalytics(cmd.Context(), func(svc service.AnalyticsService) error {
			stats, err := svc.DatasetStats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		})
	},
}

func init() {
	analyticsCmd.Flags().BoolVar(&analyticsAll, "all", false, "Compute every organization")
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(statsCmd)
}
