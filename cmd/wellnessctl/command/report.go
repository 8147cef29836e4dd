package command

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/report"
	"github.com/blaisecz/wellness-outcomes/internal/service"
	"github.com/spf13/cobra"
)

var (
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report <orgId>",
	Short: "Export an executive report",
	Long:  "The report command renders the executive outcomes report for an organization as html or xlsx",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		render, ok := renderers[reportFormat]
		if !ok {
			return fmt.Errorf("unsupported format %q (want html or xlsx)", reportFormat)
		}

		return withAnalytics(cmd.Context(), func(svc service.AnalyticsService) error {
			a, err := svc.GetOrganizationAnalytics(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !a.MinimumCohortMet {
				return fmt.Errorf("%s: %w", a.Organization.OrgID, domain.ErrCohortTooSmall)
			}

			body, err := render(a)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(reportOut, 0o755); err != nil {
				return err
			}
			path := filepath.Join(reportOut, report.Filename(a, reportFormat, time.Now()))
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		})
	},
}

var renderers = map[string]func(*domain.OrganizationAnalytics) ([]byte, error){
	"html": report.RenderHTML,
	"xlsx": report.RenderXLSX,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "html", "Report format (html, xlsx)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(reportCmd)
}
