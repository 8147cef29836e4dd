package command

import (
	"context"
	"fmt"
	"os"

	"github.com/blaisecz/wellness-outcomes/internal/config"
	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/blaisecz/wellness-outcomes/internal/provider"
	"github.com/blaisecz/wellness-outcomes/internal/service"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	dataSource string
)

var rootCmd = &cobra.Command{
	Use:           "wellnessctl",
	Short:         "Operator tool for the wellness outcomes engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(logging.Config{Level: logLevel, Format: "console"})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "warn", "Log Level")
	rootCmd.PersistentFlags().StringVar(&dataSource, "source", "", "Data source override (synthetic, file, postgres)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() *config.Config {
	cfg := config.Load()
	if dataSource != "" {
		cfg.DataSource = dataSource
	}
	return cfg
}

// withAnalytics opens the configured data source and hands f an analytics
// service over it.
func withAnalytics(ctx context.Context, f func(service.AnalyticsService) error) error {
	data, err := provider.Open(ctx, loadConfig())
	if err != nil {
		return err
	}
	defer data.Close()

	return f(service.NewAnalyticsService(data.Organizations, data.Users))
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
