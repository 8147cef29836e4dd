package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/langfuse"
	"github.com/spf13/cobra"
)

var langfuseCheckCmd = &cobra.Command{
	Use:   "langfuse-check",
	Short: "Send a test trace to Langfuse",
	Long:  "The langfuse-check command verifies the LANGFUSE_* settings by creating a test trace",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		lfCfg := langfuse.Config{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			Environment: cfg.LangfuseEnv,
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Base URL:    %s\n", lfCfg.BaseURL)
		fmt.Fprintf(out, "Public Key:  %s\n", maskKey(lfCfg.PublicKey))
		fmt.Fprintf(out, "Secret Key:  %s\n", maskKey(lfCfg.SecretKey))
		fmt.Fprintf(out, "Environment: %s\n", lfCfg.Environment)

		client := langfuse.NewClient(lfCfg)
		if !client.IsEnabled() {
			return errors.New("langfuse client is disabled, check LANGFUSE_BASE_URL and keys")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
			Name:  "wellnessctl-check",
			Input: map[string]any{"time": time.Now().UTC().Format(time.RFC3339)},
			Tags:  []string{"connectivity"},
		})
		if err != nil {
			return fmt.Errorf("create trace: %w", err)
		}
		fmt.Fprintf(out, "Trace created: %s/trace/%s\n", lfCfg.BaseURL, traceID)
		return nil
	},
}

func maskKey(key string) string {
	switch {
	case key == "":
		return "(empty)"
	case len(key) < 8:
		return "***"
	default:
		return key[:8] + "..."
	}
}

func init() {
	rootCmd.AddCommand(langfuseCheckCmd)
}
