// Wellness Outcomes API
//
// Outcome and ROI analytics for employer mental-health programs.
//
//	@title			Wellness Outcomes API
//	@version		1.0
//	@description	Clinical, productivity and ROI analytics per organization, with privacy-gated exports and AI insights.
//
//	@host		localhost:3001
//	@BasePath	/api
//
//	@tag.name			organizations
//	@tag.description	Organization directory
//
//	@tag.name			analytics
//	@tag.description	Cohort outcome analytics
//
//	@tag.name			reports
//	@tag.description	Executive report exports
//
//	@tag.name			insights
//	@tag.description	Highlight cards and AI narrative
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/api"
	"github.com/blaisecz/wellness-outcomes/internal/api/handler"
	"github.com/blaisecz/wellness-outcomes/internal/config"
	"github.com/blaisecz/wellness-outcomes/internal/langfuse"
	"github.com/blaisecz/wellness-outcomes/internal/llm"
	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/blaisecz/wellness-outcomes/internal/provider"
	"github.com/blaisecz/wellness-outcomes/internal/scheduler"
	"github.com/blaisecz/wellness-outcomes/internal/service"
	"github.com/blaisecz/wellness-outcomes/internal/telemetry"
)

const serviceName = "wellness-outcomes-api"

func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	data, err := provider.Open(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("source", cfg.DataSource).Msg("Failed to open data source")
	}
	defer data.Close()

	langfuseCfg := langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}
	langfuseClient := langfuse.NewClient(langfuseCfg)

	analyticsService := service.NewAnalyticsService(data.Organizations, data.Users)

	// A nil model keeps the insights endpoint answering 503.
	var model llm.InsightsLLM
	if cfg.OpenAIAPIKey != "" {
		prompt := langfuse.LoadPrompt(ctx, langfuse.PromptSource{
			Config:    langfuseCfg,
			Name:      cfg.LangfusePromptName,
			Label:     cfg.LangfusePromptLabel,
			CachePath: cfg.PromptCachePath,
		}, llm.DefaultSystemPrompt)
		model = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel, prompt)
	} else {
		logging.Warn().Msg("OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(analyticsService, model, langfuseClient)

	refresh := scheduler.New(cfg.RefreshCron, data.Cache, analyticsService)
	if err := refresh.RunNow(ctx); err != nil {
		logging.Warn().Err(err).Msg("Initial analytics warm-up failed")
	}
	if err := refresh.Start(); err != nil {
		logging.Fatal().Err(err).Str("spec", cfg.RefreshCron).Msg("Invalid REFRESH_CRON")
	}

	router := api.NewRouter(
		api.RouterConfig{
			AllowedOrigins:    cfg.CORSAllowedOrigins,
			RateLimitRequests: cfg.RateLimitRequests,
			RateLimitWindow:   cfg.RateLimitWindow,
		},
		handler.NewOrganizationHandler(analyticsService),
		handler.NewAnalyticsHandler(analyticsService),
		handler.NewReportHandler(analyticsService),
		handler.NewInsightsHandler(insightsService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Str("source", cfg.DataSource).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	refresh.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Server shutdown failed")
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Tracer shutdown failed")
	}
}
