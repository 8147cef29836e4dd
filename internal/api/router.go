package api

import (
	"net/http"
	"time"

	_ "github.com/blaisecz/wellness-outcomes/docs"
	"github.com/blaisecz/wellness-outcomes/internal/api/handler"
	"github.com/blaisecz/wellness-outcomes/internal/api/middleware"
	"github.com/blaisecz/wellness-outcomes/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// RouterConfig holds the HTTP surface settings.
type RouterConfig struct {
	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

type Router struct {
	cfg                 RouterConfig
	organizationHandler *handler.OrganizationHandler
	analyticsHandler    *handler.AnalyticsHandler
	reportHandler       *handler.ReportHandler
	insightsHandler     *handler.InsightsHandler
}

func NewRouter(
	cfg RouterConfig,
	organizationHandler *handler.OrganizationHandler,
	analyticsHandler *handler.AnalyticsHandler,
	reportHandler *handler.ReportHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		cfg:                 cfg,
		organizationHandler: organizationHandler,
		analyticsHandler:    analyticsHandler,
		reportHandler:       reportHandler,
		insightsHandler:     insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(rt.cfg.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.NotFound("Route not found").Write(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		problem.New(http.StatusMethodNotAllowed, "method-not-allowed", "Method Not Allowed", "").Write(w)
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Tracing)
		r.Get("/health", handler.Health)

		r.Group(func(r chi.Router) {
			if rt.cfg.RateLimitRequests > 0 {
				r.Use(middleware.RateLimit(rt.cfg.RateLimitRequests, rt.cfg.RateLimitWindow))
			}

			r.Route("/organizations", func(r chi.Router) {
				r.Get("/", rt.organizationHandler.List)
				r.Get("/{orgId}", rt.organizationHandler.GetByID)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/", rt.analyticsHandler.GetAll)
				r.Post("/preview", rt.analyticsHandler.Preview)
				r.Get("/{orgId}", rt.analyticsHandler.GetByOrg)
				r.Get("/{orgId}/highlights", rt.insightsHandler.GetHighlights)
				r.Get("/{orgId}/insights", rt.insightsHandler.GetInsights)
				r.Post("/{orgId}/insights/feedback", rt.insightsHandler.PostFeedback)
			})

			r.Route("/reports/{orgId}", func(r chi.Router) {
				r.Get("/html", rt.reportHandler.HTML)
				r.Get("/xlsx", rt.reportHandler.XLSX)
			})

			r.Get("/debug/stats", rt.analyticsHandler.Stats)
		})
	})

	return r
}
