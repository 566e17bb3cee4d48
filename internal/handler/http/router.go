package http

import (
	"log/slog"
	"os"

	"github.com/acceso-labs/acceso-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
)

func NewRouter(
	env string,
	corsOrigins []string,
	registry *prometheus.Registry,
	collector *metrics.Collector,
	employeeHandler EmployeeHandler,
	eventHandler EventHandler,
	reportHandler ReportHandler,
	payrollHandler PayrollHandler,
	settingsHandler SettingsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "acceso-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(collector.Middleware)

	r.Method("GET", "/metrics", metrics.Handler(registry))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/search", employeeHandler.Search)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Get("/events/last", eventHandler.Last)
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.ByDate)
			r.Get("/range", eventHandler.ByRange)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily", reportHandler.Daily)
			r.Get("/weekly", reportHandler.Weekly)
			r.Get("/monthly", reportHandler.Monthly)
			r.Get("/pending-exit", reportHandler.PendingExit)
			r.Get("/stats", reportHandler.Stats)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/biweekly", payrollHandler.Biweekly)
		})

		r.Get("/config", settingsHandler.Config)
	})
	return r
}
