package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/transco/backoffice-go/internal/domain/access"
	"github.com/transco/backoffice-go/internal/handler/http/middleware"
	"github.com/transco/backoffice-go/internal/pkg/jwt"
)

// RouterConfig carries the deployment details the router logs and enforces.
type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	payrollHandler PayrollHandler,
	attendanceHandler AttendanceHandler,
	loanHandler LoanHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				r.With(middleware.RequirePermission(access.PermissionPayrollGenerate)).
					Post("/periods/generate", payrollHandler.GeneratePeriod)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(access.PermissionPayrollView))
					r.Get("/records", payrollHandler.ListRecords)
					r.Get("/lines", payrollHandler.PreviewLines)
				})
			})

			r.With(middleware.RequirePermission(access.PermissionAttendanceMark)).
				Post("/attendance", attendanceHandler.Mark)

			r.With(middleware.RequirePermission(access.PermissionLoanRecordPayment)).
				Post("/loans/{id}/payments", loanHandler.RecordPayment)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return r
}
