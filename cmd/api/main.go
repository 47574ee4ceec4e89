package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/transco/backoffice-go/internal/config"
	appHTTP "github.com/transco/backoffice-go/internal/handler/http"
	"github.com/transco/backoffice-go/internal/pkg/cron"
	"github.com/transco/backoffice-go/internal/pkg/database"
	"github.com/transco/backoffice-go/internal/pkg/jwt"
	"github.com/transco/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/transco/backoffice-go/internal/service/attendance"
	loanService "github.com/transco/backoffice-go/internal/service/loan"
	payrollService "github.com/transco/backoffice-go/internal/service/payroll"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolConfig{
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Payroll.AutoMigrate {
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		slog.Info("Database schema ensured")
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, cfg.Payroll.Workers)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	loanSvc := loanService.NewLoanService(loanRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	loanHandler := appHTTP.NewLoanHandler(loanSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			Version:        cfg.App.Version,
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		payrollHandler,
		attendanceHandler,
		loanHandler,
	)

	scheduler := cron.NewScheduler(ctx)
	if cfg.Payroll.AutoRegenerate {
		cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler, cfg.Payroll.RegenerateInterval)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
