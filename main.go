package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/blogem/consulta-notas/config"
	"github.com/blogem/consulta-notas/controllers"
	"github.com/blogem/consulta-notas/database"
	"github.com/blogem/consulta-notas/logging"
	"github.com/blogem/consulta-notas/middleware"
	"github.com/blogem/consulta-notas/repositories"
	"github.com/blogem/consulta-notas/services"
)

func main() {
	// Load .env file if it exists; the environment works just as well
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Debug("no .env file loaded", zap.Error(envErr))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// run wires the application and serves until SIGINT/SIGTERM
func run(cfg *config.Config, logger *zap.Logger) error {
	var db *sql.DB
	if cfg.AuditBackend == config.AuditBackendSQLite {
		var err error
		db, err = database.InitializeDatabase(cfg.AuditDBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize audit database: %w", err)
		}
		defer db.Close()
	}

	repos := repositories.NewRepositories(cfg, db, logger)
	srvs := services.NewServices(repos, logger)
	ctrl := controllers.NewControllers(srvs, logger)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           setupRouter(cfg, ctrl, logger),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("table", cfg.TablePath),
			zap.String("audit_backend", cfg.AuditBackend),
			zap.String("audit_log", auditLocation(cfg)),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.OpenCORS())
	r.Use(middleware.ClientInfo(cfg.TrustProxyHeaders))

	r.Get("/", ctrl.Home.Index)
	r.Get("/health", ctrl.Home.Health)

	r.Get("/api/nota", ctrl.Grades.GetNota)

	// Open to anyone who can reach the service
	r.Get("/admin/consultas", ctrl.Audit.Index)

	return r
}

func auditLocation(cfg *config.Config) string {
	if cfg.AuditBackend == config.AuditBackendSQLite {
		return cfg.AuditDBPath
	}
	return cfg.LogPath
}
