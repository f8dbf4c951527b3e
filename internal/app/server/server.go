package server

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

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/org"
	"hrms/internal/domain/payroll"
	"hrms/internal/platform/config"
	"hrms/internal/platform/crypto"
	"hrms/internal/platform/db"
	"hrms/internal/platform/jobs"
	"hrms/internal/platform/metrics"
	"hrms/internal/transport/http/api"
	attendancehandler "hrms/internal/transport/http/handlers/attendance"
	authhandler "hrms/internal/transport/http/handlers/auth"
	employeehandler "hrms/internal/transport/http/handlers/employees"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	metahandler "hrms/internal/transport/http/handlers/meta"
	orghandler "hrms/internal/transport/http/handlers/org"
	payrollhandler "hrms/internal/transport/http/handlers/payroll"
	"hrms/internal/transport/http/middleware"
)

// Routes is implemented by every handler package.
type Routes interface {
	RegisterRoutes(r chi.Router)
}

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Metrics *metrics.Collector
	Jobs    *jobs.Service
	Router  http.Handler
}

// New connects to the database, prepares the schema and wires every service
// and handler. Call Close when done.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	cipher, err := crypto.New(cfg.DataEncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("data encryption key: %w", err)
	}
	if !cipher.Enabled() {
		slog.Warn("DATA_ENCRYPTION_KEY not set; account numbers are stored in plaintext")
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, os.DirFS(cfg.MigrationsDir)); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
	}

	users := auth.NewStore(pool)
	if cfg.RunSeed {
		if err := db.Seed(ctx, users, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed failed: %w", err)
		}
	}

	collector := metrics.New()
	orgService := org.NewService(org.NewStore(pool))
	jobService := jobs.New(orgService, collector, cfg.HeadcountInterval, cfg.HeadcountDebounce)

	employeeService := employee.NewService(employee.NewStore(pool))
	employeeService.OnChange = func() { jobService.RequestHeadcount("employee_changed") }

	payrollService := payroll.NewService(payroll.NewStore(pool), employeeService, cipher)
	payrollService.SlipDir = cfg.PayslipDir

	handlers := []Routes{
		authhandler.NewHandler(
			auth.NewService(users, cfg.JWTSecret, cfg.TokenTTL),
			middleware.RateLimit(cfg.LoginRateLimit, time.Minute),
		),
		employeehandler.NewHandler(employeeService, orgService),
		orghandler.NewHandler(orgService),
		metahandler.NewHandler(),
		attendancehandler.NewHandler(
			attendance.NewService(attendance.NewStore(pool), employeeService, cfg.StandardWorkHours),
			orgService,
		),
		leavehandler.NewHandler(leave.NewService(leave.NewStore(pool), employeeService), employeeService, orgService),
		payrollhandler.NewHandler(payrollService, orgService),
	}

	return &App{
		Config:  cfg,
		DB:      pool,
		Metrics: collector,
		Jobs:    jobService,
		Router:  NewRouter(cfg, collector, pool.Ping, handlers...),
	}, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

// NewRouter mounts handlers under /api/v1 behind the common middleware chain.
// ready backs /readyz.
func NewRouter(cfg config.Config, collector *metrics.Collector, ready func(context.Context) error, handlers ...Routes) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled && collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		for _, h := range handlers {
			h.RegisterRoutes(r)
		}
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, "not_found", "route not found", middleware.GetRequestID(r.Context()))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", middleware.GetRequestID(r.Context()))
	})
	return router
}

// Run loads configuration, serves until SIGINT or SIGTERM and shuts down
// gracefully.
func Run() error {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	app.Jobs.Start(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HRMS server listening", "addr", cfg.Addr, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
