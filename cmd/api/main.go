// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/carterperez-dev/studio-ledger/internal/auth"
	"github.com/carterperez-dev/studio-ledger/internal/client"
	"github.com/carterperez-dev/studio-ledger/internal/config"
	"github.com/carterperez-dev/studio-ledger/internal/core"
	"github.com/carterperez-dev/studio-ledger/internal/dashboard"
	"github.com/carterperez-dev/studio-ledger/internal/editing"
	"github.com/carterperez-dev/studio-ledger/internal/health"
	"github.com/carterperez-dev/studio-ledger/internal/middleware"
	"github.com/carterperez-dev/studio-ledger/internal/order"
	"github.com/carterperez-dev/studio-ledger/internal/payment"
	"github.com/carterperez-dev/studio-ledger/internal/product"
	"github.com/carterperez-dev/studio-ledger/internal/salary"
	"github.com/carterperez-dev/studio-ledger/internal/server"
	"github.com/carterperez-dev/studio-ledger/internal/transport"
	"github.com/carterperez-dev/studio-ledger/internal/user"
	"github.com/carterperez-dev/studio-ledger/migrations"
)

const (
	drainDelay            = 5 * time.Second
	authAttemptsPerMinute = 10
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.MigrateOnStart {
		version, migrateErr := core.Migrate(cfg.Database.URL, migrations.FS)
		if migrateErr != nil {
			return migrateErr
		}
		logger.Info("schema migrated", "version", version)
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	conn := db.Conn()

	userSvc := user.NewService(user.NewRepository(conn))
	authSvc := auth.NewService(
		jwtManager,
		userSvc,
		auth.NewShopRepository(conn),
		auth.NewRedisBlacklist(redis.Client),
	)

	salarySvc := salary.NewService(db, conn, salary.Stores{
		Salaries:  salary.NewRepository,
		Employees: user.NewLedger,
	})
	orderSvc := order.NewService(db, conn, order.Stores{
		Orders:    order.NewRepository,
		Salaries:  salary.NewRepository,
		Employees: user.NewLedger,
		Clients:   client.NewLedger,
	})
	editingSvc := editing.NewService(db, conn, editing.Stores{
		Projects:  editing.NewRepository,
		Salaries:  salary.NewRepository,
		Employees: user.NewLedger,
		Clients:   client.NewLedger,
	})
	paymentSvc := payment.NewService(db, conn, payment.Stores{
		Payments: payment.NewRepository,
		Receipts: order.NewReceipts,
		Clients:  client.NewLedger,
	})
	transportSvc := transport.NewService(transport.NewRepository(conn), user.NewLedger(conn))
	dashboardSvc := dashboard.NewService(dashboard.NewRepository(conn), cfg.App.Location())

	healthHandler := health.NewHandler(db, redis)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(authSvc)
	credentialLimiter := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Limit:    middleware.PerMinute(authAttemptsPerMinute, authAttemptsPerMinute),
		KeyFunc:  middleware.KeyByUserAndEndpoint,
		FailOpen: false,
	}).Handler
	shopWriteLimiter := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Limit:      middleware.PerMinute(cfg.RateLimit.ShopWrites, max(cfg.RateLimit.ShopWrites/4, 1)),
		KeyFunc:    middleware.KeyByShop,
		BypassFunc: middleware.ReadOnly,
		FailOpen:   true,
	}).Handler
	ownerOnly := func(next http.Handler) http.Handler {
		return authenticator(middleware.RequireOwner(next))
	}

	router.Route("/api", func(r chi.Router) {
		auth.NewHandler(authSvc).RegisterRoutes(r, credentialLimiter, authenticator)

		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(authSvc))
			r.Use(shopWriteLimiter)

			user.NewHandler(userSvc).RegisterRoutes(r)
			client.NewHandler(client.NewService(client.NewRepository(conn))).RegisterRoutes(r)
			product.NewHandler(product.NewService(product.NewRepository(conn))).RegisterRoutes(r)
			order.NewHandler(orderSvc).RegisterRoutes(r, ownerOnly)
			editing.NewHandler(editingSvc).RegisterRoutes(r, ownerOnly)
			salary.NewHandler(salarySvc).RegisterRoutes(r, ownerOnly)
			payment.NewHandler(paymentSvc).RegisterRoutes(r)
			transport.NewHandler(transportSvc).RegisterRoutes(r)
			dashboard.NewHandler(dashboardSvc).RegisterRoutes(r)
		})
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
