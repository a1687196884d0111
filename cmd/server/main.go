package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/stonetrade/backend/docs"
	identityapp "github.com/stonetrade/backend/internal/application/identity"
	inventoryapp "github.com/stonetrade/backend/internal/application/inventory"
	partnerapp "github.com/stonetrade/backend/internal/application/partner"
	printingapp "github.com/stonetrade/backend/internal/application/printing"
	reportapp "github.com/stonetrade/backend/internal/application/report"
	"github.com/stonetrade/backend/internal/domain/identity"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/infrastructure/auth"
	"github.com/stonetrade/backend/internal/infrastructure/cache"
	"github.com/stonetrade/backend/internal/infrastructure/config"
	"github.com/stonetrade/backend/internal/infrastructure/logger"
	"github.com/stonetrade/backend/internal/infrastructure/persistence"
	"github.com/stonetrade/backend/internal/infrastructure/printing"
	"github.com/stonetrade/backend/internal/infrastructure/scheduler"
	"github.com/stonetrade/backend/internal/infrastructure/storage"
	"github.com/stonetrade/backend/internal/infrastructure/telemetry"
	"github.com/stonetrade/backend/internal/interfaces/http/handler"
	"github.com/stonetrade/backend/internal/interfaces/http/middleware"
	"github.com/stonetrade/backend/internal/interfaces/http/router"
)

//	@title			Stone Trade API
//	@version		1.0
//	@description	Cost and area roll-up backend for a stone trading yard: todis, galas, blocks, stones, vendors and mines.

//	@contact.name	Stone Trade Support
//	@contact.email	support@stonetrade.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	ctx := context.Background()

	// The OTLP log bridge must exist before the logger so it can be teed in
	logProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry)
	if err != nil {
		panic("Failed to initialize log exporter: " + err.Error())
	}
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}, logProvider.Core(logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()
	defer func() {
		if err := logProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down log exporter", zap.Error(err))
		}
	}()

	log.Info("Starting Stone Trade backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Telemetry
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()
	profiler, err := telemetry.NewProfiler(cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}
	costingMetrics, err := telemetry.NewCostingMetrics(meterProvider.Meter("stonetrade/costing"))
	if err != nil {
		log.Fatal("Failed to register costing metrics", zap.Error(err))
	}

	calc, err := inventoryapp.NewCalculator(cfg.Calculation)
	if err != nil {
		log.Fatal("Invalid calculation settings", zap.Error(err))
	}

	// Database; derived fields are recomputed by the plugin on every write
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog,
		persistence.NewRecalculationPlugin(calc, costingMetrics.ObserveRecalculation))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Redis backs token revocation and idempotency keys when enabled
	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		redisClient = client
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}
	var blacklist auth.TokenBlacklist
	if redisClient != nil {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
	} else {
		log.Warn("Redis disabled, revoked tokens are tracked in memory only")
		blacklist = auth.NewInMemoryTokenBlacklist()
	}
	idempotencyStore := cache.NewIdempotencyStore(redisClient, log)
	defer func() {
		_ = idempotencyStore.Close()
	}()

	// Statement rendering and archiving
	var pdfRenderer printing.PDFRenderer = printing.DisabledRenderer{}
	if cfg.Printing.Enabled {
		pdfRenderer = printing.NewChromedpRenderer(&cfg.Printing, log)
	}
	defer func() {
		if err := pdfRenderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()
	templateEngine, err := printing.NewTemplateEngine(&cfg.Printing)
	if err != nil {
		log.Fatal("Failed to load statement templates", zap.Error(err))
	}
	var archive printingapp.ObjectStorage
	if cfg.Storage.Enabled {
		s3, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			log.Warn("Archive bucket is not ready", zap.String("bucket", s3.Bucket()), zap.Error(err))
		}
		archive = s3
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	mineRepo := persistence.NewGormMineRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	labourRepo := persistence.NewGormLabourRepository(db.DB)
	recordRepo := persistence.NewGormRecordRepository(db.DB)
	blockRepo := persistence.NewGormBlockRepository(db.DB)
	stoneRepo := persistence.NewGormStoneRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, identityapp.AuthServiceConfigFrom(cfg.Auth), log)
	userService := identityapp.NewUserService(userRepo, blacklist, jwtService, log)
	mineService := partnerapp.NewMineService(mineRepo, log)
	vendorService := partnerapp.NewVendorService(vendorRepo, mineRepo, persistence.NewGormBalanceReader(db.DB), log)
	labourService := partnerapp.NewLabourService(labourRepo, log)

	refs := inventoryapp.NewReferences(vendorRepo, mineRepo)
	intakeService := inventoryapp.NewIntakeService(recordRepo, refs, calc, costingMetrics, log)
	blockService := inventoryapp.NewBlockService(blockRepo, refs, calc, costingMetrics, log)
	stoneService := inventoryapp.NewStoneService(stoneRepo, calc, log)
	recalcService := inventoryapp.NewRecalculationService(recordRepo, blockRepo, stoneRepo, calc, costingMetrics, cfg.Scheduler.BatchSize, log)
	statementService := printingapp.NewStatementService(recordRepo, blockRepo, vendorRepo, mineRepo, templateEngine, pdfRenderer, archive, log)
	exportService := reportapp.NewExportService(reportapp.Sources{
		Intakes: intakeService,
		Blocks:  blockService,
		Stones:  stoneService,
		Vendors: vendorService,
		Mines:   mineService,
		Labour:  labourService,
	}, log)

	if created, err := userService.BootstrapAdmin(ctx, cfg.Auth.BootstrapUsername, cfg.Auth.BootstrapPassword); err != nil {
		log.Fatal("Failed to bootstrap admin user", zap.Error(err))
	} else if created {
		log.Warn("Bootstrap admin created; change its password", zap.String("username", cfg.Auth.BootstrapUsername))
	}

	// Periodic recalculation sweep
	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(cfg.Scheduler, log)
		if err := sched.Register("recalculate", cfg.Scheduler.RecalcCron, func(ctx context.Context) error {
			_, err := recalcService.RecalculateAll(ctx)
			return err
		}); err != nil {
			log.Fatal("Failed to schedule recalculation", zap.Error(err))
		}
		if err := sched.Start(ctx); err != nil {
			log.Fatal("Failed to start scheduler", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Scheduler.JobTimeout)
			defer cancel()
			if err := sched.Stop(stopCtx); err != nil {
				log.Error("Error stopping scheduler", zap.Error(err))
			}
		}()
	}

	// HTTP handlers
	checks := map[string]handler.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	intakeHandlers := make([]*handler.IntakeHandler, 0, len(intake.Kinds()))
	for _, kind := range intake.Kinds() {
		intakeHandlers = append(intakeHandlers, handler.NewIntakeHandler(intakeService, statementService, kind))
	}
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, checks)
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		Mine:        handler.NewMineHandler(mineService),
		Vendor:      handler.NewVendorHandler(vendorService),
		Labour:      handler.NewLabourHandler(labourService),
		Intake:      intakeHandlers,
		Block:       handler.NewBlockHandler(blockService, statementService),
		Stone:       handler.NewStoneHandler(stoneService),
		Calculation: handler.NewCalculationHandler(intakeService),
		Export:      handler.NewExportHandler(exportService),
		Admin:       handler.NewAdminHandler(recalcService),
		System:      systemHandler,
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Engine-wide middleware, outermost first
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled {
		engine.Use(middleware.HTTPMetrics(meterProvider.Meter("stonetrade/http"), log))
	}
	profilingCfg := middleware.DefaultProfilingConfig()
	profilingCfg.Enabled = profiler.IsEnabled()
	engine.Use(middleware.Profiling(profilingCfg))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-Page-Count", "X-Row-Count", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer rateLimiter.Stop()
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// reachable without a token, so keys there cannot be scoped to a user
	publicPaths := []string{
		"/api/v1/health",
		"/api/v1/auth/login",
		"/api/v1/auth/refresh",
	}
	jwtMiddleware := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		Validator: authService,
		SkipPaths: publicPaths,
		Logger:    log,
	})

	engine.GET("/health", systemHandler.Health)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, jwtMiddleware),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithMiddleware(
			jwtMiddleware,
			middleware.TracingAttributeInjector(),
			middleware.SpanErrorMarker(),
			middleware.Idempotency(middleware.IdempotencyConfig{
				Store:     idempotencyStore,
				TTL:       cfg.HTTP.IdempotencyTTL,
				SkipPaths: publicPaths,
				Logger:    log,
			}),
		),
	)
	router.RegisterAPI(r, handlers, middleware.RequireRole(string(identity.RoleAdmin))).Setup()

	routes := r.Routes()
	for _, rt := range routes {
		log.Debug("Route", zap.String("method", rt.Method), zap.String("path", rt.Path))
	}
	log.Info("Routes registered", zap.Int("count", len(routes)), zap.String("base_path", r.BasePath()))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}
