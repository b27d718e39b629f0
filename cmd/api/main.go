package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fractional-asset-registry/config"
	httpHandler "fractional-asset-registry/internal/adapter/http/handler"
	"fractional-asset-registry/internal/adapter/ledger/memory"
	pgStorage "fractional-asset-registry/internal/adapter/storage/postgres"
	redisStorage "fractional-asset-registry/internal/adapter/storage/redis"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"
	"fractional-asset-registry/internal/service"
	"fractional-asset-registry/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("FAR_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Fractional Asset Registry")

	admin, ok := domain.ParseAddress(cfg.Registry.Admin)
	if !ok || admin.IsZero() {
		log.Fatal().Str("admin", cfg.Registry.Admin).Msg("registry.admin must be a non-zero address")
	}
	registryAddr := mustAddress(cfg.Registry.Address, "registry.address")
	factoryAddr := mustAddress(cfg.Factory.Address, "factory.address")
	collector := admin
	if cfg.Registry.FeeCollector != "" {
		collector = mustAddress(cfg.Registry.FeeCollector, "registry.fee_collector")
	}
	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare database schema")
	}
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	transactor := pgStorage.NewTransactor(pool)
	fundsLedger := pgStorage.NewFundsLedger(pool, transactor)
	eventRepo := pgStorage.NewEventRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool, domain.IdempotencyWindow)
	auditRepo := pgStorage.NewAuditRepo(pool)

	// Initialize Redis stores
	keys := redisStorage.Keyspace(cfg.Redis.Namespace)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb, keys)
	idempotencyLock := redisStorage.NewIdempotencyLock(rdb, keys)
	publisher := redisStorage.NewEventPublisher(rdb, cfg.Notify.RedisChannel)

	// Event fan-out: persisted history, live channel, signed webhooks
	sigSvc := service.NewHMACSignatureService()
	webhookSvc := service.NewWebhookService(cfg.Notify.WebhookURL, cfg.Notify.WebhookSecret, sigSvc,
		&http.Client{Timeout: 10 * time.Second}, logger.WithComponent(log, "webhook"))
	sink := service.NewEventDispatcher(eventRepo, publisher, webhookSvc, logger.WithComponent(log, "events"))

	// Initialize business services
	roles := service.NewAccessControl(admin, sink, logger.WithComponent(log, "access"))
	policy := service.NewPolicyEngine(roles, sink, logger.WithComponent(log, "policy"))

	registry, err := service.NewRegistryService(service.RegistryParams{
		Address:                    registryAddr,
		FeeCollector:               collector,
		MintFeeBps:                 cfg.Registry.MintFeeBps,
		TransferFeeBps:             cfg.Registry.TransferFeeBps,
		MintCooldown:               cfg.Registry.MintCooldown,
		MinValuationUpdateInterval: cfg.Registry.MinValuationUpdateInterval,
	}, memory.NewAssetLedger(), fundsLedger, policy, roles, sink, logger.WithComponent(log, "registry"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize registry")
	}

	factory, err := service.NewFactoryService(service.FactoryParams{
		Address:        factoryAddr,
		FeeCollector:   collector,
		CreationFeeBps: cfg.Factory.CreationFeeBps,
	}, []ports.AssetCustodian{registry}, memory.ShareLedgers{}, fundsLedger, policy, roles, sink, logger.WithComponent(log, "factory"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize vault factory")
	}

	fundsSvc := service.NewFundsService(fundsLedger, roles, sink, logger.WithComponent(log, "funds"))
	historySvc := service.NewHistoryService(eventRepo)
	idempotencySvc := service.NewIdempotencyService(idempotencyCache, idempotencyRepo, log)
	auditSvc := service.NewAuditService(auditRepo, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb, keys)

	deps := httpHandler.RouterDeps{
		Registry:        registry,
		Policy:          policy,
		Roles:           roles,
		Factory:         factory,
		Funds:           fundsSvc,
		History:         historySvc,
		TokenSvc:        tokenSvc,
		Idempotency:     idempotencySvc,
		IdempotencyLock: idempotencyLock,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:        auditSvc,
		Logger:          log,
	}
	if cfg.RateLimit.Enabled {
		deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb, keys)
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// mustAddress parses a configured address or exits.
func mustAddress(raw, key string) domain.Address {
	a, ok := domain.ParseAddress(raw)
	if !ok || a.IsZero() {
		fmt.Fprintf(os.Stderr, "%s must be a non-zero address, got %q\n", key, raw)
		os.Exit(1)
	}
	return a
}
