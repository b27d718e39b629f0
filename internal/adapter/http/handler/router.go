package handler

import (
	"fractional-asset-registry/internal/adapter/http/middleware"
	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Registry        ports.AssetRegistry
	Policy          ports.PolicyEngine
	Roles           ports.RoleManager
	Factory         ports.VaultFactory
	Funds           ports.FundsService
	History         ports.HistoryService // nil = event history disabled
	TokenSvc        ports.TokenService
	Idempotency     ports.IdempotencyService    // nil = Idempotency-Key ignored
	IdempotencyLock ports.IdempotencyLock       // nil = no in-flight protection
	RateLimitStore  middleware.RateLimitChecker // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	AuditSvc        ports.AuditService // nil = audit logging disabled
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.RequireJSON())

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Deep health check over PostgreSQL and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Helper: replay payment-bearing requests carrying an Idempotency-Key.
	idem := func(scope string) gin.HandlerFunc {
		if deps.Idempotency == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.Idempotency(deps.Idempotency, deps.IdempotencyLock, scope, deps.Logger)
	}

	// All API routes are JWT-authenticated
	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	assetHandler := NewAssetHandler(deps.Registry)
	assets := v1.Group("/assets")
	{
		assets.POST("", rl("mint"), idem("mint"), assetHandler.Mint)
		assets.GET("/:id", rl("read"), assetHandler.Get)
		assets.GET("/:id/quote", rl("read"), assetHandler.Quote)
		assets.GET("/:id/royalties", rl("read"), assetHandler.Royalties)
		assets.POST("/:id/verify", rl("admin"), assetHandler.Verify)
		assets.PUT("/:id/valuation", rl("admin"), assetHandler.UpdateValuation)
		assets.POST("/:id/freeze", rl("admin"), assetHandler.Freeze)
		assets.POST("/:id/unfreeze", rl("admin"), assetHandler.Unfreeze)
		assets.POST("/:id/recover", rl("admin"), assetHandler.Recover)
		assets.POST("/:id/transfer", rl("transfer"), idem("transfer"), assetHandler.Transfer)
		assets.POST("/:id/approve", rl("transfer"), assetHandler.Approve)
		assets.POST("/:id/royalties", rl("admin"), assetHandler.AddRoyaltyRecipient)
		assets.DELETE("/:id/royalties", rl("admin"), assetHandler.RemoveRoyaltyRecipient)
		assets.PUT("/:id/royalty-rate", rl("admin"), assetHandler.SetRoyaltyRate)
		assets.PUT("/:id/fee-override", rl("admin"), assetHandler.SetFeeOverride)
	}
	v1.GET("/registry/settings", rl("read"), assetHandler.Settings)
	v1.PUT("/registry/settings", rl("admin"), assetHandler.UpdateSettings)

	policyHandler := NewPolicyHandler(deps.Policy, deps.Roles)
	policy := v1.Group("/policy")
	{
		policy.GET("", rl("read"), policyHandler.Snapshot)
		policy.GET("/evaluate", rl("read"), policyHandler.Evaluate)
		policy.PUT("/blacklist", rl("admin"), policyHandler.SetBlacklist)
		policy.PUT("/pairs", rl("admin"), policyHandler.SetPairRestriction)
		policy.PUT("/assets", rl("admin"), policyHandler.SetAssetRestriction)
		policy.POST("/pause", rl("admin"), policyHandler.Pause)
		policy.POST("/unpause", rl("admin"), policyHandler.Unpause)
	}
	roles := v1.Group("/roles")
	{
		roles.GET("/:principal", rl("read"), policyHandler.Roles)
		roles.POST("/grant", rl("admin"), policyHandler.GrantRole)
		roles.POST("/revoke", rl("admin"), policyHandler.RevokeRole)
	}

	var registryAddr domain.Address
	if deps.Registry != nil {
		registryAddr = deps.Registry.Address()
	}
	vaultHandler := NewVaultHandler(deps.Factory, registryAddr)
	vaults := v1.Group("/vaults")
	{
		vaults.POST("", rl("vaults"), idem("create_vault"), vaultHandler.Create)
		vaults.GET("", rl("read"), vaultHandler.ListMine)
		vaults.GET("/:id", rl("read"), vaultHandler.Get)
		vaults.POST("/:id/buy", rl("trade"), idem("buy"), vaultHandler.Buy)
		vaults.POST("/:id/sell", rl("trade"), idem("sell"), vaultHandler.Sell)
		vaults.POST("/:id/redeem", rl("trade"), vaultHandler.Redeem)
		vaults.POST("/:id/redemption", rl("admin"), vaultHandler.EnableRedemption)
		vaults.POST("/:id/pause", rl("admin"), vaultHandler.Pause)
		vaults.POST("/:id/unpause", rl("admin"), vaultHandler.Unpause)
		vaults.POST("/:id/liquidity/deposit", rl("trade"), idem("deposit"), vaultHandler.DepositLiquidity)
		vaults.POST("/:id/liquidity/withdraw", rl("trade"), vaultHandler.WithdrawLiquidity)
	}
	factory := v1.Group("/factory")
	{
		factory.GET("/settings", rl("read"), vaultHandler.FactorySettings)
		factory.PUT("/settings", rl("admin"), vaultHandler.UpdateFactorySettings)
		factory.POST("/pause", rl("admin"), vaultHandler.PauseFactory)
		factory.POST("/unpause", rl("admin"), vaultHandler.UnpauseFactory)
	}

	fundsHandler := NewFundsHandler(deps.Funds, deps.History)
	balances := v1.Group("/balances")
	{
		balances.GET("/me", rl("read"), fundsHandler.GetBalance)
		balances.POST("/topup", rl("topup"), idem("topup"), fundsHandler.Topup)
	}
	v1.GET("/events", rl("read"), fundsHandler.ListEvents)

	return r
}
