package bootstrap

import (
	"net/http"

	"github.com/designforge/design-forge-backend/config"
	httpapi "github.com/designforge/design-forge-backend/internal/api/http"
	apimiddleware "github.com/designforge/design-forge-backend/internal/api/http/middleware"
	"github.com/designforge/design-forge-backend/internal/auth"
	authmiddleware "github.com/designforge/design-forge-backend/internal/auth/middleware"
	deployhttp "github.com/designforge/design-forge-backend/internal/deployment/http"
	deployservice "github.com/designforge/design-forge-backend/internal/deployment/service"
	genhttp "github.com/designforge/design-forge-backend/internal/generation/http"
	genservice "github.com/designforge/design-forge-backend/internal/generation/service"
	"github.com/designforge/design-forge-backend/internal/ratelimit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Generator   genservice.Generator
	Deployer    deployservice.Deployer
	RateStore   ratelimit.Store
}

// SetGinMode switches gin to release mode for production deployments.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// NewRateStore picks the counter store configured for this deployment.
func NewRateStore(cfg config.RateLimitConfig) ratelimit.Store {
	if cfg.Store == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return ratelimit.NewRedisStore(client)
	}
	return ratelimit.NewMemoryStore()
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	cfg := dep.Config

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "method not allowed"})
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, cfg.App.Version)
	healthHandler.RegisterRoutes(r)

	verifier := auth.NewVerifier([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, cfg.Auth.Audience)
	limiter := ratelimit.NewLimiter(dep.RateStore, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	api := r.Group("/api/v1")
	api.Use(apimiddleware.RequestIDMiddleware())
	api.Use(apimiddleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	api.Use(authmiddleware.RequireAuth(verifier))
	api.Use(ratelimit.Middleware(limiter))

	genHandler := genhttp.New(dep.Generator)
	genHandler.Register(api)

	deployHandler := deployhttp.New(dep.Deployer)
	deployHandler.Register(api)

	return r
}
