package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hepi-staff/internal/belbin"
	"hepi-staff/internal/config"
	"hepi-staff/internal/db"
	apihttp "hepi-staff/internal/http"
	"hepi-staff/internal/repository"
	"hepi-staff/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if cfg.DBMigrateOnStart {
		if err := db.Migrate(ctx, pool); err != nil {
			logger.Fatal("db migrate", zap.Error(err))
		}
	}

	engine, err := belbin.NewEngine(belbin.DefaultQuestionnaire(), belbin.DefaultTraits(), belbin.DefaultBands())
	if err != nil {
		logger.Fatal("belbin configuration", zap.Error(err))
	}

	accountRepo := repository.NewPgAccountRepository(pool)
	employeeRepo := repository.NewPgEmployeeRepository(pool)
	assessmentRepo := repository.NewPgAssessmentRepository(pool)

	window := time.Duration(cfg.SubmissionRateWindowMinutes) * time.Minute
	var (
		limiter    service.SubmissionRateLimiter
		tokenStore service.RefreshTokenStore
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory limiter and token store", zap.Error(err))
		} else {
			limiter = service.NewRedisSubmissionRateLimiter(redisClient, window, cfg.SubmissionRateMax)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}
	if limiter == nil {
		limiter = service.NewSubmissionRateLimiter(window, cfg.SubmissionRateMax)
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	belbinSvc := service.NewBelbinService(engine, accountRepo, employeeRepo, assessmentRepo, limiter, logger)
	authSvc := service.NewAuthService(logger, accountRepo, jwtSvc)

	router := apihttp.NewRouter(
		logger,
		jwtSvc,
		apihttp.NewAuthHandler(logger, authSvc),
		apihttp.NewBelbinHandler(logger, belbinSvc),
		pool,
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
