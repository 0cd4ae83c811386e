package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snadaily/docs"

	"github.com/labstack/echo/v4"

	"snadaily/internal/auth"
	"snadaily/internal/cache"
	"snadaily/internal/config"
	"snadaily/internal/db"
	"snadaily/internal/gateway"
	"snadaily/internal/handler"
	"snadaily/internal/logger"
	"snadaily/internal/model"
	"snadaily/internal/repository"
	"snadaily/internal/router"
	"snadaily/internal/service"
)

// @title Betta Provenance Registry API
// @version 1.0
// @description Provenance registry for show bettas: certified fish records, storefront orders, and contest events with judge scoring.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Fish{},
		&model.Order{},
		&model.Event{},
		&model.ContestRegistration{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	fishRepo := repository.NewFishRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	regRepo := repository.NewRegistrationRepository(gormDB)

	// Initialize gateways
	payments := gateway.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransProduction)
	shipping := gateway.NewKomerceGateway(cfg.KomerceAPIKey)
	storage := gateway.NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseBucket)
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, chat endpoint disabled")
	}
	chat, err := gateway.NewGeminiChat(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client init")
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cfg.AdminUsername, cfg.AdminPassword)
	fishService := service.NewFishService(fishRepo, cacheClient)
	orderService := service.NewOrderService(orderRepo, fishRepo)
	paymentService := service.NewPaymentService(orderRepo, payments)
	contestService := service.NewContestService(regRepo, storage, log)
	judgeService := service.NewJudgeService(eventRepo, regRepo)
	eventService := service.NewEventService(eventRepo, userRepo)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(fishRepo, regRepo, cacheClient)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, log, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Fish:     handler.NewFishHandler(fishService),
		Order:    handler.NewOrderHandler(orderService),
		Payment:  handler.NewPaymentHandler(paymentService),
		Shipping: handler.NewShippingHandler(shipping),
		Contest:  handler.NewContestHandler(contestService),
		Judge:    handler.NewJudgeHandler(judgeService),
		Admin:    handler.NewAdminHandler(userService, eventService, contestService),
		AI:       handler.NewAIHandler(chat),
		Stats:    handler.NewStatsHandler(statsService),
	})

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := cacheClient.Close(); err != nil {
		log.Error().Err(err).Msg("cache close")
	}
	if err := db.Close(gormDB); err != nil {
		log.Error().Err(err).Msg("database close")
	}
}
