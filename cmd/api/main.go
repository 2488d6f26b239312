package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yemitan/staylodge/internal/adapters/cache"
	"github.com/yemitan/staylodge/internal/adapters/memory"
	"github.com/yemitan/staylodge/internal/api/handlers"
	"github.com/yemitan/staylodge/internal/api/routes"
	"github.com/yemitan/staylodge/internal/application/services"
	"github.com/yemitan/staylodge/internal/domain/repositories"
	redisclient "github.com/yemitan/staylodge/internal/infrastructure/clients/redis"
	"github.com/yemitan/staylodge/internal/infrastructure/observability"
	"github.com/yemitan/staylodge/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger("staylodge-api", cfg.Log.Env, cfg.Log.Level)

	// Initialize repositories
	userRepo := memory.NewUserAdapter()
	reviewRepo := memory.NewReviewAdapter()
	amenityRepo := memory.NewAmenityAdapter()

	var placeRepo repositories.PlaceRepository = memory.NewPlaceAdapter()

	// Wrap the place repository with caching when Redis is configured.
	// The API works without it.
	if cfg.Redis.Enabled {
		redisClient, err := redisclient.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Redis client, running without cache")
		} else {
			defer redisClient.Close()
			cacheProvider := cache.NewRedisAdapter(redisClient)
			placeRepo = cache.NewCachedPlaceRepository(placeRepo, cacheProvider)
			log.Info().Msg("place repository wrapped with caching layer")
		}
	}

	// Wire the facade and the HTTP layer
	facade := services.NewFacade(userRepo, placeRepo, reviewRepo, amenityRepo)

	router := routes.NewRouter(
		handlers.NewUserHandler(facade),
		handlers.NewPlaceHandler(facade),
		handlers.NewReviewHandler(facade),
		handlers.NewAmenityHandler(facade),
	)

	server := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve until interrupted, then drain in-flight requests
	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
