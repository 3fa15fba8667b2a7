package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"scorequest/user/internal/handlers"
	"scorequest/user/internal/metrics"
	"scorequest/user/internal/middlewares"
	mongorepo "scorequest/user/internal/repositories/mongo"
	"scorequest/user/internal/routers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func tokenTTL(logger *zap.Logger) time.Duration {
	raw := os.Getenv("TOKEN_TTL")
	if raw == "" {
		// no expiry claim at all when unset, tokens stay valid until
		// the account disappears or the secret rotates
		return 0
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		logger.Fatal("invalid TOKEN_TTL", zap.String("value", raw), zap.Error(err))
	}
	return ttl
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	return strings.Split(raw, ",")
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	client, err := mongorepo.NewClient(context.Background())
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	userRepo, err := mongorepo.NewUserRepo(client)
	if err != nil {
		logger.Fatal("failed to initialise user repository", zap.Error(err))
	}

	ttl := tokenTTL(logger)
	authHandler := handlers.NewAuthHandler(userRepo, secret, ttl, logger)
	userHandler := handlers.NewUserHandler(userRepo, logger)
	authenticate := middlewares.Authenticate(userRepo, secret, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(metrics.Middleware("user"))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })
	router.Method("GET", "/metrics", metrics.Handler())
	routers.AuthRoutes(router, authHandler)
	routers.UserRoutes(router, userHandler, authenticate)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port

	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("User service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("User service shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}

	logger.Info("User service exited")
}
