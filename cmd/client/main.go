package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"followup_tracker/internal/api"
	"followup_tracker/internal/cache"
	"followup_tracker/internal/config"
	"followup_tracker/internal/nav"
	"followup_tracker/internal/service"
	"followup_tracker/internal/session"
	"followup_tracker/internal/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	serverFlag := flag.String("server", "", "Override API base URL (e.g. https://api.example.com/api)")
	resetToken := flag.String("reset-token", "", "Password reset token from the emailed link")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *serverFlag != "" {
		cfg.APIBaseURL = strings.TrimRight(*serverFlag, "/")
	}

	// --- Session Cache ---
	var cacheClient cache.Client
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		cacheClient, err = cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to redis at %s: %v", cfg.RedisAddr, err)
		}
	default:
		cacheClient, err = cache.NewFileClient(cfg.CacheDir)
		if err != nil {
			log.Fatalf("Failed to open session cache in %s: %v", cfg.CacheDir, err)
		}
	}

	store := session.NewStore(cacheClient)

	// --- API Gateway ---
	gateway := api.NewGateway(cfg.APIBaseURL, cfg.HTTPTimeout, store)

	// --- Initialize Services ---
	services := ui.Services{
		Auth:      service.NewAuthService(gateway, store),
		Converts:  service.NewConvertService(gateway),
		Dashboard: service.NewDashboardService(gateway),
		Users:     service.NewUserService(gateway),
		Church:    service.NewChurchService(),
	}

	// --- Navigation ---
	router := nav.NewRouter(store, cfg.SplashDelay)
	gateway.SetUnauthorizedHandler(func() {
		log.Println("INFO: session rejected by server, returning to sign in")
		router.ForceLogin()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		cancel()
	}()

	// --- Run ---
	router.Start(ctx, *resetToken)
	app := ui.NewApp(router, store, services, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Client exited with error: %v", err)
	}
	log.Println("Client exiting")
}
