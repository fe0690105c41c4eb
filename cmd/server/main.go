package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/outfitguide/web/internal/config"
	"github.com/outfitguide/web/internal/delivery/http"
	"github.com/outfitguide/web/internal/service"
)

func main() {
	cfg := config.Load()

	// Dependency Injection: Services
	client := service.NewWeatherClient(cfg.WeatherAPIURL,
		service.WithTimeout(cfg.RequestTimeout),
		service.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)
	handler := http.NewHandler(client, cfg.WeatherAPIURL, cfg.DefaultLocation)
	app := http.NewApp(handler, cfg.AllowedOrigins)

	log.Printf("Weather backend: %s (env %s)", cfg.WeatherAPIURL, cfg.Env)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}
