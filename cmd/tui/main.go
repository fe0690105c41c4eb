package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/outfitguide/web/internal/config"
	"github.com/outfitguide/web/internal/delivery/tui"
	"github.com/outfitguide/web/internal/service"
)

func main() {
	// the terminal belongs to the UI, so logs go to a file or nowhere.
	// Silence them before config loading can print anything.
	log.SetOutput(io.Discard)
	cfg := config.Load()

	closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	client := service.NewWeatherClient(cfg.WeatherAPIURL,
		service.WithTimeout(cfg.RequestTimeout),
		service.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	model := tui.New(context.Background(), client, cfg.DefaultLocation)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "outfit: %v\n", err)
		os.Exit(1)
	}
}

// openLog sends log output to path, or keeps it discarded when path is empty
func openLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "outfit")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}
