package main

import (
	"flag"
	"log/slog"

	"github.com/soocke/vaastu-overlay-go/app"
	"github.com/soocke/vaastu-overlay-go/config"
)

func main() {
	cfgPath := flag.String("config", "vaastu-overlay.json", "path to the JSON config file")
	imagePath := flag.String("image", "", "floor plan to open at startup")
	flag.Parse()

	// Base config from file, falling back to defaults
	cfg, err := config.Load(*cfgPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	application := app.NewApp("Vaastu Chakra Overlay", cfg.MaxViewWidth+380, cfg.MaxViewHeight+160, cfg, *cfgPath, logger)
	application.Start(*imagePath)
}
