package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/hanoi-animation/internal/config"
	"github.com/iburimskiy/hanoi-animation/internal/game"
	"github.com/iburimskiy/hanoi-animation/internal/session"
)

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	settings := config.Default()
	settings.RegisterFlags(flag.CommandLine)
	flag.Parse()
	settings = settings.Clamped()

	logger := newLogger(settings.LogLevel)

	if settings.Print {
		if err := session.WriteSolution(os.Stdout, settings.Discs); err != nil {
			logger.Error("print moves", "err", err)
			os.Exit(1)
		}
		return
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("TOWERS OF HANOI")

	logger.Info("starting", "discs", settings.Discs, "speed", settings.Speed, "sound", settings.Sound, "timeout", settings.Timeout)
	g := game.New(settings, logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
