package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Mshel/bfsnake/internal/game"
	"github.com/Mshel/bfsnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	envLogFile  = "BFSNAKE_LOG_FILE"
	envLogLevel = "BFSNAKE_LOG_LEVEL"
	envSeed     = "BFSNAKE_SEED"

	defaultLogFile = "bfsnake.log"
)

type settings struct {
	LogFile  string
	LogLevel log.Level
	Seed     int64
}

// loadSettings reads the environment. Bad values fall back to defaults and
// are reported in warnings so they can be logged once a logger exists.
func loadSettings(getenv func(string) string) (settings, []string) {
	s := settings{
		LogFile:  defaultLogFile,
		LogLevel: log.InfoLevel,
	}
	var warnings []string

	if v := getenv(envLogFile); v != "" {
		s.LogFile = v
	}

	if v := getenv(envLogLevel); v != "" {
		level, err := log.ParseLevel(v)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q ignored: %v", envLogLevel, v, err))
		} else {
			s.LogLevel = level
		}
	}

	if v := getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q ignored: %v", envSeed, v, err))
		} else {
			s.Seed = seed
		}
	}

	return s, warnings
}

// openLogOutput returns where logs go. The terminal belongs to the UI, so
// stderr is only used when asked for with "-".
func openLogOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func run() error {
	// .env is optional; values already in the environment win
	envErr := godotenv.Load()

	cfgSettings, warnings := loadSettings(os.Getenv)

	out, err := openLogOutput(cfgSettings.LogFile)
	if err != nil {
		return err
	}
	defer out.Close()

	logger := log.NewWithOptions(out, log.Options{
		Level:           cfgSettings.LogLevel,
		ReportTimestamp: true,
	})
	log.SetDefault(logger)

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn("Could not load .env", "error", envErr)
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	cfg := game.DefaultConfig()
	cfg.Seed = cfgSettings.Seed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Info("Starting bfsnake", "seed", cfg.Seed, "cols", cfg.Cols, "rows", cfg.Rows, "tick", cfg.TickDuration)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameManager := game.NewGameManager(cfg, rand.New(rand.NewSource(cfg.Seed)), logger)
	go gameManager.StartGameLoop(ctx)

	p := tea.NewProgram(
		ui.NewControllerModel(gameManager, 0, 0),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}

	log.Info("Bye")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
}
