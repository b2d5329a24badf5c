package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/claude"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/configuration"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/dataset"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/logging"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/session"
	"github.com/bettercallmanav/Simulation-of-User-Personas/internal/tui/core"
)

var (
	envFile  = flag.String("env", ".env", "Path to an env file with ANTHROPIC_API_KEY")
	logLevel = flag.String("loglevel", "", "Override log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	// A missing env file is fine; the key may come from the environment
	_ = godotenv.Load(*envFile)

	ctx := context.Background()

	// Load configuration
	config, err := configuration.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}

	logConfig := logging.DefaultConfig()
	logConfig.Level = logging.ParseLevel(config.LogLevel)
	logConfig.EnableFile = config.EnableFileLogging
	if err := logging.Initialize(logConfig); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	apiKey := configuration.APIKey()
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "ANTHROPIC_API_KEY is not set. Add it to your environment or a .env file.")
		os.Exit(1)
	}

	// A missing or malformed dataset file degrades to no internal context
	records := dataset.Load(config.DatasetPath)
	logging.Info("Dataset loaded", "path", config.DatasetPath, "records", len(records))

	driver := claude.NewDriver(apiKey, config.Model, int64(config.MaxTokens), int64(config.ThinkingBudget))
	sess := session.New(config, driver, records)

	model := core.NewModel(ctx, config, sess)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
