// Command snek plays classic Snake in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/snekcore/config"
	"github.com/brensch/snekcore/logging"
	"github.com/brensch/snekcore/tui"
)

func main() {
	configPath := flag.String("config", getEnvOrDefault("SNEK_CONFIG", ""), "Optional YAML config file")
	rows := flag.Int("rows", 0, "Board rows")
	cols := flag.Int("cols", 0, "Board columns")
	tick := flag.Duration("tick", 0, "Time between moves")
	walls := flag.String("walls", "", "What the wall does: block or kill")
	seed := flag.Int64("seed", 0, "Food placement seed (0 picks one per game)")
	autoplay := flag.Bool("autoplay", false, "Let the greedy autopilot steer")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "", "Log format: pretty or text")
	logFile := flag.String("log-file", "", "Log file path (the terminal is used by the game)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags given on the command line win over file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "tick":
			cfg.Tick = *tick
		case "walls":
			cfg.Walls = *walls
		case "seed":
			cfg.Seed = *seed
		case "autoplay":
			cfg.Autoplay = *autoplay
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "log-file":
			cfg.Log.File = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad flags: %v", err)
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	settings := tui.Settings{
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		Tick:     cfg.Tick,
		Walls:    cfg.WallPolicy(),
		Seed:     cfg.Seed,
		Autoplay: cfg.Autoplay,
	}
	model, err := tui.New(settings, logger, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	logger.Info("starting", "rows", cfg.Rows, "cols", cfg.Cols, "tick", cfg.Tick, "walls", cfg.Walls, "autoplay", cfg.Autoplay)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		logger.Error("program exited with error", "err", err)
		log.Fatalf("Game crashed: %v", err)
	}

	if m, ok := final.(tui.Model); ok {
		st := m.State()
		fmt.Printf("Final score: %d (length %d)\n", st.Score(), st.Len())
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
