package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/touchlab-io/gesturekit/internal/config"
	"github.com/touchlab-io/gesturekit/internal/trace"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Trace.Path), 0o755); err != nil {
		log.Fatalf("mkdir trace dir: %v", err)
	}

	db, err := trace.Open(cfg.Trace.Path)
	if err != nil {
		log.Fatalf("open trace db: %v", err)
	}
	defer db.Close()

	if err := trace.RunMigrationsWithDB(db, migrationsPath()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := trace.NewStore(db)
	if err := trace.SeedDefaults(ctx, store, cfg.Engine.Timings()); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	p := tea.NewProgram(newModel(cfg, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func migrationsPath() string {
	if p := os.Getenv("GESTUREKIT_MIGRATIONS"); p != "" {
		return p
	}
	return "internal/trace/migrations"
}
