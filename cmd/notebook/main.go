package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/dukerupert/notebook/internal/config"
	"github.com/dukerupert/notebook/internal/console"
	"github.com/dukerupert/notebook/internal/database"
	"github.com/dukerupert/notebook/internal/logging"
	"github.com/dukerupert/notebook/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel, os.Stderr)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	notes := store.NewNoteStore(db)
	logger.Debug("database opened", "path", cfg.DBPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = run(ctx, notes, cfg, logger)
	stop()
	if err != nil {
		logger.Error("notebook stopped", "error", err)
		os.Exit(1)
	}
}

// run owns the store for the session and releases it on every return path,
// including a SIGINT or SIGTERM that cancels ctx while a prompt is blocked.
func run(ctx context.Context, notes *store.NoteStore, cfg *config.Config, logger *slog.Logger) error {
	defer notes.Close()

	var in console.Prompter
	if liner.TerminalSupported() && isatty.IsTerminal(os.Stdin.Fd()) {
		in = console.NewTerminalPrompter(cfg.HistoryFile)
	} else {
		in = console.NewReaderPrompter(os.Stdin, os.Stdout)
	}
	defer in.Close()

	return console.NewMenu(notes, in, os.Stdout, logger).Run(ctx)
}
