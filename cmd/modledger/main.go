package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/cli"
	"github.com/1111MdTanvirAhmed1111/modledger/internal/ledger"
	"github.com/1111MdTanvirAhmed1111/modledger/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.modledger/modledger.db
	dbPath := os.Getenv("MODLEDGER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".modledger", "modledger.db")
	}

	kv, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer kv.Close()

	var opts []ledger.Option
	if os.Getenv("MODLEDGER_LOG") != "" {
		opts = append(opts, ledger.WithObserver(ledger.NewLogMutationObserver(os.Stderr)))
	}

	store, err := ledger.Open(context.Background(), kv, opts...)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	app := &cli.App{Store: store}

	// Detect interactive terminal for shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
