package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/st325a1114/bokunokada/internal/cli"
	"github.com/st325a1114/bokunokada/internal/db"
	"github.com/st325a1114/bokunokada/internal/repository"
	"github.com/st325a1114/bokunokada/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The ledger lives in a private in-memory database and dies with the
	// process. There is no on-disk path to configure.
	database, err := db.Open(db.MemoryDSN)
	if err != nil {
		return fmt.Errorf("opening ledger store: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLiteEntryRepo(database)

	// Operation logging goes to a file so it never bleeds into the
	// alt-screen board. Off unless BOKUNOKADA_LOG names a path.
	var observer service.Observer = service.NoopObserver{}
	if logPath := os.Getenv("BOKUNOKADA_LOG"); logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		observer = service.NewLogObserver(logFile)
	}

	app := &cli.App{
		Ledger: service.NewLedgerService(entryRepo, observer),
	}

	// Detect interactive terminal for the board entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
