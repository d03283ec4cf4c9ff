package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/handyops/proserve/internal/cli"
	"github.com/handyops/proserve/internal/db"
	"github.com/handyops/proserve/internal/photostore"
	"github.com/handyops/proserve/internal/repository"
	"github.com/handyops/proserve/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env in the working directory; real env vars win.
	_ = godotenv.Load()

	// DB path: env var or default ~/.proserve/proserve.db
	dbPath := os.Getenv("PROSERVE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".proserve", "proserve.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Photo directory: env var or default ~/.proserve/photos
	photoDir := os.Getenv("PROSERVE_PHOTOS")
	if photoDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		photoDir = filepath.Join(home, ".proserve", "photos")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	photos, err := photostore.NewFSStore(photoDir)
	if err != nil {
		return err
	}

	serviceRepo := repository.NewSQLiteServiceRepo(database)
	jobRepo := repository.NewSQLiteJobRepo(database)
	clientRepo := repository.NewSQLiteClientRepo(database)
	commRepo := repository.NewSQLiteCommunicationRepo(database)

	app := &cli.App{
		Catalog: service.NewCatalogService(serviceRepo),
		Jobs:    service.NewJobService(jobRepo, photos),
		Clients: service.NewClientService(clientRepo, commRepo),
		Comms:   service.NewCommunicationService(commRepo),
		Reports: service.NewReportService(jobRepo),
	}

	root := cli.NewRootCmd(app)

	// Bare invocation on a terminal opens the TUI.
	if len(os.Args) == 1 && isatty.IsTerminal(os.Stdout.Fd()) {
		root.SetArgs([]string{"tui"})
	}

	return root.Execute()
}
