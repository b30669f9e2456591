package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/wellspring/internal/api"
	"github.com/alexanderramin/wellspring/internal/cli"
	"github.com/alexanderramin/wellspring/internal/config"
	"github.com/alexanderramin/wellspring/internal/db"
	"github.com/alexanderramin/wellspring/internal/repository"
	"github.com/alexanderramin/wellspring/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	routineRepo := repository.NewSQLiteRoutineRepo(database)
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)
	dietRepo := repository.NewSQLiteDietRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	history := service.NewHistorySource(routineRepo, workoutRepo, dietRepo)

	app := &cli.App{
		Insights: service.NewInsightService(history, observer),
		Routines: service.NewRoutineService(routineRepo, uow, observer),
		Import:   service.NewImportService(uow, observer),
		Export:   service.NewExportService(history, observer),
		Clock:    cfg.Clock(),
		HTTPAddr: cfg.HTTPAddr,
		API: api.Options{
			AllowedOrigins: cfg.CORSOrigins,
			Logger:         slog.New(slog.NewTextHandler(os.Stderr, nil)),
		},
	}

	// Forms and the dashboard need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
