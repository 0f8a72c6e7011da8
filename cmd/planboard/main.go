package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/planboard/internal/cli"
	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/notify"
	"github.com/alexanderramin/planboard/internal/remote"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

var _ service.Remote = (*remote.Client)(nil)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := config.HomeDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(config.ResolvePath(dir), dir)
	if err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.Level(level),
		ReportTimestamp: true,
		Prefix:          "planboard",
	}))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	planningRepo := repository.NewSQLitePlanningRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	metaRepo := repository.NewSQLiteMetaRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer remote.Observer = remote.NoopObserver{}
	if cfg.API.LogCalls {
		observer = remote.NewLogObserver(logger)
	}
	client := remote.NewClient(cfg.Remote(), observer)

	useCases := service.NewLogUseCaseObserver(logger)
	app := &cli.App{
		Board: service.NewBoardService(client, planningRepo, metaRepo, uow, service.BoardOptions{
			Logger:            logger,
			DuplicatePriority: cfg.Board.DuplicatePriority,
		}, useCases),
		Tasks:   service.NewTaskService(client, taskRepo, useCases),
		Notices: notify.NewCenter(cfg.Notifications(), logger),
		Days:    cfg.Board.Days,
		BaseURL: cfg.API.BaseURL,
	}

	// Detect interactive terminal for shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
