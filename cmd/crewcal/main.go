package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mhutchins/crewcal/internal/cli"
	"github.com/mhutchins/crewcal/internal/db"
	"github.com/mhutchins/crewcal/internal/repository"
	"github.com/mhutchins/crewcal/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.crewcal/crewcal.db
	dbPath := os.Getenv("CREWCAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".crewcal", "crewcal.db")
	}

	// Plain output when not attached to a terminal; lipgloss honors NO_COLOR.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	templateRepo := repository.NewSQLiteTemplateRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	exceptionRepo := repository.NewSQLiteExceptionRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(os.Stderr)

	syncSvc := service.NewSyncService(phaseRepo, scheduleRepo, observer)

	app := &cli.App{
		Projects:  service.NewProjectService(projectRepo),
		Templates: service.NewTemplateService(templateRepo, uow, observer),
		Holidays:  service.NewHolidayService(holidayRepo, observer),
		Schedules: service.NewScheduleService(projectRepo, templateRepo, holidayRepo, phaseRepo, scheduleRepo, uow, observer),
		Sync:      syncSvc,
		Delay:     service.NewDelayService(projectRepo, phaseRepo, exceptionRepo, syncSvc, uow, observer),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
