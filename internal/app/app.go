// Package app wires the layer together for an embedding UI: config,
// logging, the store, the repositories, and the services on top.
//
// There is no main here on purpose. The module ships as a library;
// the front-end constructs one App at startup and calls into its
// services for the rest of the process lifetime.
package app

import (
	"fmt"
	"log/slog"

	"github.com/nechberman/berman/internal/auth"
	"github.com/nechberman/berman/internal/config"
	"github.com/nechberman/berman/internal/repository"
	"github.com/nechberman/berman/internal/service"
	"github.com/nechberman/berman/internal/storage/sqlite"
	"github.com/nechberman/berman/pkg/logging"
)

// App is the composition root: one store, one set of repositories,
// and the services the UI talks to.
type App struct {
	Repos      *repository.Repositories
	Identity   *service.IdentityService
	Attendance *service.AttendanceService
	Tasks      *service.TaskService
	Auth       *service.AuthService

	store *sqlite.Store
}

// New loads configuration, sets up logging, opens the store, and
// builds every service.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds the App from an explicit configuration.
func NewWithConfig(cfg config.Config) (*App, error) {
	logging.Setup()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}
	slog.Info("storage initialized", "database", cfg.DBPath)

	repos := repository.NewRepositories(store)
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

	return &App{
		Repos:      repos,
		Identity:   service.NewIdentityService(repos.Users, repos.People),
		Attendance: service.NewAttendanceService(repos.Attendance),
		Tasks:      service.NewTaskService(repos.Tasks, cfg.TaskRetention),
		Auth:       service.NewAuthService(auth.NewMatcher(repos.Users), sessions, slog.Default()),
		store:      store,
	}, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}
