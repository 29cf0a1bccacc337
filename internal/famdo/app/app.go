package app

import (
	"fmt"
	"log/slog"

	"github.com/famdoapp/famdo/internal/famdo/service"
	"github.com/famdoapp/famdo/internal/famdo/store"
	"github.com/famdoapp/famdo/internal/famdo/store/drivers/sqlite"
	"github.com/famdoapp/famdo/pkg/apix"
	"github.com/famdoapp/famdo/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the local replica, the core services, and the optional
// backend client behind one handle for the CLI commands.
type Application struct {
	Cfg    Config
	Logger *slog.Logger

	DB store.Store

	Sessions   *service.SessionManager
	Membership *service.MembershipService
	Tasks      *service.TaskService
	Reports    *service.ReportService

	// API is nil when no backend is configured; the app then runs fully
	// offline against the local replica.
	API *apix.Client
}

// New creates an Application with all dependencies initialized. The local
// database is opened and migrated before any service is handed out.
func New(cfg Config) (*Application, error) {
	app := &Application{
		Cfg: cfg,
		Logger: slogx.New(slogx.Config{
			Service: "famdo",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	db, err := sqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local database: %w", err)
	}
	app.DB = db

	app.Sessions = &service.SessionManager{KV: db.KV()}
	app.Membership = &service.MembershipService{Store: db}
	app.Tasks = &service.TaskService{Store: db}
	app.Reports = &service.ReportService{Store: db}

	if cfg.APIBaseURL != "" {
		app.API = apix.NewClient(cfg.APIBaseURL)
	}

	return app, nil
}

// Close releases the local database.
func (app *Application) Close() error {
	if app.DB != nil {
		return app.DB.Close()
	}
	return nil
}
