// Package cli wires the darkscreen components behind the CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/darkscreen/internal/application/port"
	"github.com/bnema/darkscreen/internal/application/usecase"
	"github.com/bnema/darkscreen/internal/cli/styles"
	"github.com/bnema/darkscreen/internal/domain/build"
	"github.com/bnema/darkscreen/internal/domain/repository"
	"github.com/bnema/darkscreen/internal/infrastructure/backlight"
	"github.com/bnema/darkscreen/internal/infrastructure/config"
	"github.com/bnema/darkscreen/internal/infrastructure/persistence/memory"
	"github.com/bnema/darkscreen/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/darkscreen/internal/infrastructure/simulator"
	"github.com/bnema/darkscreen/internal/logging"
)

const dataDirPerm = 0o755

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	db       *sqlite.LazyDB
	prefs    repository.PreferenceRepository
	volatile bool

	// Context with logger
	ctx        context.Context
	logCleanup func()
	closers    []func() error
}

// NewApp loads the configuration from configFile (empty for the XDG default)
// and builds the logger. The database is opened on first use.
func NewApp(configFile string) (*App, error) {
	mgr, cfg, cfgErr := loadConfig(configFile)

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel("trace"), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			LogDir:     cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	// The logger accepts everything; the effective level is global so a config
	// reload can change it.
	logging.SetGlobalLevel(cfg.Logging.Level)

	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), dataDirPerm); err != nil {
		logCleanup()
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		db:            db,
		prefs:         sqlite.NewLazyPreferenceRepository(db),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// loadConfig returns defaults (with resolved paths) when the file cannot be
// loaded. The manager is nil in that case.
func loadConfig(configFile string) (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, defaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return nil, defaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}

func defaultConfig() *config.Config {
	cfg := config.DefaultConfig()
	if dbPath, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = dbPath
	}
	if logDir, err := config.GetLogDir(); err == nil {
		cfg.Logging.LogDir = logDir
	}
	return cfg
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Store returns the counter store. With allowVolatile, a database that cannot
// be opened is replaced by an in-memory repository so a dark screen session
// still works; counters then last for the process only.
func (a *App) Store(allowVolatile bool) (*usecase.CounterStore, error) {
	if _, err := a.db.DB(a.ctx); err != nil {
		if !allowVolatile {
			return nil, fmt.Errorf("open preferences database: %w", err)
		}
		logging.FromContext(a.ctx).Warn().Err(err).Msg("preferences database unavailable, counters will not persist")
		a.prefs = memory.NewPreferenceRepository()
		a.volatile = true
	}
	return usecase.NewCounterStore(a.prefs), nil
}

// Volatile reports whether preferences fell back to memory.
func (a *App) Volatile() bool {
	return a.volatile
}

// DatabasePath returns the preferences database path.
func (a *App) DatabasePath() string {
	return a.db.Path()
}

// Display is the brightness hardware used by a session.
type Display struct {
	System     port.SystemBrightness
	Capability port.WriteCapability
	Name       string
	Backend    string
	MaxLevel   int

	// Permission is set only for the simulated device.
	Permission *simulator.Device
}

// OpenDisplay returns the simulated device when session.simulate is set and
// the sysfs backlight otherwise.
func (a *App) OpenDisplay() (*Display, error) {
	if a.Config.Session.Simulate {
		device := simulator.NewDevice(simulator.WithPermission(a.Config.Session.SimulatePermission))
		return &Display{
			System:     device,
			Capability: device,
			Name:       "simulated display",
			Backend:    "simulator",
			MaxLevel:   device.MaxLevel(),
			Permission: device,
		}, nil
	}

	var session backlight.SessionBrightness
	backend := "sysfs"
	if a.Config.Backlight.UseLogind {
		logind, err := backlight.NewLogindSession()
		if err != nil {
			logging.FromContext(a.ctx).Warn().Err(err).Msg("logind unavailable, using sysfs only")
		} else {
			session = logind
			backend = "sysfs+logind"
			a.closers = append(a.closers, logind.Close)
		}
	}

	bl, err := backlight.Open(a.ctx, a.Config.Backlight.BasePath, a.Config.Backlight.Device, session)
	if err != nil {
		return nil, err
	}

	return &Display{
		System:     bl,
		Capability: bl,
		Name:       bl.Name(),
		Backend:    backend,
		MaxLevel:   bl.MaxLevel(),
	}, nil
}

// WatchConfig applies log level changes from the config file while running.
func (a *App) WatchConfig() {
	if a.ConfigManager == nil {
		return
	}
	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		logging.SetGlobalLevel(cfg.Logging.Level)
		logging.FromContext(a.ctx).Info().Str("level", cfg.Logging.Level).Msg("log level updated from config")
	})
	if err := a.ConfigManager.Watch(); err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("failed to watch config file")
	}
}

// Close releases all resources.
func (a *App) Close() error {
	for _, closeFn := range a.closers {
		_ = closeFn()
	}
	err := a.db.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}
