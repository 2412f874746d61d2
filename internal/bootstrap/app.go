package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/fintrack/fintrack-go/config"
	"github.com/fintrack/fintrack-go/internal/adapters/googleid"
	"github.com/fintrack/fintrack-go/internal/adapters/storage"
	"github.com/fintrack/fintrack-go/internal/api"
	"github.com/fintrack/fintrack-go/internal/guard"
	"github.com/fintrack/fintrack-go/internal/ports"
	"github.com/fintrack/fintrack-go/internal/service"
	"github.com/fintrack/fintrack-go/internal/session"
)

// App wires the session store, the API client and the services for a
// command invocation.
type App struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Sessions *session.Store
	API      *api.Client
	Guard    *guard.Guard

	Auth      *service.AuthService
	Expenses  *service.ExpenseService
	Budgets   *service.BudgetService
	Savings   *service.SavingService
	Blog      *service.BlogService
	Admin     *service.AdminService
	Contact   *service.ContactService
	Profile   *service.ProfileService
	Dashboard *service.DashboardService

	GoogleFlow *googleid.Flow

	closers []func() error
}

// NewApp builds a fully wired App from configuration. The session store is
// initialized from persisted state before returning.
func NewApp(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}

	store, err := app.buildSessionStorage(cfg)
	if err != nil {
		return nil, err
	}

	app.Sessions = session.NewStore(session.StoreOptions{
		Storage: store,
		Logger:  logger,
	})
	app.Sessions.Initialize(ctx)

	app.API, err = api.NewClient(api.Options{
		BaseURL:         cfg.API.BaseURL,
		Timeout:         cfg.API.Timeout(),
		SubscriptionKey: cfg.API.SubscriptionKey,
		Tokens:          app.Sessions,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	app.Guard = guard.New(app.Sessions)

	var verifier ports.TokenVerifier
	if cfg.Auth.GoogleClientID != "" {
		v, verr := googleid.NewVerifier(googleid.VerifierConfig{ClientID: cfg.Auth.GoogleClientID})
		if verr != nil {
			return nil, fmt.Errorf("build google verifier: %w", verr)
		}
		verifier = v

		flow, ferr := googleid.NewFlow(googleid.FlowConfig{
			ClientID:     cfg.Auth.GoogleClientID,
			ClientSecret: cfg.Auth.GoogleClientSecret,
			ListenAddr:   cfg.Auth.GoogleRedirectAddr,
		})
		if ferr != nil {
			return nil, fmt.Errorf("build google sign-in flow: %w", ferr)
		}
		app.GoogleFlow = flow
	}

	app.Auth = service.NewAuthService(service.AuthServiceOptions{
		API:      app.API,
		Sessions: app.Sessions,
		Verifier: verifier,
		Logger:   logger,
	})
	app.Expenses = service.NewExpenseService(app.API)
	app.Budgets = service.NewBudgetService(app.API)
	app.Savings = service.NewSavingService(app.API)
	app.Blog = service.NewBlogService(app.API)
	app.Admin = service.NewAdminService(app.API)
	app.Contact = service.NewContactService(app.API)
	app.Profile = service.NewProfileService(app.API)
	app.Dashboard = service.NewDashboardService(service.DashboardServiceOptions{
		Expenses: app.Expenses,
		Budgets:  app.Budgets,
		Savings:  app.Savings,
	})

	return app, nil
}

func (a *App) buildSessionStorage(cfg config.AppConfig) (ports.SessionStorage, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, client.Close)
		return storage.NewRedisStorage(client, cfg.Session.KeyPrefix), nil
	case config.SessionBackendFile:
		fs, err := storage.NewFileStorage(cfg.Session.StateDir)
		if err != nil {
			return nil, fmt.Errorf("build file session storage: %w", err)
		}
		return fs, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// Close releases resources held by the wired adapters.
func (a *App) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
