package cmd

import (
	"context"
	"os"

	"github.com/airiskcouncil/arcctl/internal/api"
	"github.com/airiskcouncil/arcctl/internal/config"
	"github.com/airiskcouncil/arcctl/internal/errors"
	"github.com/airiskcouncil/arcctl/internal/log"
	"github.com/airiskcouncil/arcctl/internal/session"
	"github.com/airiskcouncil/arcctl/internal/ux"
)

// appContext wires the pieces every command needs: config, the API
// client, and the session manager backed by the persisted cookie jar.
type appContext struct {
	cfg     config.Config
	logger  *log.Logger
	client  *api.Client
	session *session.Manager
}

// newAppContext builds the command wiring. The --api-url flag beats the
// environment, which beats the config file.
func newAppContext() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}

	logger := log.DefaultLogger()
	if !flagVerbose {
		logger = log.New(log.Config{
			Level:  log.ParseLevel(cfg.LogLevel),
			Format: log.FormatText,
			Output: os.Stderr,
		})
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	store := session.NewCookieStore(dir)

	var mgr *session.Manager
	client, err := api.NewClient(cfg.APIURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.Timeout),
		api.WithSessionInvalidHook(func() {
			if mgr != nil {
				mgr.Invalidate()
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	mgr = session.NewManager(client,
		session.WithCookieStore(store),
		session.WithLogger(logger),
	)

	return &appContext{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		session: mgr,
	}, nil
}

// requireSession restores the persisted session and fails with a
// not-logged-in error when it resolves anonymous.
func (a *appContext) requireSession(ctx context.Context) error {
	a.session.Restore(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if !a.session.State().Authenticated() {
		return errors.NewNotLoggedInError()
	}
	return nil
}

// requireAdmin is requireSession plus an administrator check.
func (a *appContext) requireAdmin(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	if !a.session.IsAdmin() {
		return errors.NewForbiddenError("administration requires the admin role")
	}
	return nil
}

// formatter builds the output formatter selected by --output.
func formatter() (ux.Formatter, error) {
	return ux.NewFormatter(flagOutput, &ux.FormatterOptions{
		Writer:  os.Stdout,
		NoColor: flagNoColor,
	})
}

// emit renders data with the selected formatter.
func emit(data interface{}) error {
	f, err := formatter()
	if err != nil {
		return err
	}
	return f.Format(data)
}
