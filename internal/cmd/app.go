package cmd

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/refineryiq/riq/internal/config"
	"github.com/refineryiq/riq/internal/errors"
	"github.com/refineryiq/riq/internal/log"
	"github.com/refineryiq/riq/internal/platform"
	"github.com/refineryiq/riq/internal/session"
	"github.com/refineryiq/riq/internal/telemetry"
	"github.com/refineryiq/riq/internal/ux"
)

// app bundles the wired-up collaborators every command needs: configuration,
// the backend client, and the session manager feeding it tokens.
type app struct {
	cfg      *config.Config
	client   *platform.Client
	sessions *session.Manager
	shutdown func(context.Context) error
}

var (
	appOnce sync.Once
	appInst *app
	appErr  error
)

// getApp lazily wires the application once per process
func getApp() (*app, error) {
	appOnce.Do(func() {
		cfg, err := config.Load(config.DefaultPath())
		if err != nil {
			appErr = err
			return
		}

		level := log.ParseLevel(cfg.LogLevel)
		if verbose {
			level = log.LevelDebug
		}
		logger := log.New(log.Config{
			Level:  level,
			Format: log.ParseFormat(cfg.LogFormat),
			Output: log.DefaultConfig().Output,
		})
		log.SetGlobal(logger)

		shutdown, err := telemetry.Setup(context.Background(), cfg.TraceEndpoint)
		if err != nil {
			logger.WithError(err).Warn("tracing disabled")
			shutdown = func(context.Context) error { return nil }
		}

		client := platform.NewClient(cfg.APIURL, platform.WithLogger(logger))
		sessions := session.NewManager(session.NewFileRepository(cfg.StateDir), client)
		client.Tokens = sessions

		appInst = &app{
			cfg:      cfg,
			client:   client,
			sessions: sessions,
			shutdown: shutdown,
		}
	})

	return appInst, appErr
}

// teardownApp flushes telemetry on exit
func teardownApp() {
	if appInst == nil || appInst.shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = appInst.shutdown(ctx)
}

// requireUser restores the session and enforces the route-guard policy:
// access needs a session, and a role-guarded command additionally needs a
// matching role. The two denial cases surface as distinct errors so the user
// is told to log in versus told they lack the role.
func (a *app) requireUser(required session.Role) (*session.User, error) {
	user := a.sessions.Restore()
	if user == nil {
		return nil, errors.NewNotLoggedInError()
	}
	if !a.sessions.Authorize(required) {
		return nil, errors.NewRoleDeniedError(string(required))
	}
	return user, nil
}

// printData renders data according to the --output flag. The text callback
// handles the human-readable default; json and yaml go through the shared
// formatters.
func printData(cmd *cobra.Command, data any, text func(w io.Writer) error) error {
	format, _ := cmd.Flags().GetString("output")

	if (format == "" || format == "text") && text != nil {
		return text(cmd.OutOrStdout())
	}

	formatter, err := ux.NewFormatter(format, &ux.FormatterOptions{Writer: cmd.OutOrStdout()})
	if err != nil {
		return err
	}
	return formatter.Format(data)
}
