// Command habitctl is a terminal client for the habit quest API
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/limbo/habitquest/internal/client"
	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/internal/feedback"
	"github.com/limbo/habitquest/internal/session"
	"github.com/limbo/habitquest/pkg/config"
	"github.com/limbo/habitquest/pkg/entity"
)

func main() {
	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	apiURL  string
	token   string
	timeout time.Duration
	verbose bool
}

// app is what every command works with, built once per invocation
type app struct {
	out      io.Writer
	client   *client.Client
	session  *session.Provider
	notifier feedback.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func rootCmd(out, errOut io.Writer) *cobra.Command {
	cfg := config.New()
	opts := &options{}
	a := &app{out: out, now: time.Now}

	cmd := &cobra.Command{
		Use:           "habitctl",
		Short:         "Track habits, earn XP, keep streaks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
			c, err := client.New(opts.apiURL,
				client.WithSessionToken(opts.token),
				client.WithTimeout(opts.timeout),
				client.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			a.client = c
			a.session = session.NewProvider(c, a.logger)
			a.notifier = feedback.NewWriterNotifier(out)
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api-url", cfg.GetStringOr("HABITS_API_URL", "http://localhost:8080"), "Backend base URL")
	flags.StringVar(&opts.token, "token", cfg.GetString("HABITS_SESSION_TOKEN"), "Session token")
	flags.DurationVar(&opts.timeout, "timeout", cfg.GetDuration("HABITS_TIMEOUT", 10*time.Second), "Request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging on stderr")

	cmd.AddCommand(
		meCmd(a),
		dashboardCmd(a),
		suggestCmd(a),
		acceptCmd(a),
		catalogCmd(a),
		habitsCmd(a),
		completeCmd(a),
		removeCmd(a),
		calendarCmd(a),
		logoutCmd(a),
	)
	return cmd
}

// enter loads the session and resolves route. Protected routes without a
// user end up at home, which a terminal reports as not logged in.
func (a *app) enter(ctx context.Context, route session.Route) (*entity.User, error) {
	state := a.session.Load(ctx)
	decision := session.Resolve(state, route)
	if decision.To != route && route.Protected() {
		return nil, fmt.Errorf("%w: set HABITS_SESSION_TOKEN or pass --token", errorvalues.ErrUnauthenticated)
	}
	return state.User, nil
}

// quiet turns errors already shown as notices into a plain exit status
func quiet(err error) error {
	if err == nil {
		return nil
	}
	return errShown
}

var errShown = errors.New("command failed")
