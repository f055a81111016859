package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/limbo/habitquest/internal/calendar"
	"github.com/limbo/habitquest/internal/dashboard"
	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/internal/render"
	"github.com/limbo/habitquest/internal/session"
	"github.com/limbo/habitquest/internal/suggestion"
	"github.com/limbo/habitquest/internal/tracker"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/week"
)

func meCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show level, XP and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.enter(cmd.Context(), session.RouteProfile)
			if err != nil {
				return err
			}
			render.UserStats(a.out, *user)
			return nil
		},
	}
}

func dashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Suggestions and tracked habits at a glance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := a.enter(ctx, session.RouteDashboard)
			if err != nil {
				return err
			}
			tracked := tracker.New(a.client, a.notifier, a.logger).WithClock(a.now)
			d := dashboard.New(suggestion.New(a.client, tracked, a.notifier, a.logger), tracked)
			defer d.Unmount()
			if err := d.Mount(ctx); err != nil {
				a.logger.Debug("dashboard mounted partially", slog.String("error", err.Error()))
			}

			render.UserStats(a.out, *user)
			fmt.Fprintln(a.out)
			for _, freq := range []entity.Frequency{entity.FrequencyDaily, entity.FrequencyWeekly} {
				state, _ := d.Suggestions.State(freq)
				render.Suggestion(a.out, state)
			}
			fmt.Fprintln(a.out)
			render.Tracked(a.out, d.Tracked.Habits(), a.now())
			return nil
		},
	}
}

func parseFrequency(arg string) (entity.Frequency, error) {
	switch arg {
	case "daily":
		return entity.FrequencyDaily, nil
	case "weekly":
		return entity.FrequencyWeekly, nil
	}
	return "", fmt.Errorf("%w: %q, want daily or weekly", errorvalues.ErrUnknownFreq, arg)
}

func suggestCmd(a *app) *cobra.Command {
	var accept bool
	cmd := &cobra.Command{
		Use:       "suggest daily|weekly",
		Short:     "Get a random habit to try",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"daily", "weekly"},
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, err := parseFrequency(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			// guests get suggestions too, accepting needs a session
			route := session.RouteHome
			if accept {
				route = session.RouteDashboard
			}
			if _, err := a.enter(ctx, route); err != nil {
				return err
			}
			flow := suggestion.New(a.client, nil, a.notifier, a.logger)
			defer flow.Close()
			if err := flow.Fetch(ctx, freq); err != nil {
				return err
			}
			state, _ := flow.State(freq)
			render.Suggestion(a.out, state)
			if state.Habit == nil {
				return errors.New("no suggestion available")
			}
			if accept {
				return quiet(flow.AcceptCurrent(ctx, freq))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&accept, "accept", false, "Start tracking the suggested habit")
	return cmd
}

func acceptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <habitId>",
		Short: "Start tracking a catalog habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.enter(ctx, session.RouteDashboard); err != nil {
				return err
			}
			habit := &entity.Habit{ID: args[0], Name: args[0]}
			// catalog lookup only improves the notice text
			if catalog, err := a.client.Habits(ctx); err == nil {
				for i := range catalog {
					if catalog[i].ID == args[0] {
						habit = &catalog[i]
						break
					}
				}
			}
			flow := suggestion.New(a.client, nil, a.notifier, a.logger)
			defer flow.Close()
			return quiet(flow.Accept(ctx, habit))
		},
	}
}

func catalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every habit of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := a.client.Habits(cmd.Context())
			if err != nil {
				return err
			}
			render.Catalog(a.out, habits)
			return nil
		},
	}
}

func habitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "habits",
		Short: "List tracked habits with today's status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.enter(ctx, session.RouteDashboard); err != nil {
				return err
			}
			flow := tracker.New(a.client, a.notifier, a.logger).WithClock(a.now)
			defer flow.Close()
			if err := flow.List(ctx); err != nil {
				return quiet(err)
			}
			render.Tracked(a.out, flow.Habits(), a.now())
			return nil
		},
	}
}

func completeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <habitId>",
		Short: "Mark a tracked habit done for this period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.enter(ctx, session.RouteDashboard); err != nil {
				return err
			}
			flow := tracker.New(a.client, a.notifier, a.logger).WithClock(a.now)
			defer flow.Close()
			// status is derived from the list, so load it first
			if err := flow.List(ctx); err != nil {
				return quiet(err)
			}
			if err := flow.Complete(ctx, args[0]); err != nil {
				if errors.Is(err, errorvalues.ErrPeriodCompleted) {
					return err
				}
				return quiet(err)
			}
			if state := a.session.Refresh(ctx); state.User != nil {
				render.UserStats(a.out, *state.User)
			}
			return nil
		},
	}
}

func removeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <habitId>",
		Short: "Stop tracking a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.enter(ctx, session.RouteDashboard); err != nil {
				return err
			}
			flow := tracker.New(a.client, a.notifier, a.logger).WithClock(a.now)
			defer flow.Close()
			return quiet(flow.Remove(ctx, args[0]))
		},
	}
}

func calendarCmd(a *app) *cobra.Command {
	var (
		date string
		back int
	)
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show completions of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.enter(ctx, session.RouteCalendar); err != nil {
				return err
			}
			day := a.now()
			if date != "" {
				parsed, err := week.ParseKey(date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --week %q, expected YYYY-MM-DD", date)
				}
				day = parsed
			}
			if back > 0 {
				day = week.Shift(week.Start(day), -back)
			}
			view := calendar.NewView(a.client, a.logger, a.now)
			defer view.Close()
			if err := view.GoTo(ctx, day); err != nil {
				return err
			}
			render.Week(a.out, view.Week(), a.now())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "week", "", "Any day of the week to show, YYYY-MM-DD")
	cmd.Flags().IntVar(&back, "back", 0, "Go this many weeks back")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out. Forget HABITS_SESSION_TOKEN to stay signed out.")
			return nil
		},
	}
}
