package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/limbo/habitquest/internal/suggestion"
	"github.com/limbo/habitquest/internal/tracker"
	"github.com/limbo/habitquest/pkg/entity"
)

// Dashboard is the main screen: two suggestion slots and the tracked list
type Dashboard struct {
	Suggestions *suggestion.Flow
	Tracked     *tracker.Flow
}

func New(suggestions *suggestion.Flow, tracked *tracker.Flow) *Dashboard {
	return &Dashboard{
		Suggestions: suggestions,
		Tracked:     tracked,
	}
}

// Mount issues the initial fetches concurrently. They are unordered and each
// flow handles its own failure, so a failing section never blocks the others.
// The returned error is the first one reported by a flow, if any.
func (d *Dashboard) Mount(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		return d.Suggestions.Fetch(ctx, entity.FrequencyDaily)
	})
	g.Go(func() error {
		return d.Suggestions.Fetch(ctx, entity.FrequencyWeekly)
	})
	g.Go(func() error {
		return d.Tracked.List(ctx)
	})
	return g.Wait()
}

// Unmount tears down both flows
func (d *Dashboard) Unmount() {
	d.Suggestions.Close()
	d.Tracked.Close()
}
