package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
)

type API interface {
	CurrentUser(ctx context.Context) (*entity.User, error)
	Logout(ctx context.Context) error
}

type State struct {
	User    *entity.User
	Loading bool
}

func (s State) Authenticated() bool {
	return s.User != nil
}

// Provider holds the current user. It is built once at the root and handed
// to every view that needs it.
type Provider struct {
	api    API
	logger *slog.Logger

	mu        sync.Mutex
	state     State
	observers []func(State)
}

func NewProvider(api API, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		api:    api,
		logger: logger.With(slog.String("flow", "session")),
		state:  State{Loading: true},
	}
}

// Load asks the backend who is logged in. Any failure means "no user".
func (p *Provider) Load(ctx context.Context) State {
	p.set(func(s *State) { s.Loading = true })
	user, err := p.api.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrUnauthenticated) {
			p.logger.Warn("loading current user error", slog.String("error", err.Error()))
		}
		user = nil
	}
	return p.set(func(s *State) {
		s.User = user
		s.Loading = false
	})
}

// Refresh reloads the user, e.g. after XP was earned
func (p *Provider) Refresh(ctx context.Context) State {
	return p.Load(ctx)
}

// Clear forgets the user and ends the backend session
func (p *Provider) Clear(ctx context.Context) error {
	p.set(func(s *State) {
		s.User = nil
		s.Loading = true
	})
	err := p.api.Logout(ctx)
	if err != nil {
		p.logger.Error("logout error", slog.String("error", err.Error()))
	}
	p.set(func(s *State) { s.Loading = false })
	return err
}

func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// Subscribe registers fn to be called on every state change
func (p *Provider) Subscribe(fn func(State)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, fn)
}

func (p *Provider) set(change func(*State)) State {
	p.mu.Lock()
	change(&p.state)
	state := p.snapshot()
	observers := append([]func(State){}, p.observers...)
	p.mu.Unlock()
	for _, fn := range observers {
		fn(state)
	}
	return state
}

func (p *Provider) snapshot() State {
	state := State{Loading: p.state.Loading}
	if p.state.User != nil {
		u := *p.state.User
		state.User = &u
	}
	return state
}
