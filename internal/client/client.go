// Package client talks to the habitquest REST API.
//
// Requests carry the session cookie through a cookie jar, the same way a
// browser sends credentials. Error statuses come back as *APIError, which
// unwraps to the error_values sentinels so callers can use errors.Is.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/net/publicsuffix"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/httputil"
	"github.com/limbo/habitquest/pkg/week"
)

const (
	SessionCookie  = "SESSION"
	apiPrefix      = "api"
	defaultTimeout = 10 * time.Second
)

type Client struct {
	base   *url.URL
	http   *http.Client
	token  string
	logger *slog.Logger
}

type Option func(c *Client)

// WithHTTPClient bases the underlying client on a copy of hc, so hc itself is
// left untouched. A jar is added to the copy if hc has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		c.http = &cp
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithSessionToken authenticates every request with token
func WithSessionToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.New("parsing api url error: " + err.Error())
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api url %q must be absolute", baseURL)
	}
	c := &Client{
		base: base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, errors.New("creating cookie jar error: " + err.Error())
		}
		c.http.Jar = jar
	}
	// redirects mean a login page, they are reported rather than followed
	c.http.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	if c.token != "" {
		c.http.Jar.SetCookies(base, []*http.Cookie{{
			Name:  SessionCookie,
			Value: c.token,
			Path:  "/",
		}})
	}
	return c, nil
}

// APIError is a non-2xx answer of the API
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return errorvalues.ErrUnauthenticated
	case e.StatusCode >= 300 && e.StatusCode < 400:
		return errorvalues.ErrUnauthenticated
	case e.StatusCode == http.StatusNotFound:
		return errorvalues.ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return errorvalues.ErrConflict
	}
	return nil
}

func (c *Client) apiURL(segments ...string) *url.URL {
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, apiPrefix)
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return c.base.JoinPath(escaped...)
}

func (c *Client) do(ctx context.Context, method string, u *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return errors.New("building request error: " + err.Error())
	}
	req.Header.Set("Accept", "application/json")
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, u.Path, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("api call",
		slog.String("method", method),
		slog.String("path", u.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(started)),
	)
	if resp.StatusCode >= 300 {
		body := httputil.ReadErrorResponse(resp.StatusCode, resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       u.Path,
			Message:    body.Message,
			Details:    body.Details,
		}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decoding response error: %w", method, u.Path, err)
	}
	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, http.MethodGet, c.apiURL("auth", "me"), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RandomHabit fetches one random habit of the given frequency
func (c *Client) RandomHabit(ctx context.Context, freq entity.Frequency) (*entity.Habit, error) {
	var segment string
	switch freq {
	case entity.FrequencyDaily:
		segment = "daily"
	case entity.FrequencyWeekly:
		segment = "weekly"
	default:
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrUnknownFreq, freq)
	}
	var habit entity.Habit
	if err := c.do(ctx, http.MethodGet, c.apiURL("habits", segment), &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

// Habits lists the whole catalog
func (c *Client) Habits(ctx context.Context) ([]entity.Habit, error) {
	habits := make([]entity.Habit, 0)
	if err := c.do(ctx, http.MethodGet, c.apiURL("habits"), &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (c *Client) MyHabits(ctx context.Context) ([]entity.UserHabit, error) {
	habits := make([]entity.UserHabit, 0)
	if err := c.do(ctx, http.MethodGet, c.apiURL("my-habits"), &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (c *Client) AcceptHabit(ctx context.Context, habitID string) (*entity.UserHabit, error) {
	var uh entity.UserHabit
	if err := c.do(ctx, http.MethodPost, c.apiURL("my-habits", habitID), &uh); err != nil {
		return nil, err
	}
	return &uh, nil
}

func (c *Client) RemoveHabit(ctx context.Context, habitID string) error {
	return c.do(ctx, http.MethodDelete, c.apiURL("my-habits", habitID), nil)
}

func (c *Client) CompleteHabit(ctx context.Context, habitID string) (*entity.UserHabit, error) {
	var uh entity.UserHabit
	if err := c.do(ctx, http.MethodPost, c.apiURL("my-habits", habitID, "complete"), &uh); err != nil {
		return nil, err
	}
	return &uh, nil
}

// WeekCompletions lists completions of the week starting at weekStart.
// A zero weekStart leaves the week choice to the backend (current week).
func (c *Client) WeekCompletions(ctx context.Context, weekStart time.Time) ([]entity.HabitCompletion, error) {
	u := c.apiURL("completions", "week")
	if !weekStart.IsZero() {
		q := url.Values{}
		q.Set("date", week.FormatKey(week.Start(weekStart)))
		u.RawQuery = q.Encode()
	}
	completions := make([]entity.HabitCompletion, 0)
	if err := c.do(ctx, http.MethodGet, u, &completions); err != nil {
		return nil, err
	}
	return completions, nil
}

// Logout ends the backend session. The endpoint answers with a redirect.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, c.base.JoinPath("logout"), nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 300 && apiErr.StatusCode < 400 {
		return nil
	}
	return err
}
