package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		w.Header().Set("X-Request-ID", reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := GetUIDFromContext(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLoggerFromCtx(r.Context()).With(slog.String("uid", uid.String()))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware rejects requests without a valid session
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		tokenString, err := GetToken(r)
		if err != nil {
			logger.Error("auth failed: no session token")
			s.writeUnauthorized(w, "authorization failed: not logged in")
			return
		}
		user, err := s.identify(r.Context(), tokenString)
		if err != nil {
			if errors.Is(err, errorvalues.ErrInvalidToken) {
				logger.Error("auth failed: invalid token", slog.String("error", err.Error()))
				s.writeUnauthorized(w, "authorization failed: invalid token")
				return
			}
			logger.Error("auth failed: identifying user error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while identifying user", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// OptionalAuthMiddleware attaches the user when a valid session is present
// and lets guests through otherwise
func (s *Server) OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := GetToken(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		user, err := s.identify(r.Context(), tokenString)
		if err != nil {
			GetLoggerFromCtx(r.Context()).Debug("continuing as guest", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// identify resolves the token to a stored user, creating it on first sight
func (s *Server) identify(ctx context.Context, tokenString string) (*entity.User, error) {
	claims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	user, err := s.userService.Identify(ctx, claims.Identity())
	if err != nil {
		return nil, err
	}
	if _, err = uuid.Parse(user.ID); err != nil {
		return nil, errors.New("stored user has invalid id: " + user.ID)
	}
	return user, nil
}

func (s *Server) writeUnauthorized(w http.ResponseWriter, msg string) {
	var details error
	if s.loginURL != "" {
		details = errors.New("sign in at " + s.loginURL)
	}
	httputil.WriteErrorResponse(w, http.StatusUnauthorized, msg, details)
}

func withUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, uidContextKey, uuid.MustParse(user.ID))
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

// GetToken reads the session cookie, falling back to a Bearer header
func GetToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return GetTokenFromHeader(r)
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
