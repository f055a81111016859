package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/httputil"
	"github.com/limbo/habitquest/pkg/week"
)

const handlerTimeout = time.Second * 10

// Me reloads the signed in user so the stats reflect every committed completion
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("getting current user error: no user in context")
		s.writeUnauthorized(w, "not logged in")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Warn("getting current user error: account is gone", slog.String("user_id", uid.String()))
			s.writeUnauthorized(w, "not logged in")
			return
		}
		logger.Error("getting current user error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error loading user", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) DailyHabit(w http.ResponseWriter, r *http.Request) {
	s.randomHabit(w, r, entity.FrequencyDaily)
}

func (s *Server) WeeklyHabit(w http.ResponseWriter, r *http.Request) {
	s.randomHabit(w, r, entity.FrequencyWeekly)
}

func (s *Server) randomHabit(w http.ResponseWriter, r *http.Request, freq entity.Frequency) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	// guests get the whole catalog
	uid, err := GetUIDFromContext(r)
	uidPtr := &uid
	if err != nil {
		uidPtr = nil
	}
	habit, err := s.catalogService.Random(ctx, freq, uidPtr)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoHabitCandidate) {
			logger.Info("suggesting habit: no candidate left", slog.String("frequency", string(freq)))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no habit to suggest", nil)
			return
		}
		logger.Error("suggesting habit error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error picking habit", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) Habits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habits, err := s.catalogService.List(ctx)
	if err != nil {
		logger.Error("listing catalog error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error listing habits", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) MyHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("listing user habits error: no uid in context")
		s.writeUnauthorized(w, "not logged in")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habits, err := s.userHabitsService.List(ctx, uid)
	if err != nil {
		logger.Error("listing user habits error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error listing tracked habits", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) AcceptHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("accepting habit error: no uid in context")
		s.writeUnauthorized(w, "not logged in")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	uh, err := s.userHabitsService.Accept(ctx, uid, r.PathValue("habitId"))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound):
			logger.Error("accepting habit error: habit not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit not found", nil)
		case errors.Is(err, errorvalues.ErrHabitAlreadyTracked):
			logger.Error("accepting habit error: already tracked")
			httputil.WriteErrorResponse(w, http.StatusConflict, "habit is already in your list", nil)
		default:
			logger.Error("accepting habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error accepting habit", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, uh)
}

func (s *Server) RemoveHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("removing habit error: no uid in context")
		s.writeUnauthorized(w, "not logged in")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	err = s.userHabitsService.Remove(ctx, uid, r.PathValue("habitId"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotTracked) {
			logger.Error("removing habit error: not tracked")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit is not in your list", nil)
			return
		}
		logger.Error("removing habit error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error removing habit", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("completing habit error: no uid in context")
		s.writeUnauthorized(w, "not logged in")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	uh, err := s.userHabitsService.Complete(ctx, uid, r.PathValue("habitId"))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotTracked), errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("completing habit error: not tracked")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit is not in your list", nil)
		case errors.Is(err, errorvalues.ErrAlreadyCompleted):
			logger.Info("completing habit: already done for period")
			httputil.WriteErrorResponse(w, http.StatusConflict, "habit already completed for this period", nil)
		default:
			logger.Error("completing habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error completing habit", nil)
		}
		return
	}
	s.metrics.observeCompletion(uh)
	httputil.WriteJSONResponse(w, http.StatusOK, uh)
}

func (s *Server) WeekCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("listing week completions error: no uid in context")
		s.writeUnauthorized(w, "not logged in")
		return
	}
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err = week.ParseKey(raw, time.Local)
		if err != nil {
			logger.Error("listing week completions error: invalid date", slog.String("date", raw))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	completions, err := s.completionsService.Week(ctx, uid, date)
	if err != nil {
		logger.Error("listing week completions error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error listing completions", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, completions)
}

// Logout drops the session cookie and sends the browser home
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
