package errorvalues

import "errors"

// Storage and business errors
var (
	ErrUserNotFound        = errors.New("user doesn't exists")
	ErrHabitNotFound       = errors.New("habit doesn't exists")
	ErrNoHabitCandidate    = errors.New("no habit matches suggestion criteria")
	ErrHabitAlreadyTracked = errors.New("habit is already tracked by user")
	ErrHabitNotTracked     = errors.New("habit is not in user's habit list")
	ErrAlreadyCompleted    = errors.New("habit already completed for current period")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidSeed         = errors.New("invalid habit catalog entry")
)

// Client side errors
var (
	ErrUnauthenticated = errors.New("not logged in")
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("conflicting state")
	ErrRequestInFlight = errors.New("request already in progress")
	ErrViewClosed      = errors.New("view is closed")
	ErrPeriodCompleted = errors.New("habit already completed for this period")
	ErrUnknownFreq     = errors.New("unknown habit frequency")
)
