package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotMember     = errors.New("user is not registered for this event")
)

var (
	ErrAlreadyMember    = errors.New("user is already registered for this event")
	ErrCapacityExceeded = errors.New("event has reached maximum number of participants")
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidRange = errors.New("end date and time must be after start date and time")
)

var (
	ErrClubNotFound           = errors.New("club not found")
	ErrClubServiceUnavailable = errors.New("club service unavailable")
)

// RemoteError is a failure reported by the club service. StatusCode is the
// status the remote answered with and is passed to the API caller as is.
type RemoteError struct {
	StatusCode int
	ClubID     int64
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == http.StatusNotFound {
		return fmt.Sprintf("club not found with id: %d", e.ClubID)
	}
	return fmt.Sprintf("club service error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func NewClubNotFound(clubID int64) *RemoteError {
	return &RemoteError{StatusCode: http.StatusNotFound, ClubID: clubID, Err: ErrClubNotFound}
}

func NewClubUnavailable(clubID int64, status int) *RemoteError {
	return &RemoteError{StatusCode: status, ClubID: clubID, Err: ErrClubServiceUnavailable}
}
