package domain

import (
	"fmt"
	"slices"
	"time"
)

type EventKind string

const (
	EventKindTournament EventKind = "tournament"
	EventKindTraining   EventKind = "training"
)

func (k EventKind) Valid() bool {
	return k == EventKindTournament || k == EventKindTraining
}

type Event struct {
	ID          string    `json:"id"`
	Kind        EventKind `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CoachName   string    `json:"coach_name"`
	ClubID      int64     `json:"club_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Capacity    *int      `json:"capacity"`
	MemberIDs   []string  `json:"member_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventView is an event enriched with the club name. ClubName is nil when
// the club service could not be asked.
type EventView struct {
	Event    Event   `json:"event"`
	ClubName *string `json:"club_name"`
}

type EventFilter struct {
	Kind   EventKind
	ClubID *int64
}

type CreateEventInput struct {
	Kind        EventKind
	Name        string
	Description string
	CoachName   string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    *int
}

type UpdateEventInput struct {
	Name        string
	Description string
	CoachName   string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    *int
}

// ValidateWindow checks the event time window and capacity bound.
func ValidateWindow(start, end time.Time, capacity *int) error {
	if !end.After(start) {
		return ErrInvalidRange
	}
	if capacity != nil && *capacity < 1 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	return nil
}

func (e *Event) HasMember(userID string) bool {
	return slices.Contains(e.MemberIDs, userID)
}

// Admit adds userID to the member set. A duplicate is reported before a full
// event, so a repeated registration is never mistaken for "no space".
func (e *Event) Admit(userID string) error {
	if e.HasMember(userID) {
		return ErrAlreadyMember
	}
	if e.Capacity != nil && len(e.MemberIDs) >= *e.Capacity {
		return ErrCapacityExceeded
	}
	e.MemberIDs = append(e.MemberIDs, userID)
	return nil
}

func (e *Event) Withdraw(userID string) error {
	idx := slices.Index(e.MemberIDs, userID)
	if idx < 0 {
		return ErrNotMember
	}
	e.MemberIDs = slices.Delete(e.MemberIDs, idx, idx+1)
	return nil
}

// MemberDiff returns the ids present only in after (added) and only in
// before (removed).
func MemberDiff(before, after []string) (added, removed []string) {
	for _, id := range after {
		if !slices.Contains(before, id) {
			added = append(added, id)
		}
	}
	for _, id := range before {
		if !slices.Contains(after, id) {
			removed = append(removed, id)
		}
	}
	return added, removed
}
