package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestEvent_Admit_Twice(t *testing.T) {
	e := &Event{ID: "e1"}

	require.NoError(t, e.Admit("u1"))
	assert.ErrorIs(t, e.Admit("u1"), ErrAlreadyMember)
	assert.Len(t, e.MemberIDs, 1)
}

func TestEvent_Admit_DuplicateReportedBeforeFull(t *testing.T) {
	e := &Event{ID: "e1", Capacity: intPtr(1), MemberIDs: []string{"u1"}}

	assert.ErrorIs(t, e.Admit("u1"), ErrAlreadyMember)
	assert.ErrorIs(t, e.Admit("u2"), ErrCapacityExceeded)
	assert.Equal(t, []string{"u1"}, e.MemberIDs)
}

func TestEvent_Admit_Unbounded(t *testing.T) {
	e := &Event{ID: "e1"}

	for i := 0; i < 500; i++ {
		require.NoError(t, e.Admit(time.Duration(i).String()))
	}
	assert.Len(t, e.MemberIDs, 500)
}

func TestEvent_Admit_LoweredCapacityKeepsMembers(t *testing.T) {
	e := &Event{ID: "e1", Capacity: intPtr(1), MemberIDs: []string{"u1", "u2", "u3"}}

	assert.ErrorIs(t, e.Admit("u4"), ErrCapacityExceeded)
	assert.Len(t, e.MemberIDs, 3)
}

func TestEvent_Withdraw(t *testing.T) {
	e := &Event{ID: "e1", MemberIDs: []string{"u1", "u2"}}

	require.NoError(t, e.Withdraw("u1"))
	assert.Equal(t, []string{"u2"}, e.MemberIDs)

	assert.ErrorIs(t, e.Withdraw("u1"), ErrNotMember)
	assert.Equal(t, []string{"u2"}, e.MemberIDs)
}

func TestValidateWindow(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateWindow(start, start.Add(time.Hour), nil))
	assert.ErrorIs(t, ValidateWindow(start, start, nil), ErrInvalidRange)
	assert.ErrorIs(t, ValidateWindow(start, start.Add(-time.Minute), nil), ErrInvalidRange)
	assert.ErrorIs(t, ValidateWindow(start, start.Add(time.Hour), intPtr(0)), ErrValidation)
}

func TestMemberDiff(t *testing.T) {
	added, removed := MemberDiff([]string{"a", "b"}, []string{"b", "c"})

	assert.Equal(t, []string{"c"}, added)
	assert.Equal(t, []string{"a"}, removed)
}

func TestRemoteError(t *testing.T) {
	err := NewClubNotFound(999)

	assert.ErrorIs(t, err, ErrClubNotFound)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "999")

	unavailable := NewClubUnavailable(5, 503)
	assert.ErrorIs(t, unavailable, ErrClubServiceUnavailable)
	assert.Equal(t, 503, unavailable.StatusCode)
}
