package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/repository"
	"github.com/stpnv0/TennisHub/internal/service/ports"
	"github.com/stpnv0/TennisHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func intPtr(v int) *int { return &v }

// applyMutation makes a MutateMembers mock behave like a real store holding e.
func applyMutation(e *domain.Event) func(context.Context, string, ports.MemberMutation) (*domain.Event, error) {
	return func(_ context.Context, _ string, fn ports.MemberMutation) (*domain.Event, error) {
		if err := fn(e); err != nil {
			return nil, err
		}
		return e, nil
	}
}

type registryMocks struct {
	eventRepo *mocks.MockEventRepo
	userRepo  *mocks.MockUserRepo
	notifier  *mocks.MockRegistrationNotifier
}

func newRegistry(t *testing.T) (*Registry, registryMocks) {
	t.Helper()
	m := registryMocks{
		eventRepo: mocks.NewMockEventRepo(t),
		userRepo:  mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockRegistrationNotifier(t),
	}
	return NewRegistry(m.eventRepo, m.userRepo, m.notifier, newTestLogger(t)), m
}

func TestRegistry_Admit_Success(t *testing.T) {
	svc, m := newRegistry(t)

	event := &domain.Event{ID: "e1", Kind: domain.EventKindTournament, Capacity: intPtr(2)}
	user := &domain.User{ID: "u1", Username: "alice"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().MutateMembers(mock.Anything, "e1", mock.Anything).RunAndReturn(applyMutation(event))
	m.notifier.EXPECT().NotifyAdmitted(mock.Anything, user, event).Return().Maybe()

	err := svc.Admit(context.Background(), "", "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, event.MemberIDs)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistry_Admit_Twice(t *testing.T) {
	svc, m := newRegistry(t)

	event := &domain.Event{ID: "e1", Kind: domain.EventKindTraining}
	user := &domain.User{ID: "u1"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil).Times(2)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil).Times(2)
	m.eventRepo.EXPECT().MutateMembers(mock.Anything, "e1", mock.Anything).RunAndReturn(applyMutation(event)).Times(2)
	m.notifier.EXPECT().NotifyAdmitted(mock.Anything, user, event).Return().Maybe()

	require.NoError(t, svc.Admit(context.Background(), "", "e1", "u1"))
	err := svc.Admit(context.Background(), "", "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	assert.Len(t, event.MemberIDs, 1)
}

func TestRegistry_Admit_EventNotFound(t *testing.T) {
	svc, m := newRegistry(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	err := svc.Admit(context.Background(), "", "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistry_Admit_WrongKind(t *testing.T) {
	svc, m := newRegistry(t)

	event := &domain.Event{ID: "e1", Kind: domain.EventKindTraining}
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	err := svc.Admit(context.Background(), domain.EventKindTournament, "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistry_Admit_UserNotFound(t *testing.T) {
	svc, m := newRegistry(t)

	event := &domain.Event{ID: "e1", Kind: domain.EventKindTournament}
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	err := svc.Admit(context.Background(), "", "e1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegistry_Admit_CapacityExceeded(t *testing.T) {
	svc, m := newRegistry(t)

	event := &domain.Event{ID: "e1", Capacity: intPtr(1), MemberIDs: []string{"u0"}}
	user := &domain.User{ID: "u1"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().MutateMembers(mock.Anything, "e1", mock.Anything).RunAndReturn(applyMutation(event))

	err := svc.Admit(context.Background(), "", "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, []string{"u0"}, event.MemberIDs)
}

func TestRegistry_Admit_StoreError(t *testing.T) {
	svc, m := newRegistry(t)

	event := &domain.Event{ID: "e1"}
	user := &domain.User{ID: "u1"}
	dbErr := errors.New("db error")

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().MutateMembers(mock.Anything, "e1", mock.Anything).Return(nil, dbErr)

	err := svc.Admit(context.Background(), "", "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestRegistry_Withdraw_Success(t *testing.T) {
	svc, m := newRegistry(t)

	event := &domain.Event{ID: "e1", MemberIDs: []string{"u1", "u2"}}
	user := &domain.User{ID: "u1"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().MutateMembers(mock.Anything, "e1", mock.Anything).RunAndReturn(applyMutation(event))
	m.notifier.EXPECT().NotifyWithdrawn(mock.Anything, user, event).Return().Maybe()

	err := svc.Withdraw(context.Background(), "", "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, event.MemberIDs)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistry_Withdraw_NotMember(t *testing.T) {
	svc, m := newRegistry(t)

	event := &domain.Event{ID: "e1", MemberIDs: []string{"u2"}}
	user := &domain.User{ID: "u1"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.eventRepo.EXPECT().MutateMembers(mock.Anything, "e1", mock.Anything).RunAndReturn(applyMutation(event))

	err := svc.Withdraw(context.Background(), "", "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotMember)
	assert.Equal(t, []string{"u2"}, event.MemberIDs)
}

// --- with the memory store ---

type nopNotifier struct{}

func (nopNotifier) NotifyAdmitted(context.Context, *domain.User, *domain.Event)  {}
func (nopNotifier) NotifyWithdrawn(context.Context, *domain.User, *domain.Event) {}

func seedStore(t *testing.T, capacity *int, users int) (*repository.MemoryStore, []string) {
	t.Helper()
	store := repository.NewMemoryStore()
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour)
	require.NoError(t, store.Events().Create(ctx, &domain.Event{
		ID: "e1", Kind: domain.EventKindTournament, Name: "Open", ClubID: 5,
		StartTime: start, EndTime: start.Add(2 * time.Hour), Capacity: capacity,
	}))

	ids := make([]string, 0, users)
	for i := 0; i < users; i++ {
		id := fmt.Sprintf("u%d", i)
		require.NoError(t, store.Users().Create(ctx, &domain.User{
			ID: id, Username: "user" + id, Email: id + "@example.com",
		}))
		ids = append(ids, id)
	}
	return store, ids
}

func TestRegistry_ConcurrentAdmit_NoOvershoot(t *testing.T) {
	const capacity = 5
	store, users := seedStore(t, intPtr(capacity), 20)
	svc := NewRegistry(store.Events(), store.Users(), nopNotifier{}, newTestLogger(t))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
		full     int
	)
	for _, id := range users {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			err := svc.Admit(context.Background(), "", "e1", id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
			case errors.Is(err, domain.ErrCapacityExceeded):
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, capacity, admitted)
	assert.Equal(t, len(users)-capacity, full)

	event, err := store.Events().GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Len(t, event.MemberIDs, capacity)
}

func TestRegistry_Unbounded(t *testing.T) {
	store, users := seedStore(t, nil, 50)
	svc := NewRegistry(store.Events(), store.Users(), nopNotifier{}, newTestLogger(t))

	for _, id := range users {
		require.NoError(t, svc.Admit(context.Background(), "", "e1", id))
	}

	event, err := store.Events().GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Len(t, event.MemberIDs, 50)
}

func TestRegistry_WithdrawNonMember_KeepsSet(t *testing.T) {
	store, users := seedStore(t, nil, 2)
	svc := NewRegistry(store.Events(), store.Users(), nopNotifier{}, newTestLogger(t))

	require.NoError(t, svc.Admit(context.Background(), "", "e1", users[0]))

	err := svc.Withdraw(context.Background(), "", "e1", users[1])
	assert.ErrorIs(t, err, domain.ErrNotMember)

	event, err := store.Events().GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{users[0]}, event.MemberIDs)
}
