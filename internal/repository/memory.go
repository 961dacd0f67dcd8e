package repository

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports"
)

// MemoryStore keeps events and users in process memory. Every read returns a
// copy, so callers never share state with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[string]*domain.Event
	users  map[string]*domain.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[string]*domain.Event),
		users:  make(map[string]*domain.User),
	}
}

func (s *MemoryStore) Events() ports.EventRepo { return &memoryEvents{s} }

func (s *MemoryStore) Users() ports.UserRepo { return &memoryUsers{s} }

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	c.MemberIDs = slices.Clone(e.MemberIDs)
	if c.MemberIDs == nil {
		c.MemberIDs = []string{}
	}
	if e.Capacity != nil {
		capacity := *e.Capacity
		c.Capacity = &capacity
	}
	return &c
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.TelegramChatID != nil {
		chatID := *u.TelegramChatID
		c.TelegramChatID = &chatID
	}
	return &c
}

type memoryEvents struct{ s *MemoryStore }

func (r *memoryEvents) Create(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.events[e.ID] = cloneEvent(e)
	return nil
}

func (r *memoryEvents) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return cloneEvent(e), nil
}

func (r *memoryEvents) List(_ context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return r.collect(func(e *domain.Event) bool {
		if filter.Kind != "" && e.Kind != filter.Kind {
			return false
		}
		return filter.ClubID == nil || e.ClubID == *filter.ClubID
	}), nil
}

func (r *memoryEvents) ListByMember(_ context.Context, userID string) ([]*domain.Event, error) {
	return r.collect(func(e *domain.Event) bool {
		return e.HasMember(userID)
	}), nil
}

func (r *memoryEvents) collect(match func(*domain.Event) bool) []*domain.Event {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Event, 0)
	for _, e := range r.s.events {
		if match(e) {
			res = append(res, cloneEvent(e))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].StartTime.Equal(res[j].StartTime) {
			return res[i].ID < res[j].ID
		}
		return res[i].StartTime.Before(res[j].StartTime)
	})
	return res
}

func (r *memoryEvents) Update(_ context.Context, e *domain.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.events[e.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	updated := cloneEvent(e)
	// membership only changes through MutateMembers
	updated.MemberIDs = stored.MemberIDs
	r.s.events[e.ID] = updated
	return nil
}

func (r *memoryEvents) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.s.events, id)
	return nil
}

func (r *memoryEvents) MutateMembers(_ context.Context, id string, fn ports.MemberMutation) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	working := cloneEvent(stored)
	if err := fn(working); err != nil {
		return nil, err
	}
	r.s.events[id] = working
	return cloneEvent(working), nil
}

type memoryUsers struct{ s *MemoryStore }

func (r *memoryUsers) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkUnique(u); err != nil {
		return err
	}
	r.s.users[u.ID] = cloneUser(u)
	return nil
}

// checkUnique must be called with the write lock held.
func (r *memoryUsers) checkUnique(u *domain.User) error {
	for _, other := range r.s.users {
		if other.ID == u.ID {
			continue
		}
		if other.Username == u.Username {
			return domain.ErrUsernameTaken
		}
		if other.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	return nil
}

func (r *memoryUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *memoryUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *memoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *memoryUsers) find(match func(*domain.User) bool) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUsers) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		res = append(res, cloneUser(u))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Username < res[j].Username })
	return res, nil
}

func (r *memoryUsers) Update(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	if err := r.checkUnique(u); err != nil {
		return err
	}
	r.s.users[u.ID] = cloneUser(u)
	return nil
}
