package ports

import (
	"context"

	"github.com/stpnv0/TennisHub/internal/domain"
)

// MemberMutation changes the member set of a locked event. Returning an
// error aborts the change.
type MemberMutation func(e *domain.Event) error

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	ListByMember(ctx context.Context, userID string) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	// MutateMembers runs fn on the event while no other writer can change
	// its member set, then persists whatever fn did to MemberIDs.
	MutateMembers(ctx context.Context, id string, fn MemberMutation) (*domain.Event, error)
}
