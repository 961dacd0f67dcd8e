package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Registry admits users to events and withdraws them, keeping every member
// set free of duplicates and within its capacity.
type Registry struct {
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.RegistrationNotifier
	logger    logger.Logger
}

func NewRegistry(
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.RegistrationNotifier,
	logger logger.Logger,
) *Registry {
	return &Registry{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Admit registers userID for eventID. When kind is not empty the event must
// be of that kind.
func (r *Registry) Admit(ctx context.Context, kind domain.EventKind, eventID, userID string) error {
	user, err := r.lookup(ctx, kind, eventID, userID)
	if err != nil {
		return err
	}

	event, err := r.eventRepo.MutateMembers(ctx, eventID, func(e *domain.Event) error {
		return e.Admit(userID)
	})
	if err != nil {
		return fmt.Errorf("admit: %w", err)
	}

	r.logger.Info("user admitted",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("members", len(event.MemberIDs)),
	)

	go r.notifier.NotifyAdmitted(context.WithoutCancel(ctx), user, event)

	return nil
}

func (r *Registry) Withdraw(ctx context.Context, kind domain.EventKind, eventID, userID string) error {
	user, err := r.lookup(ctx, kind, eventID, userID)
	if err != nil {
		return err
	}

	event, err := r.eventRepo.MutateMembers(ctx, eventID, func(e *domain.Event) error {
		return e.Withdraw(userID)
	})
	if err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}

	r.logger.Info("user withdrawn",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("members", len(event.MemberIDs)),
	)

	go r.notifier.NotifyWithdrawn(context.WithoutCancel(ctx), user, event)

	return nil
}

// lookup checks that both the event and the user exist, event first.
func (r *Registry) lookup(ctx context.Context, kind domain.EventKind, eventID, userID string) (*domain.User, error) {
	event, err := r.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if kind != "" && event.Kind != kind {
		return nil, fmt.Errorf("check event: %w", domain.ErrEventNotFound)
	}

	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	return user, nil
}
