package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const maxNameLen = 100

type EventService struct {
	repo   ports.EventRepo
	clubs  ports.ClubGateway
	logger logger.Logger
}

func NewEventService(repo ports.EventRepo, clubs ports.ClubGateway, logger logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		clubs:  clubs,
		logger: logger,
	}
}

// Create validates the input, confirms with the club service that clubID
// exists and persists the event. Club service failures are returned with
// their original status so the API can answer with the same one.
func (s *EventService) Create(ctx context.Context, clubID int64, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Kind == "" {
		input.Kind = domain.EventKindTournament
	}
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown event kind %q", domain.ErrValidation, input.Kind)
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateWindow(input.StartTime, input.EndTime, input.Capacity); err != nil {
		return nil, err
	}

	club, err := s.clubs.GetClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("lookup club: %w", err)
	}
	if club == nil {
		return nil, domain.NewClubNotFound(clubID)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Kind:        input.Kind,
		Name:        input.Name,
		Description: input.Description,
		CoachName:   input.CoachName,
		ClubID:      clubID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Capacity:    input.Capacity,
		MemberIDs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("kind", string(event.Kind)),
		logger.Int64("club_id", clubID),
	)

	return event, nil
}

// Get returns the event with its club name. When kind is not empty the event
// must be of that kind.
func (s *EventService) Get(ctx context.Context, kind domain.EventKind, id string) (*domain.EventView, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if kind != "" && event.Kind != kind {
		return nil, domain.ErrEventNotFound
	}

	return &domain.EventView{
		Event:    *event,
		ClubName: s.clubName(ctx, event.ClubID),
	}, nil
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.EventView, error) {
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	names := make(map[int64]*string)
	res := make([]*domain.EventView, 0, len(events))
	for _, e := range events {
		name, ok := names[e.ClubID]
		if !ok {
			name = s.clubName(ctx, e.ClubID)
			names[e.ClubID] = name
		}
		res = append(res, &domain.EventView{Event: *e, ClubName: name})
	}

	return res, nil
}

// Update changes the descriptive fields of an event. Lowering the capacity
// below the current member count keeps every existing member.
func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.EventView, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateWindow(input.StartTime, input.EndTime, input.Capacity); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Name = input.Name
	event.Description = input.Description
	event.CoachName = input.CoachName
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Capacity = input.Capacity
	event.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return &domain.EventView{
		Event:    *event,
		ClubName: s.clubName(ctx, event.ClubID),
	}, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", id))
	return nil
}

// clubName is best effort: any failure yields nil instead of an error.
func (s *EventService) clubName(ctx context.Context, clubID int64) *string {
	club, err := s.clubs.GetClub(ctx, clubID)
	if err != nil {
		var remoteErr *domain.RemoteError
		status := 0
		if errors.As(err, &remoteErr) {
			status = remoteErr.StatusCode
		}
		s.logger.Warn("club name unavailable",
			logger.Int64("club_id", clubID),
			logger.Int("status", status),
			logger.String("error", err.Error()),
		)
		return nil
	}
	if club == nil {
		return nil
	}

	return &club.Name
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name must not exceed %d characters", domain.ErrValidation, maxNameLen)
	}
	return nil
}
