package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports"
)

type UserService struct {
	repo      ports.UserRepo
	eventRepo ports.EventRepo
}

func NewUserService(repo ports.UserRepo, eventRepo ports.EventRepo) *UserService {
	return &UserService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *UserService) Create(ctx context.Context, input domain.UserInput) (*domain.User, error) {
	if err := validateUser(input); err != nil {
		return nil, err
	}

	if err := s.ensureUsernameFree(ctx, input.Username); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       input.Username,
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		SkillLevel:     input.SkillLevel,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.UserProfile, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByMember(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list user events: %w", err)
	}

	profile := &domain.UserProfile{
		User:                  *user,
		RegisteredTournaments: []string{},
		RegisteredTrainings:   []string{},
	}
	for _, e := range events {
		switch e.Kind {
		case domain.EventKindTournament:
			profile.RegisteredTournaments = append(profile.RegisteredTournaments, e.ID)
		case domain.EventKindTraining:
			profile.RegisteredTrainings = append(profile.RegisteredTrainings, e.ID)
		}
	}

	return profile, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update replaces the profile fields. Uniqueness is only checked for values
// that actually change.
func (s *UserService) Update(ctx context.Context, id string, input domain.UserInput) (*domain.User, error) {
	if err := validateUser(input); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Username != input.Username {
		if err = s.ensureUsernameFree(ctx, input.Username); err != nil {
			return nil, err
		}
	}
	if user.Email != input.Email {
		if err = s.ensureEmailFree(ctx, input.Email); err != nil {
			return nil, err
		}
	}

	user.Username = input.Username
	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.SkillLevel = input.SkillLevel
	user.TelegramChatID = input.TelegramChatID
	user.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (s *UserService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, username)
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("check username: %w", err)
	}
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", domain.ErrEmailTaken, email)
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("check email: %w", err)
	}
}

func validateUser(input domain.UserInput) error {
	if len(input.Username) < 3 || len(input.Username) > 50 {
		return fmt.Errorf("%w: username must be between 3 and 50 characters", domain.ErrValidation)
	}
	if input.Email == "" || len(input.Email) > 100 {
		return fmt.Errorf("%w: email is required and must not exceed 100 characters", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return fmt.Errorf("%w: email should be valid", domain.ErrValidation)
	}
	return nil
}
