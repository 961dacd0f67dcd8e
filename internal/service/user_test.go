package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/TennisHub/internal/domain"
	"github.com/stpnv0/TennisHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func userInput() domain.UserInput {
	return domain.UserInput{
		Username:   "alice",
		Email:      "alice@example.com",
		FirstName:  "Alice",
		SkillLevel: "ADVANCED",
	}
}

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil)

	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	input := userInput()
	input.TelegramChatID = &chatID

	user, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, &chatID, user.TelegramChatID)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_Invalid(t *testing.T) {
	svc := NewUserService(nil, nil)

	input := userInput()
	input.Username = "al"
	_, err := svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)

	input = userInput()
	input.Email = "not-an-email"
	_, err = svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil)

	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(&domain.User{ID: "u0"}, nil)

	_, err := svc.Create(context.Background(), userInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil)

	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{ID: "u0"}, nil)

	_, err := svc.Create(context.Background(), userInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil)

	repoErr := errors.New("db error")
	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, repoErr)

	_, err := svc.Create(context.Background(), userInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_GetProfile(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	svc := NewUserService(repo, eventRepo)

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	eventRepo.EXPECT().ListByMember(mock.Anything, "u1").Return([]*domain.Event{
		{ID: "t1", Kind: domain.EventKindTournament},
		{ID: "s1", Kind: domain.EventKindTraining},
		{ID: "t2", Kind: domain.EventKindTournament},
	}, nil)

	profile, err := svc.GetProfile(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, profile.RegisteredTournaments)
	assert.Equal(t, []string{"s1"}, profile.RegisteredTrainings)
}

func TestUserService_Update_SameValuesSkipUniquenessCheck(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil)

	existing := &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, existing).Return(nil)

	input := userInput()
	input.LastName = "Smith"
	user, err := svc.Update(context.Background(), "u1", input)

	require.NoError(t, err)
	assert.Equal(t, "Smith", user.LastName)
}

func TestUserService_Update_NewUsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil)

	existing := &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	repo.EXPECT().GetByID(mock.Anything, "u1").Return(existing, nil)
	repo.EXPECT().GetByUsername(mock.Anything, "bob").Return(&domain.User{ID: "u2"}, nil)

	input := userInput()
	input.Username = "bob"
	_, err := svc.Update(context.Background(), "u1", input)

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, nil)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Update(context.Background(), "missing", userInput())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
