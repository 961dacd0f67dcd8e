package dto

import (
	"time"

	"github.com/stpnv0/TennisHub/internal/domain"
)

// Error labels are stable and safe to match on.
const (
	LabelInvalidInput      = "INVALID_INPUT"
	LabelNotFound          = "NOT_FOUND"
	LabelConflict          = "CONFLICT"
	LabelRemoteUnavailable = "REMOTE_UNAVAILABLE"
	LabelInternal          = "INTERNAL"
)

type EventResponse struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	CoachName   string   `json:"coach_name,omitempty"`
	ClubID      int64    `json:"club_id"`
	ClubName    *string  `json:"club_name"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Capacity    *int     `json:"capacity"`
	MemberIDs   []string `json:"member_ids"`
	MemberCount int      `json:"member_count"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	SkillLevel     string `json:"skill_level"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type UserProfileResponse struct {
	UserResponse
	RegisteredTournaments []string `json:"registered_tournaments"`
	RegisteredTrainings   []string `json:"registered_trainings"`
}

type ClubResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	CourtIDs []int64 `json:"court_ids"`
}

type RegistrationResponse struct {
	Status  string `json:"status"`
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
}

type ErrorResponse struct {
	Status  int               `json:"status"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func ToEventResponse(e *domain.Event, clubName *string) EventResponse {
	members := e.MemberIDs
	if members == nil {
		members = []string{}
	}
	return EventResponse{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Name:        e.Name,
		Description: e.Description,
		CoachName:   e.CoachName,
		ClubID:      e.ClubID,
		ClubName:    clubName,
		Start:       e.StartTime.Format(time.RFC3339),
		End:         e.EndTime.Format(time.RFC3339),
		Capacity:    e.Capacity,
		MemberIDs:   members,
		MemberCount: len(members),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventViewResponse(v *domain.EventView) EventResponse {
	return ToEventResponse(&v.Event, v.ClubName)
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		SkillLevel:     u.SkillLevel,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      u.UpdatedAt.Format(time.RFC3339),
	}
}

func ToUserProfileResponse(p *domain.UserProfile) UserProfileResponse {
	return UserProfileResponse{
		UserResponse:          ToUserResponse(&p.User),
		RegisteredTournaments: p.RegisteredTournaments,
		RegisteredTrainings:   p.RegisteredTrainings,
	}
}

func ToClubResponse(c *domain.Club) ClubResponse {
	courts := c.CourtIDs
	if courts == nil {
		courts = []int64{}
	}
	return ClubResponse{
		ID:       c.ID,
		Name:     c.Name,
		Address:  c.Address,
		CourtIDs: courts,
	}
}
