package dto

import (
	"time"

	"github.com/stpnv0/TennisHub/internal/domain"
)

type CreateEventRequest struct {
	Kind        string    `json:"kind"        binding:"omitempty,oneof=tournament training"`
	Name        string    `json:"name"        binding:"required,max=100"`
	Description string    `json:"description" binding:"max=500"`
	CoachName   string    `json:"coach_name"  binding:"max=100"`
	Start       time.Time `json:"start"       binding:"required"`
	End         time.Time `json:"end"         binding:"required"`
	Capacity    *int      `json:"capacity"    binding:"omitempty,min=1"`
}

func (r CreateEventRequest) ToInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Kind:        domain.EventKind(r.Kind),
		Name:        r.Name,
		Description: r.Description,
		CoachName:   r.CoachName,
		StartTime:   r.Start,
		EndTime:     r.End,
		Capacity:    r.Capacity,
	}
}

type UpdateEventRequest struct {
	Name        string    `json:"name"        binding:"required,max=100"`
	Description string    `json:"description" binding:"max=500"`
	CoachName   string    `json:"coach_name"  binding:"max=100"`
	Start       time.Time `json:"start"       binding:"required"`
	End         time.Time `json:"end"         binding:"required"`
	Capacity    *int      `json:"capacity"    binding:"omitempty,min=1"`
}

func (r UpdateEventRequest) ToInput() domain.UpdateEventInput {
	return domain.UpdateEventInput{
		Name:        r.Name,
		Description: r.Description,
		CoachName:   r.CoachName,
		StartTime:   r.Start,
		EndTime:     r.End,
		Capacity:    r.Capacity,
	}
}

type UserRequest struct {
	Username       string `json:"username"         binding:"required,min=3,max=50"`
	Email          string `json:"email"            binding:"required,email,max=100"`
	FirstName      string `json:"first_name"       binding:"max=50"`
	LastName       string `json:"last_name"        binding:"max=50"`
	SkillLevel     string `json:"skill_level"      binding:"max=20"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

func (r UserRequest) ToInput() domain.UserInput {
	return domain.UserInput{
		Username:       r.Username,
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		SkillLevel:     r.SkillLevel,
		TelegramChatID: r.TelegramChatID,
	}
}
