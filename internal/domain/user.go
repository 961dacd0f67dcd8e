package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	SkillLevel     string    `json:"skill_level"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserProfile is a user together with the events they are registered for.
type UserProfile struct {
	User                  User     `json:"user"`
	RegisteredTournaments []string `json:"registered_tournaments"`
	RegisteredTrainings   []string `json:"registered_trainings"`
}

type UserInput struct {
	Username       string
	Email          string
	FirstName      string
	LastName       string
	SkillLevel     string
	TelegramChatID *int64
}
