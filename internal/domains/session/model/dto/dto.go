package dto

import (
	"time"

	"github.com/google/uuid"

	"localtime/internal/domains/session/model"
)

type RegisterSessionRequest struct {
	// Timezone is whatever the browser reported, typically
	// Intl.DateTimeFormat().resolvedOptions().timeZone. Empty means the
	// capability query was unsupported or scripting never ran.
	Timezone  string `json:"timezone" validate:"omitempty,max=64"`
	UserAgent string `json:"user_agent" validate:"omitempty,max=255"`
}

func (r *RegisterSessionRequest) ToModel() model.Session {
	return model.Session{
		ID:        uuid.NewString(),
		Timezone:  r.Timezone,
		UserAgent: r.UserAgent,
		CreatedAt: time.Now().UTC(),
	}
}

type SessionResponse struct {
	ID        string    `json:"id"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *SessionResponse) FromModel(model model.Session) {
	r.ID = model.ID
	r.Timezone = model.Timezone
	r.CreatedAt = model.CreatedAt
}
