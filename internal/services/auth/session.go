package auth

import (
	"time"

	"motoradmin/internal/models"
	"motoradmin/internal/services/dashboard"
)

// Session is the operator's server side state: who logged in, what the
// tables are showing and any action awaiting confirmation.
type Session struct {
	ID           string               `json:"id"`
	Email        string               `json:"email"`
	CreatedAt    time.Time            `json:"created_at"`
	View         dashboard.ViewState  `json:"view"`
	Confirmation *models.Confirmation `json:"confirmation,omitempty"`
}

func NewSession(id, email string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Email:     email,
		CreatedAt: now,
		View:      dashboard.NewViewState(),
	}
}
