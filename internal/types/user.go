package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitatrack/backend/internal/models"
)

// PublicUser is the allow-listed projection of a user returned to
// clients. The password hash is excluded by construction, not by
// stripping fields at serialization time.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPublicUser projects a stored user onto its public view.
func NewPublicUser(u *models.User) PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
