package ports

import (
	"context"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

// RegisterInput carries the validated fields of a registration request.
type RegisterInput struct {
	FirstName string
	LastName  string
	Gender    domain.Gender
	Email     string
	Password  string
	AvatarURL string
	// ClientIP is the remote address the registration arrived from, used for
	// best-effort geolocation. May be empty.
	ClientIP string
}

// TokenPair is what a successful login returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Client, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(refreshToken string) (string, error)
}
