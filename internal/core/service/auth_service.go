package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sparkmeet/dating-api/internal/api/metrics"
	"github.com/sparkmeet/dating-api/internal/core/domain"
	"github.com/sparkmeet/dating-api/internal/core/ports"
)

// AuthService implements registration, login, and token refresh.
type AuthService struct {
	repo    ports.ClientRepository
	tokens  *TokenService
	locator ports.Geolocator
	logger  zerolog.Logger
}

func NewAuthService(repo ports.ClientRepository, tokens *TokenService, locator ports.Geolocator, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, locator: locator, logger: logger}
}

// Register creates a new client account. The email must be unused, the
// password is stored only as a bcrypt hash, and the caller's coordinates are
// resolved from their IP on a best-effort basis.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Client, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrClientNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Gender:       input.Gender,
		Email:        input.Email,
		PasswordHash: string(hash),
		Avatar:       input.AvatarURL,
		Location:     s.resolveLocation(ctx, input.ClientIP),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	metrics.ClientsRegisteredTotal.Inc()
	s.logger.Info().Int64("client_id", created.ID).Msg("client registered")
	return created, nil
}

// Login verifies the credentials and returns an access + refresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	client, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.tokens.IssueAccessToken(client.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(client.ID)
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	return s.tokens.Refresh(refreshToken)
}

// resolveLocation looks up the client's coordinates by IP. Any failure leaves
// the location unset; registration never fails on geolocation.
func (s *AuthService) resolveLocation(ctx context.Context, ip string) *domain.Location {
	if ip == "" || s.locator == nil {
		return nil
	}
	loc, err := s.locator.Locate(ctx, ip)
	if err != nil {
		s.logger.Warn().Err(err).Str("ip", ip).Msg("geolocation lookup failed")
		return nil
	}
	return loc
}
