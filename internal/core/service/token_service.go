package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

const (
	defaultAccessTTL  = 30 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenService issues and verifies signed access and refresh tokens. Access
// and refresh tokens are signed with separate secrets so one kind can never
// pass verification as the other. The service holds no state beyond its
// configuration; validity is purely signature + expiry.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccessToken returns a short-lived HS256 token with sub = clientID.
func (s *TokenService) IssueAccessToken(clientID int64) (string, error) {
	return s.sign(clientID, s.accessSecret, s.accessTTL)
}

// IssueRefreshToken returns a long-lived token signed with the refresh secret.
func (s *TokenService) IssueRefreshToken(clientID int64) (string, error) {
	return s.sign(clientID, s.refreshSecret, s.refreshTTL)
}

// VerifyAccessToken validates an access token and returns the client id it
// was issued for. Returns domain.ErrTokenExpired when the embedded expiry is
// past and domain.ErrInvalidToken for any other defect.
func (s *TokenService) VerifyAccessToken(token string) (int64, error) {
	return s.verify(token, s.accessSecret)
}

// VerifyRefreshToken validates a refresh token against the refresh secret.
func (s *TokenService) VerifyRefreshToken(token string) (int64, error) {
	return s.verify(token, s.refreshSecret)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	clientID, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	return s.IssueAccessToken(clientID)
}

func (s *TokenService) sign(clientID int64, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(clientID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func (s *TokenService) verify(token string, secret []byte) (int64, error) {
	claims := jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.ErrTokenExpired
		}
		return 0, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return 0, domain.ErrInvalidToken
	}

	clientID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}
	return clientID, nil
}
