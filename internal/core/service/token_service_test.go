package service

import (
	"errors"
	"testing"
	"time"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, err := svc.IssueAccessToken(42)
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	clientID, err := svc.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken returned error: %v", err)
	}
	if clientID != 42 {
		t.Fatalf("expected client id 42, got %d", clientID)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	token, err := svc.IssueAccessToken(7)
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	if _, err := svc.VerifyAccessToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", "refresh-a", time.Hour, 24*time.Hour)
	verifier := NewTokenService("secret-b", "refresh-b", time.Hour, 24*time.Hour)

	token, err := issuer.IssueAccessToken(7)
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	if _, err := verifier.VerifyAccessToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	if _, err := svc.VerifyAccessToken("not.a.token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_AccessAndRefreshNotInterchangeable(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, err := svc.IssueAccessToken(3)
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}
	refresh, err := svc.IssueRefreshToken(3)
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}

	if _, err := svc.VerifyRefreshToken(access); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("access token passed refresh verification: %v", err)
	}
	if _, err := svc.VerifyAccessToken(refresh); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("refresh token passed access verification: %v", err)
	}
}

func TestTokenService_Refresh(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	refresh, err := svc.IssueRefreshToken(99)
	if err != nil {
		t.Fatalf("IssueRefreshToken returned error: %v", err)
	}

	access, err := svc.Refresh(refresh)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	clientID, err := svc.VerifyAccessToken(access)
	if err != nil {
		t.Fatalf("refreshed access token invalid: %v", err)
	}
	if clientID != 99 {
		t.Fatalf("expected client id 99, got %d", clientID)
	}
}

func TestTokenService_RefreshWithAccessToken(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, err := svc.IssueAccessToken(5)
	if err != nil {
		t.Fatalf("IssueAccessToken returned error: %v", err)
	}

	if _, err := svc.Refresh(access); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
