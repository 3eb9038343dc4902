package handler

import (
	"time"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Gender    string `json:"gender" validate:"required,oneof=male female"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	AvatarURL string `json:"avatar_url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type clientResponse struct {
	ID        int64             `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	Gender    string            `json:"gender"`
	Email     string            `json:"email"`
	Avatar    string            `json:"avatar,omitempty"`
	Location  *locationResponse `json:"location,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type matchResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	TargetName  string `json:"target_name,omitempty"`
	TargetEmail string `json:"target_email,omitempty"`
}

type avatarUploadResponse struct {
	AvatarURL string `json:"avatar_url"`
}

func toClientResponse(c *domain.Client) clientResponse {
	resp := clientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Gender:    string(c.Gender),
		Email:     c.Email,
		Avatar:    c.Avatar,
		CreatedAt: c.CreatedAt,
	}
	if c.Location != nil {
		resp.Location = &locationResponse{Latitude: c.Location.Latitude, Longitude: c.Location.Longitude}
	}
	return resp
}
