package domain

import (
	"errors"
	"time"
)

// Gender is the enumerated gender of a client profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is one of the supported gender values.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

var ErrUnauthenticated = errors.New("authentication required")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrClientNotFound = errors.New("client not found")
var ErrTargetNotFound = errors.New("target client not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrRateLimited = errors.New("daily like limit reached, try again later")
var ErrInvalidFilter = errors.New("requester coordinates are not set")

// Location is a resolved geographic position. Clients registered from an
// address the geolocation provider cannot resolve have no Location at all.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Client is a registered member of the service.
type Client struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Gender       Gender    `json:"gender"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	Location     *Location `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName is the name used when presenting this client to another member.
func (c *Client) DisplayName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// ClientFilter narrows a profile listing. Zero values mean "no constraint".
// Name filters are case-insensitive substring matches. DistanceKm requires the
// requesting client to have a resolved Location.
type ClientFilter struct {
	Gender       Gender
	FirstName    string
	LastName     string
	CreatedAfter time.Time
	DistanceKm   float64
}
