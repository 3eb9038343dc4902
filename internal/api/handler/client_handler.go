package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sparkmeet/dating-api/internal/core/domain"
	"github.com/sparkmeet/dating-api/internal/core/ports"
)

// ClientHandler serves profile listings and like actions.
type ClientHandler struct {
	clients ports.ClientService
	matches ports.MatchService
}

func NewClientHandler(clients ports.ClientService, matches ports.MatchService) *ClientHandler {
	return &ClientHandler{clients: clients, matches: matches}
}

// List returns client profiles matching the query filters.
//
// @Summary      List client profiles
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        gender      query  string  false  "Filter by gender (male|female)"
// @Param        first_name  query  string  false  "First name substring, case-insensitive"
// @Param        last_name   query  string  false  "Last name substring, case-insensitive"
// @Param        distance    query  number  false  "Maximum distance from the requester in km"
// @Param        created_at  query  string  false  "Only clients registered at or after this RFC3339 time"
// @Success      200  {array}   clientResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/list [get]
func (h *ClientHandler) List(c echo.Context) error {
	requester, err := ctxClient(c)
	if err != nil {
		return err
	}

	filter := domain.ClientFilter{
		Gender:    domain.Gender(c.QueryParam("gender")),
		FirstName: c.QueryParam("first_name"),
		LastName:  c.QueryParam("last_name"),
	}
	if raw := c.QueryParam("distance"); raw != "" {
		distance, err := strconv.ParseFloat(raw, 64)
		if err != nil || distance < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid distance")
		}
		filter.DistanceKm = distance
	}
	if raw := c.QueryParam("created_at"); raw != "" {
		createdAfter, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_at, expected RFC3339")
		}
		filter.CreatedAfter = createdAfter
	}

	clients, err := h.clients.List(c.Request().Context(), requester, filter)
	if err != nil {
		return err
	}

	out := make([]clientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toClientResponse(&clients[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Match records the requester's like of the target client.
//
// @Summary      Like another client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        target_client_id  path  integer  true  "Target client id"
// @Success      200  {object}  matchResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      429  {object}  errorResponse
// @Router       /api/clients/{target_client_id}/match [post]
func (h *ClientHandler) Match(c echo.Context) error {
	actor, err := ctxClient(c)
	if err != nil {
		return err
	}

	targetID, err := strconv.ParseInt(c.Param("target_client_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid target client id")
	}

	result, err := h.matches.Like(c.Request().Context(), actor, targetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, matchResponse{
		Status:      result.Status,
		Message:     result.Message,
		TargetName:  result.TargetName,
		TargetEmail: result.TargetEmail,
	})
}
