package handler

import (
	"net/http"

	"icebreaker/internal/delivery/api/response"
	"icebreaker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type leaderboardQuery struct {
	Limit int `query:"limit" json:"limit" validate:"omitempty,min=1,max=100" message:"Limit must be between 1 and 100."`
}

// LeaderboardHandler holds dependencies for the leaderboard handler.
type LeaderboardHandler struct {
	uc usecase.LeaderboardUsecase
}

// NewLeaderboardHandler is the constructor for LeaderboardHandler, injected by Fx.
func NewLeaderboardHandler(uc usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc}
}

// GetLeaderboard returns the top users and top icebreakers.
func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	var query leaderboardQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid leaderboard query")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	board, err := h.uc.GetLeaderboard(c.Request().Context(), query.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, board)
}
