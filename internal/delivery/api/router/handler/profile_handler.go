package handler

import (
	"net/http"

	"icebreaker/internal/delivery/api/response"
	"icebreaker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile returns the profile of the user in the path.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.uc.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetCurrentProfile returns the profile of the current user.
func (h *ProfileHandler) GetCurrentProfile(c echo.Context) error {
	profile, err := h.uc.GetCurrentProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}
