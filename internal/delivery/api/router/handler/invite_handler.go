package handler

import (
	"net/http"

	"icebreaker/internal/delivery/api/response"
	"icebreaker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InviteHandler holds dependencies for invite code handlers.
type InviteHandler struct {
	uc usecase.InviteUsecase
}

// NewInviteHandler is the constructor for InviteHandler, injected by Fx.
func NewInviteHandler(uc usecase.InviteUsecase) *InviteHandler {
	return &InviteHandler{uc: uc}
}

// GetInviteQR responds with the PNG invite code of the icebreaker in the path.
func (h *InviteHandler) GetInviteQR(c echo.Context) error {
	png, err := h.uc.GetInviteQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveInvite returns the icebreaker a scanned invite payload points at.
func (h *InviteHandler) ResolveInvite(c echo.Context) error {
	var input usecase.ResolveInviteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}

	icebreaker, err := h.uc.ResolveInvite(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, icebreaker)
}
