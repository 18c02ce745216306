package handler

import (
	"net/http"

	"icebreaker/internal/delivery/api/response"
	"icebreaker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EngagementHandler holds dependencies for like and comment handlers.
type EngagementHandler struct {
	uc usecase.EngagementUsecase
}

// NewEngagementHandler is the constructor for EngagementHandler, injected by Fx.
func NewEngagementHandler(uc usecase.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{uc: uc}
}

// LikeEntry adds one like to the entry in the path.
func (h *EngagementHandler) LikeEntry(c echo.Context) error {
	entry, err := h.uc.LikeEntry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// UnlikeEntry takes one like back from the entry in the path.
func (h *EngagementHandler) UnlikeEntry(c echo.Context) error {
	entry, err := h.uc.UnlikeEntry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// AddComment comments on the entry in the path.
func (h *EngagementHandler) AddComment(c echo.Context) error {
	var input usecase.AddCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.uc.AddComment(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment)
}
