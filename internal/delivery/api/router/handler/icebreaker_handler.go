package handler

import (
	"net/http"

	"icebreaker/internal/delivery/api/response"
	"icebreaker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IcebreakerHandler holds dependencies for icebreaker handlers.
type IcebreakerHandler struct {
	uc usecase.IcebreakerUsecase
}

// NewIcebreakerHandler is the constructor for IcebreakerHandler, injected by Fx.
func NewIcebreakerHandler(uc usecase.IcebreakerUsecase) *IcebreakerHandler {
	return &IcebreakerHandler{uc: uc}
}

// ListIcebreakers returns all icebreakers in collection order.
func (h *IcebreakerHandler) ListIcebreakers(c echo.Context) error {
	icebreakers, err := h.uc.ListIcebreakers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, icebreakers)
}

// GetIcebreaker returns one icebreaker with its entries.
func (h *IcebreakerHandler) GetIcebreaker(c echo.Context) error {
	icebreaker, err := h.uc.GetIcebreaker(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, icebreaker)
}

// Submit handles the create form: a new icebreaker with its first entry, or an entry for an existing one.
// Both store a new entry and respond 201; Created tells them apart.
func (h *IcebreakerHandler) Submit(c echo.Context) error {
	var input usecase.SubmitEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid icebreaker input")
	}

	output, err := h.uc.Submit(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// AddEntry posts an entry to the icebreaker in the path.
func (h *IcebreakerHandler) AddEntry(c echo.Context) error {
	var input usecase.AddEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}

	entry, err := h.uc.AddEntry(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry)
}
