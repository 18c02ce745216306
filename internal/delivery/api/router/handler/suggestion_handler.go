package handler

import (
	"net/http"

	"icebreaker/internal/delivery/api/response"
	"icebreaker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuggestionHandler holds dependencies for the AI topic suggestion handler.
type SuggestionHandler struct {
	uc usecase.SuggestionUsecase
}

// NewSuggestionHandler is the constructor for SuggestionHandler, injected by Fx.
func NewSuggestionHandler(uc usecase.SuggestionUsecase) *SuggestionHandler {
	return &SuggestionHandler{uc: uc}
}

// SuggestTopic returns a polished topic and alternative headlines for the user's idea.
func (h *SuggestionHandler) SuggestTopic(c echo.Context) error {
	var input usecase.SuggestTopicInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestion input")
	}

	suggestion, err := h.uc.SuggestTopic(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestion)
}
