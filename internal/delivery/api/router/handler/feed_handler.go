package handler

import (
	"net/http"

	"icebreaker/internal/delivery/api/response"
	deliverycontext "icebreaker/internal/delivery/context"
	domainerrors "icebreaker/internal/domain/errors"
	"icebreaker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedHandler holds dependencies for the home feed handler.
type FeedHandler struct {
	uc usecase.FeedUsecase
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(uc usecase.FeedUsecase) *FeedHandler {
	return &FeedHandler{uc: uc}
}

// GetFeed returns icebreakers grouped by month in the viewer's timezone.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	loc, err := deliverycontext.GetViewerLocation(c)
	if err != nil {
		return domainerrors.NewValidationError("Unknown timezone. Use an IANA name such as Europe/Berlin.")
	}

	feed, err := h.uc.GetFeed(c.Request().Context(), loc)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feed)
}
