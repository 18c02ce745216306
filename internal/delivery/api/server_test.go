package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"icebreaker/config"
	"icebreaker/internal/delivery/api/router"
	"icebreaker/internal/delivery/api/router/handler"
	deliverycontext "icebreaker/internal/delivery/context"
	"icebreaker/internal/domain/entity"
	"icebreaker/internal/infra/persistence/memory"
	"icebreaker/internal/infra/qrcode"
	mockService "icebreaker/internal/mocks/service"
	"icebreaker/internal/usecase/impl"
	"icebreaker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1K"
	v := validation.New()

	repo, err := memory.NewActivityStore(memory.ActivityStoreParams{Logger: logger, Dataset: &entity.Dataset{}})
	require.NoError(t, err)
	feed, err := impl.NewFeedService(impl.FeedServiceParams{Repo: repo, Config: cfg, Logger: logger})
	require.NoError(t, err)

	routes := router.RouterParams{
		FeedHandler:        handler.NewFeedHandler(feed),
		IcebreakerHandler:  handler.NewIcebreakerHandler(impl.NewIcebreakerService(impl.IcebreakerServiceParams{Repo: repo, Validator: v, Logger: logger})),
		EngagementHandler:  handler.NewEngagementHandler(impl.NewEngagementService(impl.EngagementServiceParams{Repo: repo, Validator: v, Logger: logger})),
		LeaderboardHandler: handler.NewLeaderboardHandler(impl.NewLeaderboardService(impl.LeaderboardServiceParams{Repo: repo, Config: cfg})),
		ProfileHandler:     handler.NewProfileHandler(impl.NewProfileService(impl.ProfileServiceParams{Repo: repo, Logger: logger})),
		SuggestionHandler: handler.NewSuggestionHandler(impl.NewSuggestionService(impl.SuggestionServiceParams{
			Suggester: mockService.NewMockTopicSuggester(t),
			Validator: v,
			Logger:    logger,
		})),
		InviteHandler: handler.NewInviteHandler(impl.NewInviteService(impl.InviteServiceParams{
			Repo:      repo,
			Codes:     qrcode.NewQRCodeService(cfg),
			Validator: v,
			Logger:    logger,
		})),
	}

	return NewEcho(cfg, logger, v, routes)
}

func TestNewEcho_HealthCarriesRequestID(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body struct {
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-123", body.Meta.RequestID)
}

func TestNewEcho_ErrorsUseEnvelope(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "unknown route", method: http.MethodGet, target: "/api/v1/nothing", wantStatus: http.StatusNotFound, wantCode: "HTTP_ERROR"},
		{name: "body too large", method: http.MethodPost, target: "/api/v1/icebreakers/I1/entries", body: `{"text":"` + strings.Repeat("a", 2048) + `"}`, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "HTTP_ERROR"},
		{name: "no current user", method: http.MethodGet, target: "/api/v1/profile", wantStatus: http.StatusNotFound, wantCode: "USER_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reader io.Reader
			if tt.body != "" {
				reader = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, reader)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestNewEcho_CORSPreflight(t *testing.T) {
	e := newTestEcho(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/feed", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, deliverycontext.HeaderXTimezone)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), deliverycontext.HeaderXTimezone)
}
