// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"icebreaker/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FeedHandler        *handler.FeedHandler
	IcebreakerHandler  *handler.IcebreakerHandler
	EngagementHandler  *handler.EngagementHandler
	LeaderboardHandler *handler.LeaderboardHandler
	ProfileHandler     *handler.ProfileHandler
	SuggestionHandler  *handler.SuggestionHandler
	InviteHandler      *handler.InviteHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	feedHandler        *handler.FeedHandler
	icebreakerHandler  *handler.IcebreakerHandler
	engagementHandler  *handler.EngagementHandler
	leaderboardHandler *handler.LeaderboardHandler
	profileHandler     *handler.ProfileHandler
	suggestionHandler  *handler.SuggestionHandler
	inviteHandler      *handler.InviteHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		feedHandler:        params.FeedHandler,
		icebreakerHandler:  params.IcebreakerHandler,
		engagementHandler:  params.EngagementHandler,
		leaderboardHandler: params.LeaderboardHandler,
		profileHandler:     params.ProfileHandler,
		suggestionHandler:  params.SuggestionHandler,
		inviteHandler:      params.InviteHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.GET("/feed", r.feedHandler.GetFeed)
	apiV1.GET("/leaderboard", r.leaderboardHandler.GetLeaderboard)
	apiV1.POST("/suggestions", r.suggestionHandler.SuggestTopic)
	apiV1.POST("/invites/resolve", r.inviteHandler.ResolveInvite)

	icebreakersGroup := apiV1.Group("/icebreakers")
	{
		icebreakersGroup.GET("", r.icebreakerHandler.ListIcebreakers)
		icebreakersGroup.POST("", r.icebreakerHandler.Submit)
		icebreakersGroup.GET("/:id", r.icebreakerHandler.GetIcebreaker)
		icebreakersGroup.POST("/:id/entries", r.icebreakerHandler.AddEntry)
		icebreakersGroup.GET("/:id/qr", r.inviteHandler.GetInviteQR)
	}

	entriesGroup := apiV1.Group("/entries")
	{
		entriesGroup.POST("/:id/likes", r.engagementHandler.LikeEntry)
		entriesGroup.DELETE("/:id/likes", r.engagementHandler.UnlikeEntry)
		entriesGroup.POST("/:id/comments", r.engagementHandler.AddComment)
	}

	// Profile routes; there is no sign-in, /profile resolves the current user
	apiV1.GET("/profile", r.profileHandler.GetCurrentProfile)
	apiV1.GET("/users/:id/profile", r.profileHandler.GetProfile)
}
