package service

import (
	"github.com/gin-gonic/gin"

	"github.com/wayfarer-app/wayfarer/app/core"
	v1 "github.com/wayfarer-app/wayfarer/app/logic/v1"
	"github.com/wayfarer-app/wayfarer/app/response"
	"github.com/wayfarer-app/wayfarer/cmd/service/handler"
	"github.com/wayfarer-app/wayfarer/cmd/service/middleware"
	"github.com/wayfarer-app/wayfarer/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		}, opts...)
	}
}

func GetUserLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, key, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			return key + ":" + token.User
		}, opts...)
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.Use(middleware.I18n(), response.NewResponse(), middleware.AcceptLanguage())
	s.Engine.Use(middleware.Cors, middleware.Metrics(s.Core))

	s.Engine.GET("/metrics", metrics.Handler())

	apiV1 := s.Engine.Group("/api/v1")
	{
		// public share-link surface, anonymous allowed where noted
		share := apiV1.Group("/share/:token")
		{
			share.GET("", middleware.OptionalAuthorization(s.Core), ipLimit("share_view"), s.GetSharedTripByToken)
			share.GET("/comments", middleware.OptionalAuthorization(s.Core), ipLimit("share_comments"), s.ListSharedTripComments)
			share.POST("/like", middleware.Authorization(s.Core), userLimit("share_like"), s.LikeSharedTrip)
			share.POST("/comment", middleware.Authorization(s.Core), userLimit("share_comment"), s.CommentSharedTrip)
		}

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		sharing := authed.Group("/sharing")
		{
			sharing.GET("/:tripid", s.GetSharingOverview)
			sharing.PUT("/:tripid", userLimit("modify_sharing"), s.UpdateSharingSettings)
			sharing.POST("/:tripid/share", userLimit("share_invite"), s.ShareTripWithUser)
		}

		trips := authed.Group("/trips")
		{
			trips.GET("/:tripid", s.GetTrip)
			trips.POST("/:tripid/clone", userLimit("clone_trip"), s.CloneTrip)
		}

		authed.POST("/shares/claim", s.ClaimShares)
	}
}
