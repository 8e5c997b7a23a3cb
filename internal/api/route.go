package api

import (
	"Craftstone/internal/api/middleware"
	"Craftstone/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		searchGroup := apiGroup.Group("/search")
		{
			searchGroup.POST("", group.SearchHandler.Search)
			searchGroup.GET("/autocomplete", group.AutocompleteHandler.Suggest)
		}

		feedGroup := apiGroup.Group("/feed")
		{
			feedGroup.Use(middleware.AuthMiddleware())
			{
				feedGroup.GET("", group.FeedHandler.GetFeed)
			}
		}

		resourceGroup := apiGroup.Group("/resources")
		{
			resourceGroup.GET("/creator/:creator_id", group.ResourceHandler.ListCreatorResources)

			authOptGroup := resourceGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/detail/:id", group.ResourceHandler.GetResource)
			}
		}

		activityGroup := apiGroup.Group("/activity")
		{
			activityGroup.Use(middleware.AuthMiddleware())
			{
				activityGroup.POST("", group.ActivityHandler.TrackActivity)
			}
		}

		followGroup := apiGroup.Group("/follows")
		{
			followGroup.Use(middleware.AuthMiddleware())
			{
				followGroup.GET("", group.FollowHandler.ListFollows)
				followGroup.POST("/:target_type/:target_id", group.FollowHandler.Follow)
				followGroup.DELETE("/:target_type/:target_id", group.FollowHandler.Unfollow)
			}
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.ListCategories)
			categoryGroup.GET("/:slug", group.CategoryHandler.GetCategory)
		}
	}

	return r
}
