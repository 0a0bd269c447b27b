package routes

import (
	"net/http"

	"review-requester/controllers"
	"review-requester/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes mounts the JSON API under /api and the UI pages at the root.
func SetupRoutes(router *gin.Engine, h *controllers.Handlers, db *gorm.DB, apiSecret string) {
	SetupAPIRoutes(router, h, db, apiSecret)
	SetupUIRoutes(router, h)
}

// SetupAPIRoutes mounts the REST API. Writes require a bearer token when apiSecret is set.
func SetupAPIRoutes(router *gin.Engine, h *controllers.Handlers, db *gorm.DB, apiSecret string) {
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"success": false,
					"error":   "database unavailable",
				})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Review Requester API is running",
			})
		})

		write := middleware.APITokenAuth(apiSecret)

		reviewers := api.Group("/reviewers")
		{
			reviewers.GET("/", h.APIListReviewers)
			reviewers.POST("/", write, h.APICreateReviewer)
			reviewers.GET("/:id", h.APIGetReviewer)
			reviewers.PUT("/:id", write, h.APIUpdateReviewer)
			reviewers.DELETE("/:id", write, h.APIDeleteReviewer)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("/", h.APIListReviews)
			reviews.POST("/", write, h.APICreateReview)
		}

		languages := api.Group("/languages")
		{
			languages.GET("/", h.APIListLanguages)
			languages.POST("/", write, h.APICreateLanguage)
		}
	}
}
