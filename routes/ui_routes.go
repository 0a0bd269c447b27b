package routes

import (
	"review-requester/controllers"

	"github.com/gin-gonic/gin"
)

// SetupUIRoutes mounts the server-rendered pages.
func SetupUIRoutes(router *gin.Engine, h *controllers.Handlers) {
	router.GET("/", h.ReviewerList)
	router.POST("/submit", h.SubmitReview)

	manage := router.Group("/manage")
	{
		manage.GET("/:id", h.EditReviewerForm)
		manage.POST("/edit_reviewer/:id", h.UpdateReviewer)
		manage.GET("/delete_reviewer/:id", h.DeleteReviewer)
		manage.GET("/add_reviewer", h.AddReviewerForm)
		manage.POST("/do_add", h.AddReviewer)
	}

	leaderboard := router.Group("/leaderboard")
	{
		leaderboard.GET("/reviewer_history/:id", h.ReviewerHistory)
		leaderboard.GET("/language_totals", h.LanguageTotals)
		leaderboard.GET("/language_history/:id", h.LanguageHistory)
		leaderboard.GET("/reviewer_totals", h.ReviewerTotals)
	}
}
