package controllers

import (
	"net/http"
	"time"

	"review-requester/metrics"
	"review-requester/services"

	"github.com/gin-gonic/gin"
)

type reviewRequest struct {
	ReviewerID       int        `json:"reviewer_id" binding:"required,gt=0"`
	ReviewLanguageID int        `json:"review_language_id" binding:"required,gt=0"`
	ReviewDate       *time.Time `json:"review_date"`
}

// GET /api/reviews/?reviewer_id=1&language_id=2
func (h *Handlers) APIListReviews(c *gin.Context) {
	reviewerID, ok := queryID(c, "reviewer_id")
	if !ok {
		respondBadRequest(c, "invalid reviewer_id")
		return
	}
	languageID, ok := queryID(c, "language_id")
	if !ok {
		respondBadRequest(c, "invalid language_id")
		return
	}

	reviews, err := h.Reviews.List(c.Request.Context(), services.ReviewFilter{
		ReviewerID: reviewerID,
		LanguageID: languageID,
	})
	if err != nil {
		respondError(c, err, "failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviews})
}

// POST /api/reviews/
func (h *Handlers) APICreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	review, err := h.Reviews.Create(c.Request.Context(), services.ReviewInput{
		ReviewerID:       req.ReviewerID,
		ReviewLanguageID: req.ReviewLanguageID,
		ReviewDate:       req.ReviewDate,
	})
	if err != nil {
		respondError(c, err, "failed to create review")
		return
	}

	metrics.RecordReviewRequests("api", 1)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": review})
}
