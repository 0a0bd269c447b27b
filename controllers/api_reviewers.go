package controllers

import (
	"net/http"

	"review-requester/services"
	"review-requester/utils"

	"github.com/gin-gonic/gin"
)

type reviewerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Languages []int  `json:"languages"`
}

func (r reviewerRequest) input() services.ReviewerInput {
	return services.ReviewerInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		LanguageIDs: r.Languages,
	}
}

// GET /api/reviewers/?language=1&sort=review_count&order=desc
func (h *Handlers) APIListReviewers(c *gin.Context) {
	languageID, err := utils.ParseOptionalID(c.Query("language"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	reviewers, err := h.Reviewers.List(c.Request.Context(), services.ReviewerFilter{
		LanguageID: languageID,
		Sort:       c.Query("sort"),
		Order:      c.Query("order"),
	})
	if err != nil {
		respondError(c, err, "failed to fetch reviewers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviewers})
}

// POST /api/reviewers/
func (h *Handlers) APICreateReviewer(c *gin.Context) {
	var req reviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	reviewer, err := h.Reviewers.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err, "failed to create reviewer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": reviewer})
}

// GET /api/reviewers/:id
func (h *Handlers) APIGetReviewer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondBadRequest(c, "invalid reviewer id")
		return
	}

	reviewer, err := h.Reviewers.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to fetch reviewer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviewer})
}

// PUT /api/reviewers/:id replaces names and the whole language set.
func (h *Handlers) APIUpdateReviewer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondBadRequest(c, "invalid reviewer id")
		return
	}

	var req reviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	reviewer, err := h.Reviewers.Update(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err, "failed to update reviewer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": reviewer})
}

// DELETE /api/reviewers/:id
func (h *Handlers) APIDeleteReviewer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondBadRequest(c, "invalid reviewer id")
		return
	}

	if err := h.Reviewers.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to delete reviewer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "reviewer deleted"})
}
