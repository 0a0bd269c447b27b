package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"review-requester/services"

	"github.com/gin-gonic/gin"
)

// Handlers serves both the JSON API and the server-rendered UI over the same services.
type Handlers struct {
	Reviewers    *services.ReviewerService
	Languages    *services.LanguageService
	Reviews      *services.ReviewService
	Leaderboards *services.LeaderboardService
	Notifier     *services.ReviewNotifier
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error envelope. Internal errors are logged and
// replaced by a generic message.
func respondError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %s: %v", c.Request.Method, c.FullPath(), fallback, err)
		message = fallback
	}
	c.JSON(status, gin.H{"success": false, "error": message})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryID parses an optional positive integer query parameter; absent means 0.
func queryID(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
