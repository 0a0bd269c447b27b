package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /leaderboard/reviewer_history/:id
func (h *Handlers) ReviewerHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		renderBadRequest(c, "invalid reviewer id")
		return
	}

	reviewer, entries, err := h.Leaderboards.ReviewerHistory(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "reviewer_history.html", gin.H{
		"title":    "History for " + reviewer.FullName(),
		"reviewer": reviewer,
		"entries":  entries,
	})
}

// GET /leaderboard/language_totals
func (h *Handlers) LanguageTotals(c *gin.Context) {
	totals, err := h.Leaderboards.LanguageTotals(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "language_totals.html", gin.H{
		"title":  "Language Leaderboard",
		"totals": totals,
	})
}

// GET /leaderboard/language_history/:id
func (h *Handlers) LanguageHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		renderBadRequest(c, "invalid language id")
		return
	}

	language, entries, err := h.Leaderboards.LanguageHistory(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "language_history.html", gin.H{
		"title":    language.Name + " History",
		"language": language,
		"entries":  entries,
	})
}

// GET /leaderboard/reviewer_totals
func (h *Handlers) ReviewerTotals(c *gin.Context) {
	totals, err := h.Leaderboards.ReviewerTotals(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "reviewer_totals.html", gin.H{
		"title":  "Reviewer Leaderboard",
		"totals": totals,
	})
}
