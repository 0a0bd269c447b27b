package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type languageRequest struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/languages/
func (h *Handlers) APIListLanguages(c *gin.Context) {
	languages, err := h.Languages.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch languages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": languages})
}

// POST /api/languages/
func (h *Handlers) APICreateLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	language, err := h.Languages.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err, "failed to create language")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": language})
}
