package controllers

import (
	"net/http"

	"review-requester/services"
	"review-requester/utils"

	"github.com/gin-gonic/gin"
)

func reviewerFormInput(c *gin.Context) (services.ReviewerInput, error) {
	languageIDs, err := utils.ParseIDs(c.PostFormArray("languages"))
	if err != nil {
		return services.ReviewerInput{}, err
	}
	return services.ReviewerInput{
		FirstName:   c.PostForm("first_name"),
		LastName:    c.PostForm("last_name"),
		LanguageIDs: languageIDs,
	}, nil
}

// GET /manage/:id
func (h *Handlers) EditReviewerForm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"title": "Not Found", "status": http.StatusNotFound, "message": "reviewer not found"})
		return
	}

	ctx := c.Request.Context()
	reviewer, err := h.Reviewers.Get(ctx, id)
	if err != nil {
		renderError(c, err)
		return
	}
	languages, err := h.Languages.List(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "edit_reviewer.html", gin.H{
		"title":     "Edit " + reviewer.FullName(),
		"reviewer":  reviewer,
		"languages": languages,
	})
}

// POST /manage/edit_reviewer/:id
func (h *Handlers) UpdateReviewer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		renderBadRequest(c, "invalid reviewer id")
		return
	}

	input, err := reviewerFormInput(c)
	if err != nil {
		renderBadRequest(c, err.Error())
		return
	}

	if _, err := h.Reviewers.Update(c.Request.Context(), id, input); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// GET /manage/delete_reviewer/:id
func (h *Handlers) DeleteReviewer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		renderBadRequest(c, "invalid reviewer id")
		return
	}

	if err := h.Reviewers.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// GET /manage/add_reviewer
func (h *Handlers) AddReviewerForm(c *gin.Context) {
	languages, err := h.Languages.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "add_reviewer.html", gin.H{
		"title":     "Add Reviewer",
		"languages": languages,
	})
}

// POST /manage/do_add
func (h *Handlers) AddReviewer(c *gin.Context) {
	input, err := reviewerFormInput(c)
	if err != nil {
		renderBadRequest(c, err.Error())
		return
	}

	if _, err := h.Reviewers.Create(c.Request.Context(), input); err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}
