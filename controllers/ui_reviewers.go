package controllers

import (
	"log"
	"net/http"

	"review-requester/config"
	"review-requester/metrics"
	"review-requester/services"
	"review-requester/utils"

	"github.com/gin-gonic/gin"
)

// renderError shows the error page with the status derived from err.
func renderError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		message = "Something went wrong. Please try again."
	}
	c.HTML(status, "error.html", gin.H{
		"title":   http.StatusText(status),
		"status":  status,
		"message": message,
	})
}

func renderBadRequest(c *gin.Context, message string) {
	c.HTML(http.StatusBadRequest, "error.html", gin.H{
		"title":   http.StatusText(http.StatusBadRequest),
		"status":  http.StatusBadRequest,
		"message": message,
	})
}

// GET /?language=<id>&sort=<column>&order=asc|desc
func (h *Handlers) ReviewerList(c *gin.Context) {
	languageID, err := utils.ParseOptionalID(c.Query("language"))
	if err != nil {
		renderBadRequest(c, err.Error())
		return
	}
	sortKey, order := services.NormalizeSort(c.Query("sort"), c.Query("order"))

	ctx := c.Request.Context()
	reviewers, err := h.Reviewers.List(ctx, services.ReviewerFilter{
		LanguageID: languageID,
		Sort:       sortKey,
		Order:      order,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	languages, err := h.Languages.List(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "reviewers.html", gin.H{
		"title":       "Reviewers",
		"reviewers":   reviewers,
		"languages":   languages,
		"language_id": languageID,
		"sort":        sortKey,
		"order":       order,
	})
}

// POST /submit records a review request per checked reviewer and hands the
// addresses to the user's mail client.
func (h *Handlers) SubmitReview(c *gin.Context) {
	reviewerIDs, err := utils.ParseIDs(c.PostFormArray("check"))
	if err != nil {
		renderBadRequest(c, err.Error())
		return
	}
	languageID, err := utils.ParseOptionalID(c.PostForm("language"))
	if err != nil {
		renderBadRequest(c, err.Error())
		return
	}

	submission, err := h.Reviews.Submit(c.Request.Context(), reviewerIDs, languageID)
	if err != nil {
		renderError(c, err)
		return
	}

	metrics.RecordReviewRequests("ui", len(submission.Requests))

	h.Notifier.Dispatch(submission)

	c.Redirect(http.StatusFound, utils.MailtoLink(submission.Emails(), config.ReviewMailSubject))
}
