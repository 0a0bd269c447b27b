package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"review-requester/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("reviewer 3: %w", services.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("email taken: %w", services.ErrConflict), http.StatusConflict},
		{fmt.Errorf("no reviewers: %w", services.ErrBadRequest), http.StatusBadRequest},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/reviewers/", nil)

	respondError(c, errors.New("dial tcp: connection refused"), "failed to fetch reviewers")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"failed to fetch reviewers"}`, w.Body.String())
}

func TestPathAndQueryIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}, {Key: "bad", Value: "-1"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/?reviewer_id=7&language_id=x", nil)

	id, ok := pathID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = pathID(c, "bad")
	assert.False(t, ok)

	id, ok = queryID(c, "reviewer_id")
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	id, ok = queryID(c, "missing")
	assert.True(t, ok)
	assert.Zero(t, id)

	_, ok = queryID(c, "language_id")
	assert.False(t, ok)
}
