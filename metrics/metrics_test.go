package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordReviewRequests(t *testing.T) {
	before := testutil.ToFloat64(ReviewRequestsTotal.WithLabelValues("ui"))

	RecordReviewRequests("ui", 3)
	RecordReviewRequests("ui", 0)

	assert.Equal(t, before+3, testutil.ToFloat64(ReviewRequestsTotal.WithLabelValues("ui")))
}

func TestObserveHTTPUnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

	ObserveHTTP("GET", "", 404, 2*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
