package monitor

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(token, logPath string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterMonitorPage(r)
	RegisterLogsRoute(r, token, logPath)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestMonitorPage(t *testing.T) {
	w := get(newRouter("", ""), "/monitor")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/health")
}

func TestLogsRoute(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(logPath, []byte("line one\nline two\n"), 0o644))

	t.Run("disabled without token", func(t *testing.T) {
		w := get(newRouter("", logPath), "/logs?token=anything")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		w := get(newRouter("s3cret", logPath), "/logs?token=nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns log", func(t *testing.T) {
		w := get(newRouter("s3cret", logPath), "/logs?token=s3cret")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "line one\nline two\n", w.Body.String())
	})

	t.Run("missing file is empty", func(t *testing.T) {
		w := get(newRouter("s3cret", filepath.Join(t.TempDir(), "none.log")), "/logs?token=s3cret")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestTailFileLimitsSize(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "big.log")
	content := strings.Repeat("a", 100) + "tail"
	require.NoError(t, os.WriteFile(logPath, []byte(content), 0o644))

	data, err := tailFile(logPath, 10)
	require.NoError(t, err)
	assert.Equal(t, "aaaaaatail", string(data))
}
