package monitor

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// maxLogTail bounds how much of the log file /logs returns.
const maxLogTail = 64 * 1024

// RegisterMonitorPage serves a small status page that polls /api/health and,
// when a token is passed as ?token=, the log tail.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		// The page carries its own inline script and styles.
		c.Header("Content-Security-Policy", "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'")
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(monitorPage))
	})
}

// RegisterLogsRoute exposes the tail of logPath when the request carries the
// configured token. An empty token leaves the route disabled.
func RegisterLogsRoute(router *gin.Engine, token, logPath string) {
	router.GET("/logs", func(c *gin.Context) {
		if token == "" {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "log access disabled"})
			return
		}
		if c.Query("token") != token {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
			return
		}
		logData, err := tailFile(logPath, maxLogTail)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to read log"})
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", logData)
	})
}

func tailFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []byte{}, nil
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > limit {
		if _, err := f.Seek(info.Size()-limit, io.SeekStart); err != nil {
			return nil, err
		}
	}
	return io.ReadAll(f)
}

const monitorPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Review Requester Monitor</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; background: #0f172a; color: #e2e8f0; margin: 0; padding: 2rem; }
    .container { max-width: 1100px; margin: 0 auto; }
    h1 { color: #a5b4fc; }
    .card { background: rgba(255, 255, 255, 0.04); border: 1px solid rgba(255, 255, 255, 0.1); border-radius: 12px; padding: 1.25rem; margin-bottom: 1.5rem; }
    #status { font-size: 1.2rem; font-weight: 600; }
    #logs { background: rgba(0, 0, 0, 0.3); padding: 1rem; border-radius: 8px; max-height: 500px; overflow-y: auto; white-space: pre-wrap; font-family: Monaco, Consolas, monospace; font-size: 0.85rem; }
    button { padding: 0.5rem 1rem; border: none; border-radius: 6px; background: #667eea; color: #fff; cursor: pointer; }
    button.paused { background: #f5576c; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Review Requester Monitor</h1>
    <div class="card"><div id="status">Status: Checking...</div></div>
    <div class="card">
      <div style="display:flex;justify-content:space-between;align-items:center">
        <strong>Server Logs</strong>
        <button onclick="toggleLive()" id="toggleBtn">Pause Live Logs</button>
      </div>
      <pre id="logs">Pass ?token=... to load logs.</pre>
    </div>
  </div>
  <script>
    let liveLogs = true;
    const token = new URLSearchParams(window.location.search).get('token');
    const logsElement = document.getElementById('logs');
    const statusElement = document.getElementById('status');
    const toggleBtn = document.getElementById('toggleBtn');

    function fetchStatus() {
      fetch('/api/health')
        .then(res => res.json())
        .then(data => { statusElement.textContent = 'Status: ' + (data.success ? 'Online' : 'Database unavailable'); })
        .catch(() => { statusElement.textContent = 'Status: Offline'; });
    }

    function fetchLogs() {
      if (!liveLogs || !token) return;
      fetch('/logs?token=' + encodeURIComponent(token))
        .then(res => res.text())
        .then(data => {
          logsElement.textContent = data;
          logsElement.scrollTop = logsElement.scrollHeight;
        });
    }

    function toggleLive() {
      liveLogs = !liveLogs;
      toggleBtn.textContent = liveLogs ? 'Pause Live Logs' : 'Resume Live Logs';
      toggleBtn.classList.toggle('paused', !liveLogs);
    }

    fetchStatus();
    fetchLogs();
    setInterval(fetchStatus, 5000);
    setInterval(fetchLogs, 5000);
  </script>
</body>
</html>`
