package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"idea_api/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
)

func newTracedRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	file := filepath.Join(t.TempDir(), "app.log")
	logging.Setup(logging.Config{Level: "info", File: file})
	t.Cleanup(logging.Drain)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Tracer())
	return r, file
}

func readLog(t *testing.T, file string) string {
	t.Helper()
	logging.Drain()
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestTracerAssignsRequestID(t *testing.T) {
	r, _ := newTracedRouter(t)

	var seenInHandler string
	r.GET("/x", func(c *gin.Context) {
		seenInHandler = logging.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	// Client-supplied ids are ignored; the tracer always mints a fresh one.
	req.Header.Set(RequestIDHeader, "client-chosen")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	headerID := w.Header().Get(RequestIDHeader)
	if len(headerID) != 8 {
		t.Fatalf("expected 8-char request id header, got %q", headerID)
	}
	if headerID == "client-chosen" {
		t.Fatalf("client-supplied id must be ignored")
	}
	if seenInHandler != headerID {
		t.Fatalf("handler saw %q, response header carries %q", seenInHandler, headerID)
	}
}

func TestTracerLogsStartedThenCompleted(t *testing.T) {
	r, file := newTracedRouter(t)
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	headerID := w.Header().Get(RequestIDHeader)

	out := readLog(t, file)
	started := strings.Index(out, "request started")
	completed := strings.Index(out, "request completed")
	if started == -1 || completed == -1 {
		t.Fatalf("expected both trace lines, got:\n%s", out)
	}
	if started > completed {
		t.Fatalf("started line must precede completed line:\n%s", out)
	}
	if strings.Count(out, headerID) < 2 {
		t.Fatalf("expected both lines to carry id %s, got:\n%s", headerID, out)
	}
	if !strings.Contains(out, `"status": 204`) {
		t.Fatalf("expected status field on completed line, got:\n%s", out)
	}
}

func TestTracerConcurrentRequestsKeepDistinctIDs(t *testing.T) {
	r, _ := newTracedRouter(t)

	r.GET("/slow", func(c *gin.Context) {
		id := logging.RequestID(c.Request.Context())
		time.Sleep(10 * time.Millisecond)
		// The id observed after the suspension point must still be ours.
		if after := logging.RequestID(c.Request.Context()); after != id {
			c.String(http.StatusInternalServerError, "leaked")
			return
		}
		c.String(http.StatusOK, id)
	})

	const concurrent = 20
	ids := make(chan string, concurrent)

	var wg sync.WaitGroup
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
				return
			}
			if w.Body.String() != w.Header().Get(RequestIDHeader) {
				t.Errorf("handler id %q != header id %q", w.Body.String(), w.Header().Get(RequestIDHeader))
				return
			}
			ids <- w.Body.String()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("request id %q assigned twice", id)
		}
		seen[id] = true
	}
}

func TestTracerLogsFailureAndRethrows(t *testing.T) {
	r, file := newTracedRouter(t)
	r.POST("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	body := bytes.NewBufferString(`{"vm_name":["vm_1"]}`)
	req := httptest.NewRequest(http.MethodPost, "/boom?debug=1", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Recovery still owns the status mapping.
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected request id header on failed request")
	}

	out := readLog(t, file)
	if !strings.Contains(out, "request failed") {
		t.Fatalf("expected failed line, got:\n%s", out)
	}
	if !strings.Contains(out, "kaboom") {
		t.Fatalf("expected panic value in failed line, got:\n%s", out)
	}
	if !strings.Contains(out, `vm_1`) {
		t.Fatalf("expected captured request body in failed line, got:\n%s", out)
	}
	if !strings.Contains(out, "debug=1") {
		t.Fatalf("expected captured query params in failed line, got:\n%s", out)
	}
	if strings.Contains(out, "request completed") {
		t.Fatalf("failed request must not log a completed line:\n%s", out)
	}
}

func TestTracerDoesNotBufferGetBodies(t *testing.T) {
	r, file := newTracedRouter(t)
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", bytes.NewBufferString("stray payload"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	out := readLog(t, file)
	if !strings.Contains(out, "request failed") {
		t.Fatalf("expected failed line, got:\n%s", out)
	}
	if strings.Contains(out, "stray payload") {
		t.Fatalf("GET bodies must not be captured, got:\n%s", out)
	}
}

func TestTracerLogsGinErrors(t *testing.T) {
	r, file := newTracedRouter(t)
	r.GET("/err", func(c *gin.Context) {
		_ = c.Error(errTest)
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))

	out := readLog(t, file)
	if !strings.Contains(out, "request failed") {
		t.Fatalf("expected failed line, got:\n%s", out)
	}
	if !strings.Contains(out, "synthetic failure") {
		t.Fatalf("expected error text in failed line, got:\n%s", out)
	}
}

var errTest = &testError{}

type testError struct{}

func (*testError) Error() string { return "synthetic failure" }
