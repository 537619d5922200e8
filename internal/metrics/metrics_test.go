package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", m.Handler())

	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/7", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
	}

	if got := testutil.ToFloat64(m.RequestCount.WithLabelValues("GET", "/ping/:id", "200")); got != 3 {
		t.Errorf("request count = %v, want 3", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), "thinkwise_http_requests_total") {
		t.Errorf("exposition missing request counter:\n%s", w.Body.String())
	}
}

func TestObserve(t *testing.T) {
	m := New()
	m.ObserveSubmission("AI_VERIFICATION", true)
	m.ObserveSubmission("AI_VERIFICATION", true)
	m.ObserveGenerated("PROBLEM_DECOMPOSITION", false)

	if got := testutil.ToFloat64(m.Submissions.WithLabelValues("AI_VERIFICATION", "true")); got != 2 {
		t.Errorf("submissions = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Generated.WithLabelValues("PROBLEM_DECOMPOSITION", "failed")); got != 1 {
		t.Errorf("generated failed = %v, want 1", got)
	}

	var nilMetrics *Metrics
	nilMetrics.ObserveSubmission("x", false) // must not panic
}
