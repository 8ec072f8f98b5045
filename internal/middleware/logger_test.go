package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ceslar/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(telemetry.NewLogger(&buf, "json", "debug"))
	t.Cleanup(func() { slog.SetDefault(previous) })

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/churches/:churchId", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/churches/507f1f77bcf86cd799439012", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "/churches/:churchId", line["path"])
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
	assert.Equal(t, "req-1", line["request_id"])
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/metrics-test/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := telemetry.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test/:id", "200")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics-test/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics-test/def", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
