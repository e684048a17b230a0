package observability

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"sqlgen/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTraceMiddlewarePreservesIncomingTraceID(t *testing.T) {
	router := gin.New()
	router.Use(TraceMiddleware())
	router.GET("/health", func(c *gin.Context) {
		assert.Equal(t, "trace-1", TraceIDFromContext(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceHeader, "trace-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace-1", w.Header().Get(traceHeader))
}

func TestTraceMiddlewareGeneratesTraceID(t *testing.T) {
	router := gin.New()
	router.Use(TraceMiddleware())
	router.GET("/health", func(c *gin.Context) {
		assert.NotEmpty(t, TraceIDFromContext(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Len(t, w.Header().Get(traceHeader), 32)
}

func TestTraceIDContextHelpers(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "abc123")
	assert.Equal(t, "abc123", TraceIDFromContext(ctx))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

func TestLoggingMiddlewareWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{JSON: true}, &buf)

	router := gin.New()
	router.Use(TraceMiddleware(), LoggingMiddleware(logger))
	router.GET("/x", func(c *gin.Context) {
		c.String(http.StatusAccepted, "ok")
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Contains(t, buf.String(), `"msg":"http_request"`)
	assert.Contains(t, buf.String(), `"status":202`)
	assert.Contains(t, buf.String(), `"service":"sqlgen"`)
}

func TestMetricsMiddlewareCountsRequests(t *testing.T) {
	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/metrics-test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test", "200"))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics-test", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test", "200"))

	assert.Equal(t, before+1, after)
}

func TestObserveGeneration(t *testing.T) {
	before := testutil.ToFloat64(generationsTotal.WithLabelValues("mysql", OutcomeError))
	ObserveGeneration("mysql", OutcomeError, 0.2)
	assert.Equal(t, before+1, testutil.ToFloat64(generationsTotal.WithLabelValues("mysql", OutcomeError)))
}
