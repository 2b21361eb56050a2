package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeledger/project-billing-api/internal/logging"
	"github.com/timeledger/project-billing-api/internal/observability"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	var seenGin, seenCtx string
	var seenLogger *logrus.Entry

	router := gin.New()
	router.Use(RequestIDMiddleware(logger))
	router.GET("/ping", func(c *gin.Context) {
		seenGin = c.GetString("request_id")
		seenCtx = logging.GetRequestID(c.Request.Context())
		seenLogger = logging.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("echoes incoming id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		req.Header.Set("X-Request-Id", "rid-123")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "rid-123", rr.Header().Get("X-Request-Id"))
		assert.Equal(t, "rid-123", seenGin)
		assert.Equal(t, "rid-123", seenCtx)
		require.NotNil(t, seenLogger)
		assert.Equal(t, "rid-123", seenLogger.Data["request_id"])
		assert.Contains(t, buf.String(), `"path":"/ping"`)
	})

	t.Run("generates id when missing", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		rid := rr.Header().Get("X-Request-Id")
		assert.Len(t, rid, 32)
		assert.Equal(t, rid, seenCtx)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	router := gin.New()
	router.Use(MetricsMiddleware(metrics))
	router.GET("/projects/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/projects/a", "/projects/b", "/nowhere"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/projects/:id", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
