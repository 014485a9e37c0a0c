package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	Init()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", PrometheusHandler())
	return r
}

func scrape(r *gin.Engine) string {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func TestObserveAIGeneration(t *testing.T) {
	r := newRouter()

	ObserveAIGeneration("test_schema", nil, 2*time.Second)
	ObserveAIGeneration("test_schema", errors.New("boom"), time.Second)

	body := scrape(r)
	assert.Contains(t, body, `ai_generation_total{outcome="success",schema="test_schema"}`)
	assert.Contains(t, body, `ai_generation_total{outcome="failure",schema="test_schema"}`)
	assert.Contains(t, body, `ai_generation_duration_seconds_count{schema="test_schema"} 2`)
}

func TestMetricsMiddleware(t *testing.T) {
	r := newRouter()

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	body := scrape(r)
	assert.Contains(t, body, `http_requests_total{endpoint="/ping",method="GET",status="200"}`)
}
