package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResourceFromRoute(t *testing.T) {
	tests := map[string]string{
		"/api/v1/todi-raskats/:id":          "todi-raskats",
		"/api/v1/galas/:id/payments":        "galas",
		"/api/v2/exports/:collection":       "exports",
		"/health":                           "health",
		"":                                  "",
		"/api/v1/:id":                       "",
		"/api/v1/blocks/:id/statement/file": "blocks",
	}
	for route, want := range tests {
		assert.Equal(t, want, resourceFromRoute(route), route)
	}
}

func TestIsVersionSegment(t *testing.T) {
	assert.True(t, isVersionSegment("v1"))
	assert.True(t, isVersionSegment("V12"))
	assert.False(t, isVersionSegment("v"))
	assert.False(t, isVersionSegment("vendors"))
}

func TestProfiling_AttachesLabels(t *testing.T) {
	var route, resource string

	r := gin.New()
	r.Use(Profiling(DefaultProfilingConfig()))
	r.GET("/api/v1/galas/:id", func(c *gin.Context) {
		route, _ = pprof.Label(c.Request.Context(), "route")
		resource, _ = pprof.Label(c.Request.Context(), "resource")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/galas/3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/v1/galas/:id", route)
	assert.Equal(t, "galas", resource)
}

func TestProfiling_SkipsHealth(t *testing.T) {
	var labelled bool

	r := gin.New()
	r.Use(Profiling(DefaultProfilingConfig()))
	r.GET("/health", func(c *gin.Context) {
		_, labelled = pprof.Label(c.Request.Context(), "route")
		c.Status(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.False(t, labelled)
}
