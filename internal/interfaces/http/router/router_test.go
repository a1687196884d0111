package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/interfaces/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	mines := NewDomainGroup("mines", "/mines")
	mines.GET("", func(c *gin.Context) { c.String(http.StatusOK, "list") }).
		POST("", func(c *gin.Context) { c.String(http.StatusCreated, "create") }).
		PUT("/:id", func(c *gin.Context) { c.String(http.StatusOK, "update "+c.Param("id")) }).
		DELETE("/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.Register(mines).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/mines")
	assert.Equal(t, "list", w.Body.String())

	w = serve(engine, http.MethodPost, "/api/v1/mines")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(engine, http.MethodPut, "/api/v1/mines/m-7")
	assert.Equal(t, "update m-7", w.Body.String())

	w = serve(engine, http.MethodDelete, "/api/v1/mines/m-7")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(engine, http.MethodGet, "/mines")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterMiddlewareOrder(t *testing.T) {
	engine := gin.New()
	var trail []string
	mark := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			trail = append(trail, name)
			c.Next()
		}
	}

	r := NewRouter(engine, WithMiddleware(mark("api")))
	vendors := NewDomainGroup("vendors", "/vendors").Use(mark("group"))
	vendors.GET("/:id/balance", mark("route"), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.Register(vendors).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/vendors/v1/balance")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"api", "group", "route"}, trail)
}

func TestDomainGroupSubgroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	blocks := NewDomainGroup("blocks", "/blocks")
	assert.Equal(t, "blocks", blocks.Name())
	assert.Equal(t, "/blocks", blocks.Prefix())

	statement := blocks.Group("statement", "/:id/statement")
	statement.GET("", func(c *gin.Context) { c.String(http.StatusOK, "render "+c.Param("id")) }).
		POST("/archive", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.Register(blocks).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/blocks/b-1/statement")
	assert.Equal(t, "render b-1", w.Body.String())

	w = serve(engine, http.MethodPost, "/api/v1/blocks/b-1/statement/archive")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouterRoutes_Sorted(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	noop := func(c *gin.Context) {}
	r.Register(NewDomainGroup("stones", "/stones").POST("", noop).GET("", noop))
	r.Register(NewDomainGroup("labour", "/labour").GET("", noop))
	r.Setup()

	assert.Equal(t, []RouteInfo{
		{Method: http.MethodGet, Path: "/api/v1/labour"},
		{Method: http.MethodGet, Path: "/api/v1/stones"},
		{Method: http.MethodPost, Path: "/api/v1/stones"},
	}, r.Routes())
}

func TestRegisterAPI(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	intakes := make([]*handler.IntakeHandler, 0, len(intake.Kinds()))
	for _, k := range intake.Kinds() {
		intakes = append(intakes, handler.NewIntakeHandler(nil, nil, k))
	}
	denied := func(c *gin.Context) { c.AbortWithStatus(http.StatusForbidden) }
	RegisterAPI(r, Handlers{Intake: intakes}, denied).Setup()

	served := make(map[string]bool)
	for _, rt := range r.Routes() {
		served[rt.Method+" "+rt.Path] = true
	}
	for _, want := range []string{
		"POST /api/v1/auth/login",
		"GET /api/v1/users",
		"GET /api/v1/vendors/:id/balance",
		"POST /api/v1/todis",
		"POST /api/v1/galas/:id/payments",
		"GET /api/v1/todi-raskats/:id/statement",
		"POST /api/v1/blocks/:id/statement/archive",
		"POST /api/v1/stones/:id/issue",
		"POST /api/v1/calculations/preview",
		"GET /api/v1/exports/:collection",
		"POST /api/v1/admin/recalculate",
		"GET /api/v1/health",
	} {
		assert.True(t, served[want], want)
	}

	// the admin gate runs before any handler is touched
	for _, path := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users"},
		{http.MethodDelete, "/api/v1/mines/m-1"},
		{http.MethodDelete, "/api/v1/todis/t-1"},
		{http.MethodPost, "/api/v1/admin/recalculate"},
	} {
		w := serve(engine, path.method, path.path)
		assert.Equal(t, http.StatusForbidden, w.Code, path.path)
	}
}
