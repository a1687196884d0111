package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appidentity "github.com/stonetrade/backend/internal/application/identity"
	"github.com/stonetrade/backend/internal/application/inventory"
	apppartner "github.com/stonetrade/backend/internal/application/partner"
	"github.com/stonetrade/backend/internal/application/printing"
	"github.com/stonetrade/backend/internal/application/report"
	"github.com/stonetrade/backend/internal/domain/block"
	"github.com/stonetrade/backend/internal/domain/costing"
	"github.com/stonetrade/backend/internal/domain/identity"
	"github.com/stonetrade/backend/internal/domain/intake"
	"github.com/stonetrade/backend/internal/domain/partner"
	"github.com/stonetrade/backend/internal/domain/stone"
	"github.com/stonetrade/backend/internal/infrastructure/auth"
	"github.com/stonetrade/backend/internal/infrastructure/config"
	"github.com/stonetrade/backend/internal/infrastructure/persistence"
	infra "github.com/stonetrade/backend/internal/infrastructure/printing"
	"github.com/stonetrade/backend/internal/infrastructure/storage"
	"github.com/stonetrade/backend/internal/interfaces/http/dto"
	"github.com/stonetrade/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

const testPassword = "Marble#2026"

// stubRenderer returns a fixed two-page PDF
type stubRenderer struct {
	calls int
}

func (r *stubRenderer) Render(_ context.Context, req *infra.RenderRequest) (*infra.RenderResult, error) {
	r.calls++
	return &infra.RenderResult{PDFData: []byte("%PDF-1.7 " + req.Title), PageCount: 2}, nil
}

func (r *stubRenderer) Close() error { return nil }

// testEnv wires the real services over an in-memory SQLite database
type testEnv struct {
	t        *testing.T
	db       *gorm.DB
	router   *gin.Engine
	jwt      *auth.JWTService
	renderer *stubRenderer
	storage  *storage.MemoryObjectStorage

	adminID    uuid.UUID
	adminToken string
	staffToken string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// named shared-cache database so every pooled connection sees the same tables
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	calc := costing.NewCalculator()
	require.NoError(t, db.Use(persistence.NewRecalculationPlugin(calc, nil)))
	require.NoError(t, db.AutoMigrate(
		&partner.Mine{}, &partner.Vendor{}, &partner.Labour{},
		&intake.Record{}, &block.Block{}, &stone.Stone{}, &identity.User{},
	))

	log := zap.NewNop()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "handler-test-secret-that-is-long-enough",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "stone-trade-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	userRepo := persistence.NewGormUserRepository(db)
	mineRepo := persistence.NewGormMineRepository(db)
	vendorRepo := persistence.NewGormVendorRepository(db)
	labourRepo := persistence.NewGormLabourRepository(db)
	recordRepo := persistence.NewGormRecordRepository(db)
	blockRepo := persistence.NewGormBlockRepository(db)
	stoneRepo := persistence.NewGormStoneRepository(db)

	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist, appidentity.DefaultAuthServiceConfig(), log)
	userService := appidentity.NewUserService(userRepo, blacklist, jwtService, log)
	mineService := apppartner.NewMineService(mineRepo, log)
	vendorService := apppartner.NewVendorService(vendorRepo, mineRepo, persistence.NewGormBalanceReader(db), log)
	labourService := apppartner.NewLabourService(labourRepo, log)

	refs := inventory.NewReferences(vendorRepo, mineRepo)
	intakeService := inventory.NewIntakeService(recordRepo, refs, calc, nil, log)
	blockService := inventory.NewBlockService(blockRepo, refs, calc, nil, log)
	stoneService := inventory.NewStoneService(stoneRepo, calc, log)
	recalcService := inventory.NewRecalculationService(recordRepo, blockRepo, stoneRepo, calc, nil, 50, log)

	engine, err := infra.NewTemplateEngine(&config.PrintingConfig{CompanyName: "Shree Marbles", CurrencySymbol: "Rs ", Locale: "en"})
	require.NoError(t, err)
	env := &testEnv{
		t:        t,
		db:       db,
		jwt:      jwtService,
		renderer: &stubRenderer{},
		storage:  storage.NewMemoryObjectStorage("http://files.local"),
	}
	statements := printing.NewStatementService(recordRepo, blockRepo, vendorRepo, mineRepo, engine, env.renderer, env.storage, log)
	exports := report.NewExportService(report.Sources{
		Intakes: intakeService,
		Blocks:  blockService,
		Stones:  stoneService,
		Vendors: vendorService,
		Mines:   mineService,
		Labour:  labourService,
	}, log)

	ctx := context.Background()
	admin, err := userService.Create(ctx, appidentity.CreateUserInput{Username: "owner", Password: testPassword, Role: "admin"})
	require.NoError(t, err)
	staff, err := userService.Create(ctx, appidentity.CreateUserInput{Username: "munim", Password: testPassword, Role: "staff"})
	require.NoError(t, err)
	env.adminID = admin.ID
	env.adminToken = env.token(admin)
	env.staffToken = env.token(staff)

	r := gin.New()
	r.Use(middleware.RequestID())
	sys := NewSystemHandler("Stone Trade API", "test", map[string]Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	})
	r.GET("/health", sys.Health)

	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(authService))
	adminOnly := middleware.RequireRole(string(identity.RoleAdmin))

	authH := NewAuthHandler(authService)
	api.POST("/auth/login", authH.Login)
	api.POST("/auth/refresh", authH.RefreshToken)
	api.POST("/auth/logout", authH.Logout)
	api.GET("/auth/me", authH.GetCurrentUser)
	api.PUT("/auth/password", authH.ChangePassword)
	api.GET("/system/info", sys.GetSystemInfo)

	users := api.Group("/users", adminOnly)
	userH := NewUserHandler(userService)
	users.POST("", userH.Create)
	users.GET("", userH.List)
	users.GET("/:id", userH.GetByID)
	users.DELETE("/:id", userH.Delete)

	mineH := NewMineHandler(mineService)
	api.POST("/mines", mineH.Create)
	api.GET("/mines", mineH.List)
	api.GET("/mines/:id", mineH.GetByID)
	api.PUT("/mines/:id", mineH.Update)
	api.DELETE("/mines/:id", adminOnly, mineH.Delete)

	vendorH := NewVendorHandler(vendorService)
	api.POST("/vendors", vendorH.Create)
	api.GET("/vendors", vendorH.List)
	api.GET("/vendors/:id", vendorH.GetByID)
	api.GET("/vendors/:id/balance", vendorH.Balance)
	api.PUT("/vendors/:id", vendorH.Update)
	api.DELETE("/vendors/:id", adminOnly, vendorH.Delete)

	labourH := NewLabourHandler(labourService)
	api.POST("/labour", labourH.Create)
	api.GET("/labour", labourH.List)
	api.GET("/labour/:id", labourH.GetByID)
	api.PUT("/labour/:id", labourH.Update)
	api.DELETE("/labour/:id", adminOnly, labourH.Delete)

	for _, kind := range intake.Kinds() {
		h := NewIntakeHandler(intakeService, statements, kind)
		g := api.Group("/" + kind.Slug())
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.GetByID)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", adminOnly, h.Delete)
		g.POST("/:id/payments", h.AddPayment)
		g.GET("/:id/statement", h.Statement)
		g.POST("/:id/statement/archive", h.ArchiveStatement)
	}

	blockH := NewBlockHandler(blockService, statements)
	api.POST("/blocks", blockH.Create)
	api.GET("/blocks", blockH.List)
	api.GET("/blocks/:id", blockH.GetByID)
	api.PUT("/blocks/:id", blockH.Update)
	api.DELETE("/blocks/:id", adminOnly, blockH.Delete)
	api.POST("/blocks/:id/payments", blockH.AddPayment)
	api.GET("/blocks/:id/statement", blockH.Statement)
	api.POST("/blocks/:id/statement/archive", blockH.ArchiveStatement)

	stoneH := NewStoneHandler(stoneService)
	api.POST("/stones", stoneH.Create)
	api.GET("/stones", stoneH.List)
	api.GET("/stones/:id", stoneH.GetByID)
	api.PUT("/stones/:id", stoneH.Update)
	api.DELETE("/stones/:id", adminOnly, stoneH.Delete)
	api.POST("/stones/:id/issue", stoneH.Issue)

	api.POST("/calculations/preview", NewCalculationHandler(intakeService).Preview)

	exportH := NewExportHandler(exports)
	api.GET("/exports", exportH.Collections)
	api.GET("/exports/:collection", exportH.Export)

	api.POST("/admin/recalculate", adminOnly, NewAdminHandler(recalcService).Recalculate)

	env.router = r
	return env
}

func (e *testEnv) token(u *appidentity.UserInfo) string {
	e.t.Helper()
	pair, err := e.jwt.GenerateTokenPair(auth.Subject{UserID: u.ID, Username: u.Username, Role: u.Role})
	require.NoError(e.t, err)
	return pair.AccessToken
}

// do sends a request; body is JSON-encoded unless it is already a string
func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// envelope mirrors dto.Response with the data left raw for typed decoding
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	require.True(t, env.Success, w.Body.String())
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func decodeMeta(t *testing.T, w *httptest.ResponseRecorder) *dto.Meta {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Meta)
	return env.Meta
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorInfo {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	assert.False(t, env.Success)
	require.NotNil(t, env.Error, w.Body.String())
	return env.Error
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

// workedTodi is a todi with one 10 × 5 × 2 measure, hydra 50, truck 30, todi cost 20 and 10% depreciation
func workedTodi() map[string]any {
	return map[string]any{
		"type":          "Makrana",
		"munim":         "Mohan",
		"date":          "2026-03-01",
		"material_cost": "20",
		"depreciation":  10,
		"groups": []map[string]any{{
			"hydra_cost": 50,
			"truck_cost": "30",
			"blocks": []map[string]any{{
				"label":    "A-1",
				"measures": []map[string]any{{"l": 10, "b": 5, "h": 2}},
			}},
		}},
	}
}

func (e *testEnv) createMine(name string) apppartner.MineResponse {
	e.t.Helper()
	w := e.do(http.MethodPost, "/api/v1/mines", e.staffToken, map[string]any{"name": name, "address": "Makrana, Rajasthan"})
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[apppartner.MineResponse](e.t, w)
}

func (e *testEnv) createVendor(name string, mineID *uuid.UUID) apppartner.VendorResponse {
	e.t.Helper()
	body := map[string]any{"name": name, "phones": []string{"98290 12345"}}
	if mineID != nil {
		body["mine_id"] = mineID.String()
	}
	w := e.do(http.MethodPost, "/api/v1/vendors", e.staffToken, body)
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[apppartner.VendorResponse](e.t, w)
}

func (e *testEnv) createTodi(body map[string]any) inventory.IntakeResponse {
	e.t.Helper()
	w := e.do(http.MethodPost, "/api/v1/todis", e.staffToken, body)
	require.Equal(e.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[inventory.IntakeResponse](e.t, w)
}
