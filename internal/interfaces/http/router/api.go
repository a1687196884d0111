package router

import (
	"github.com/gin-gonic/gin"
	"github.com/stonetrade/backend/internal/interfaces/http/handler"
)

// Handlers bundles the API handlers. Intake holds one handler per intake kind.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Mine        *handler.MineHandler
	Vendor      *handler.VendorHandler
	Labour      *handler.LabourHandler
	Intake      []*handler.IntakeHandler
	Block       *handler.BlockHandler
	Stone       *handler.StoneHandler
	Calculation *handler.CalculationHandler
	Export      *handler.ExportHandler
	Admin       *handler.AdminHandler
	System      *handler.SystemHandler
}

// RegisterAPI adds every domain group to r. adminOnly guards deletes, user
// management and maintenance.
func RegisterAPI(r *Router, h Handlers, adminOnly gin.HandlerFunc) *Router {
	auth := NewDomainGroup("auth", "/auth")
	auth.POST("/login", h.Auth.Login).
		POST("/refresh", h.Auth.RefreshToken).
		POST("/logout", h.Auth.Logout).
		GET("/me", h.Auth.GetCurrentUser).
		PUT("/password", h.Auth.ChangePassword)
	r.Register(auth)

	users := NewDomainGroup("users", "/users").Use(adminOnly)
	users.POST("", h.User.Create).
		GET("", h.User.List).
		GET("/:id", h.User.GetByID).
		DELETE("/:id", h.User.Delete)
	r.Register(users)

	mines := NewDomainGroup("mines", "/mines")
	mines.POST("", h.Mine.Create).
		GET("", h.Mine.List).
		GET("/:id", h.Mine.GetByID).
		PUT("/:id", h.Mine.Update).
		DELETE("/:id", adminOnly, h.Mine.Delete)
	r.Register(mines)

	vendors := NewDomainGroup("vendors", "/vendors")
	vendors.POST("", h.Vendor.Create).
		GET("", h.Vendor.List).
		GET("/:id", h.Vendor.GetByID).
		GET("/:id/balance", h.Vendor.Balance).
		PUT("/:id", h.Vendor.Update).
		DELETE("/:id", adminOnly, h.Vendor.Delete)
	r.Register(vendors)

	labour := NewDomainGroup("labour", "/labour")
	labour.POST("", h.Labour.Create).
		GET("", h.Labour.List).
		GET("/:id", h.Labour.GetByID).
		PUT("/:id", h.Labour.Update).
		DELETE("/:id", adminOnly, h.Labour.Delete)
	r.Register(labour)

	for _, ih := range h.Intake {
		kind := ih.Kind()
		g := NewDomainGroup(string(kind), "/"+kind.Slug())
		g.POST("", ih.Create).
			GET("", ih.List).
			GET("/:id", ih.GetByID).
			PUT("/:id", ih.Update).
			DELETE("/:id", adminOnly, ih.Delete).
			POST("/:id/payments", ih.AddPayment).
			GET("/:id/statement", ih.Statement).
			POST("/:id/statement/archive", ih.ArchiveStatement)
		r.Register(g)
	}

	blocks := NewDomainGroup("blocks", "/blocks")
	blocks.POST("", h.Block.Create).
		GET("", h.Block.List).
		GET("/:id", h.Block.GetByID).
		PUT("/:id", h.Block.Update).
		DELETE("/:id", adminOnly, h.Block.Delete).
		POST("/:id/payments", h.Block.AddPayment).
		GET("/:id/statement", h.Block.Statement).
		POST("/:id/statement/archive", h.Block.ArchiveStatement)
	r.Register(blocks)

	stones := NewDomainGroup("stones", "/stones")
	stones.POST("", h.Stone.Create).
		GET("", h.Stone.List).
		GET("/:id", h.Stone.GetByID).
		PUT("/:id", h.Stone.Update).
		DELETE("/:id", adminOnly, h.Stone.Delete).
		POST("/:id/issue", h.Stone.Issue)
	r.Register(stones)

	r.Register(NewDomainGroup("calculations", "/calculations").
		POST("/preview", h.Calculation.Preview))

	r.Register(NewDomainGroup("exports", "/exports").
		GET("", h.Export.Collections).
		GET("/:collection", h.Export.Export))

	r.Register(NewDomainGroup("admin", "/admin").
		Use(adminOnly).
		POST("/recalculate", h.Admin.Recalculate))

	r.Register(NewDomainGroup("system", "").
		GET("/health", h.System.Health).
		GET("/system/info", h.System.GetSystemInfo))

	return r
}
