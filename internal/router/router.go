package router

import (
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/config"
	"github.com/webplotcentersj-hash/stock2/internal/handler"
	"github.com/webplotcentersj-hash/stock2/internal/infra"
	"github.com/webplotcentersj-hash/stock2/internal/middleware"
	"github.com/webplotcentersj-hash/stock2/internal/repository"
	"github.com/webplotcentersj-hash/stock2/internal/service"
	"github.com/webplotcentersj-hash/stock2/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true // unsupported verbs get 405, not 404

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	articuloRepo := repository.NewArticuloRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	ordenRepo := repository.NewOrdenCompraRepository(db)
	cajaRepo := repository.NewCajaRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg.JWTSecret, cfg.JWTExpirationHours)
	stockSvc := service.NewStockService(articuloRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, articuloRepo, ordenRepo, dispatcher)
	compraSvc := service.NewCompraService(ordenRepo, articuloRepo, cfg.PDFStoragePath)
	cajaSvc := service.NewCajaService(cajaRepo)
	dashboardSvc := service.NewDashboardService(pedidoRepo, articuloRepo, rdb)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	stockH := handler.NewStockHandler(stockSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, mailer))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes — every /v1 resource requires a valid Bearer token
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, usuarioRepo)
	v1 := r.Group("/v1", jwtMW)
	{
		stock := v1.Group("/stock")
		{
			stock.GET("", stockH.Listar)
			stock.POST("", stockH.Crear)
			stock.PUT("", stockH.Actualizar)
			stock.DELETE("", stockH.Eliminar)
		}

		pedidos := v1.Group("/pedidos")
		{
			pedidos.GET("", pedidosH.Listar)
			pedidos.POST("", pedidosH.Crear)
			pedidos.PUT("", pedidosH.Actualizar)
			pedidos.DELETE("", pedidosH.Eliminar)
		}
		v1.GET("/pedidos-items", pedidosH.ListarItems)

		compras := v1.Group("/compras")
		{
			compras.GET("", comprasH.Listar)
			compras.POST("", comprasH.Crear)
			compras.PUT("", comprasH.Actualizar)
			compras.DELETE("", comprasH.Eliminar)
			compras.GET("/:id/pdf", comprasH.DescargarPDF)
		}

		caja := v1.Group("/caja")
		{
			caja.GET("", cajaH.Listar)
			caja.POST("", cajaH.Crear)
			caja.DELETE("", cajaH.Eliminar)
		}

		v1.GET("/dashboard", dashboardH.Obtener)
		v1.GET("/usuarios", usuariosH.Listar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
