package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "dispatch_admin/docs"
	"dispatch_admin/internal/config"
	"dispatch_admin/internal/controller"
	"dispatch_admin/internal/middleware"
)

// Deps 路由依赖
type Deps struct {
	Auth          config.AuthConfig
	PurgeCooldown time.Duration
	Limiter       *middleware.OperationLimiter
	Log           zerolog.Logger
	DispatchCtl   *controller.DispatchController
}

// SetupRouter 创建 gin 引擎并注册所有路由
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(deps.Log))

	InitRoutes(r, deps)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, deps Deps) {
	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewOperationLimiter()
	}
	ctl := deps.DispatchCtl

	// Swagger 文档，访问 /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查不需要认证
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.JWTAuth(deps.Auth), middleware.AuditContext())
	{
		// 配送规则
		// GET /api/v1/dispatches?filter=&sort=&start=&limit=
		api.GET("/dispatches", ctl.ListDispatches)
		api.GET("/dispatch-summaries", ctl.ListDispatchSummaries)
		api.GET("/shipping-costs", ctl.ListShippingCosts)
		api.GET("/shipping-costs/:id", ctl.GetShippingCosts)

		// 运费矩阵
		matrix := api.Group("/costs-matrix")
		{
			matrix.GET("/:dispatchId", ctl.GetCostsMatrix)
			// DELETE 立即生效，限 admin 并按配送规则冷却
			matrix.DELETE("/:dispatchId",
				middleware.RequireRole(middleware.RoleAdmin),
				middleware.OperationRateLimit(limiter, middleware.OpPurgeMatrix, deps.PurgeCooldown),
				ctl.PurgeCostsMatrix,
			)
		}

		// 基础数据
		api.GET("/payments", ctl.ListPayments)
		api.GET("/countries", ctl.ListCountries)
		api.GET("/holidays", ctl.ListHolidays)

		// 维护
		api.GET("/maintenance/orphaned-dispatches", ctl.ListOrphanedDispatches)
	}
}
