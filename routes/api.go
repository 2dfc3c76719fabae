package routes

import (
	"github.com/gin-gonic/gin"

	"payhub/app/http/controllers/api/v1/merchants"
	"payhub/app/http/controllers/api/v1/orders"
	"payhub/app/http/controllers/api/v1/payments"
	"payhub/app/http/controllers/api/v1/system"
	"payhub/app/http/middlewares"
)

// 路由限流配置
const (
	// 🌍 全局限流：每小时每IP 30000 请求
	GlobalRateLimit = "30000-H"
	// 💳 创建订单/支付限流：每小时每IP 1000 请求
	CreateLimit = "1000-H"
	// 🔍 状态轮询限流：每分钟每IP 300 请求
	QueryStatusLimit = "300-M"
)

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine) {
	// 健康检查不走限流
	sc := system.NewSystemController()
	r.GET("/health", sc.HealthCheck)

	v1 := r.Group("/api/v1")

	v1.Use(
		middlewares.Recovery(),
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
	)

	// 🔑 商户登录
	mc := merchants.NewMerchantsController()
	v1.POST("/login", mc.Login)

	// 📦 订单相关路由
	oc := orders.NewOrdersController()
	{
		// 创建订单（商户鉴权）
		// POST /api/v1/orders
		v1.POST("/orders",
			middlewares.LimitPerRoute(CreateLimit),
			middlewares.AuthMerchant(),
			oc.Store,
		)

		// 获取订单完整记录（商户鉴权）
		// GET /api/v1/orders/:id
		v1.GET("/orders/:id",
			middlewares.AuthMerchant(),
			oc.Show,
		)

		// 获取订单公开投影（收款页面）
		// GET /api/v1/orders/:id/public
		v1.GET("/orders/:id/public", oc.ShowPublic)
	}

	// 💳 支付相关路由
	pc := payments.NewPaymentsController()
	{
		// 创建支付（商户鉴权）
		// POST /api/v1/payments
		v1.POST("/payments",
			middlewares.LimitPerRoute(CreateLimit),
			middlewares.AuthMerchant(),
			pc.Store,
		)

		// 创建支付（收款页面公开入口）
		// POST /api/v1/payments/public
		v1.POST("/payments/public",
			middlewares.LimitPerRoute(CreateLimit),
			pc.StorePublic,
		)

		// 获取支付完整记录（商户鉴权）
		// GET /api/v1/payments/:id
		v1.GET("/payments/:id",
			middlewares.AuthMerchant(),
			pc.Show,
		)

		// 获取支付公开投影（收款页面轮询）
		// GET /api/v1/payments/:id/public
		// 请求频率：每分钟每IP最多300次
		v1.GET("/payments/:id/public",
			middlewares.LimitPerRoute(QueryStatusLimit),
			pc.ShowPublic,
		)
	}
}
