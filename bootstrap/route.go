package bootstrap

import (
	"net/http"
	"strings"

	"payhub/app/http/middlewares"
	"payhub/routes"

	"github.com/gin-gonic/gin"
)

// SetupRoute 路由初始化
// 该方法用于设置 Web 应用的路由配置，包括：
// 1. 注册全局中间件
// 2. 注册 API 路由
// 3. 配置 404 处理器
func SetupRoute(router *gin.Engine) {
	// 注册全局中间件
	registerGlobalMiddleWare(router)

	// 注册 API 路由
	routes.RegisterAPIRoutes(router)

	// 配置 404 路由处理器
	setup404Handler(router)
}

// registerGlobalMiddleWare 注册全局中间件
// - Logger 中间件：记录请求日志
// - Recovery 中间件：从 panic 中恢复
func registerGlobalMiddleWare(router *gin.Engine) {
	router.Use(
		middlewares.Logger(),
		middlewares.Recovery(),
	)
}

// setup404Handler 配置 404 请求处理器
func setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		// 获取请求头中的 Accept 信息
		acceptString := c.Request.Header.Get("Accept")

		if strings.Contains(acceptString, "text/html") {
			// 对于 HTML 请求返回简单的文本信息
			c.String(http.StatusNotFound, "页面返回 404")
		} else {
			// 默认返回 JSON 格式的错误信息
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{
					"code":        "NOT_FOUND_ERROR",
					"description": "路由未定义，请确认 url 和请求方法是否正确。",
				},
			})
		}
	})
}
