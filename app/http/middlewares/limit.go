package middlewares

import (
	"net/http"

	"payhub/pkg/app"
	"payhub/pkg/limiter"
	"payhub/pkg/logger"
	"payhub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// LimitIP 全局限流中间件，针对 IP 进行限流
//
// 支持的限流格式:
// - 5 reqs/second:   "5-S"
// - 10 reqs/minute:  "10-M"
// - 1000 reqs/hour:  "1000-H"
// - 2000 reqs/day:   "2000-D"
func LimitIP(limit string) gin.HandlerFunc {
	// 测试环境使用较大限制
	if app.IsTesting() {
		limit = "1000000-H"
	}

	return func(c *gin.Context) {
		// 以 IP 为限流键
		key := limiter.GetKeyIP(c)
		if ok := limitHandler(c, key, limit); !ok {
			return
		}
		c.Next()
	}
}

// LimitPerRoute 针对单个路由的限流中间件，基于 IP + 路由路径
func LimitPerRoute(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	return func(c *gin.Context) {
		// 针对单个路由增加访问次数
		c.Set("limiter-once", false)

		// 以路由+IP 为限流键
		key := limiter.GetKeyRouteWithIP(c)
		if ok := limitHandler(c, key, limit); !ok {
			return
		}
		c.Next()
	}
}

// limitHandler 执行限流检测，超额时终止请求
func limitHandler(c *gin.Context, key string, limit string) bool {
	// 获取超额的情况
	rate, err := limiter.CheckRate(c, key, limit)
	if err != nil {
		logger.LogIf(err)
		// 限流后端异常时降级放行
		return true
	}

	// 设置 RateLimit 相关响应头
	c.Header("X-RateLimit-Limit", cast.ToString(rate.Limit))
	c.Header("X-RateLimit-Remaining", cast.ToString(rate.Remaining))
	c.Header("X-RateLimit-Reset", cast.ToString(rate.Reset))

	// 超额
	if rate.Reached {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{
			Error: response.ErrorBody{
				Code:        "RATE_LIMITED",
				Description: "Too many requests, please retry later",
			},
		})
		return false
	}

	return true
}
