// Package system 健康检查等系统类接口
package system

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"payhub/pkg/database"
	"payhub/pkg/redis"
)

type SystemController struct{}

// NewSystemController 创建系统控制器
func NewSystemController() *SystemController {
	return &SystemController{}
}

// HealthCheck 健康检查端点
// 外部探活使用，检查数据库与 Redis 连接
func (sc *SystemController) HealthCheck(c *gin.Context) {
	if err := database.SQLDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	if err := redis.Redis.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "unhealthy",
			"redis":  "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
