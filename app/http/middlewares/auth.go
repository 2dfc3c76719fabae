package middlewares

import (
	"errors"

	"payhub/app/repositories"
	"payhub/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 商户凭证请求头
const (
	HeaderAPIKey    = "X-Api-Key"
	HeaderAPISecret = "X-Api-Secret"
)

// AuthMerchant 商户鉴权中间件
// 凭证对（key + secret）必须同时精确匹配一个可用商户。
// 缺失、未知 key、secret 错误统一返回同一个 401，避免凭证猜测
func AuthMerchant() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(HeaderAPIKey)
		apiSecret := c.GetHeader(HeaderAPISecret)

		if apiKey == "" || apiSecret == "" {
			response.AbortAuth(c)
			return
		}

		repo := repositories.NewMerchantRepository()
		m, err := repo.FindByCredentials(c.Request.Context(), apiKey, apiSecret)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.AbortAuth(c)
				return
			}
			response.AbortInternal(c, err)
			return
		}

		// 后续处理器通过 merchant_id 做数据隔离
		c.Set("merchant_id", m.ID)
		c.Next()
	}
}
