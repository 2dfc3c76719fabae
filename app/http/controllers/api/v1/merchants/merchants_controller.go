// Package merchants 商户登录相关接口
package merchants

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"payhub/app/repositories"
	"payhub/app/requests"
	"payhub/pkg/response"
)

type MerchantsController struct {
	merchantRepo *repositories.MerchantRepository
}

// NewMerchantsController 创建商户控制器
func NewMerchantsController() *MerchantsController {
	return &MerchantsController{
		merchantRepo: repositories.NewMerchantRepository(),
	}
}

// Login 商户登录，按邮箱换取 API 凭证对
// 商户开通由外部系统负责，这里只做凭证下发
func (mc *MerchantsController) Login(c *gin.Context) {
	req, reqErr := requests.ValidateLogin(c)
	if reqErr != nil {
		response.AbortBadRequest(c, reqErr.Description, reqErr.Field)
		return
	}

	m, err := mc.merchantRepo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.AbortAuth(c)
			return
		}
		response.AbortInternal(c, err)
		return
	}

	response.Data(c, gin.H{
		"api_key":    m.APIKey,
		"api_secret": m.APISecret,
	})
}
