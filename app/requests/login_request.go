package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// LoginRequest 商户登录请求
type LoginRequest struct {
	Email    string `json:"email" valid:"required"`
	Password string `json:"password"`
}

// ValidateLogin 验证登录请求
func ValidateLogin(c *gin.Context) (*LoginRequest, *RequestError) {
	var req LoginRequest

	rules := govalidator.MapData{
		"email": []string{"required", "email"},
	}
	messages := govalidator.MapData{
		"email": []string{
			"required:email is required",
			"email:email format is invalid",
		},
	}

	if err := bindAndValidate(c, &req, rules, messages); err != nil {
		return nil, err
	}

	return &req, nil
}
