package requests

import (
	"fmt"

	"payhub/app/models/order"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	Amount   int64      `json:"amount" valid:"required"`
	Currency string     `json:"currency"`
	Receipt  string     `json:"receipt"`
	Notes    order.JSON `json:"notes"`
}

// ValidateCreateOrder 验证创建订单请求
func ValidateCreateOrder(c *gin.Context) (*CreateOrderRequest, *RequestError) {
	var req CreateOrderRequest

	// 1. 绑定与基础规则
	rules := govalidator.MapData{
		"amount": []string{"required"},
	}
	messages := govalidator.MapData{
		"amount": []string{
			"required:amount is required",
		},
	}

	if err := bindAndValidate(c, &req, rules, messages); err != nil {
		return nil, err
	}

	// 2. 金额下限校验
	if req.Amount < order.MinAmount {
		return nil, badRequest(
			fmt.Sprintf("amount must be at least %d (minor currency units)", order.MinAmount),
			"amount",
		)
	}

	// 3. 币种缺省
	if req.Currency == "" {
		req.Currency = order.DefaultCurrency
	}

	return &req, nil
}
