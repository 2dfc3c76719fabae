// Package orders 订单相关接口
package orders

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"payhub/app/models/order"
	"payhub/app/repositories"
	"payhub/app/requests"
	"payhub/pkg/identifier"
	"payhub/pkg/response"
)

type OrdersController struct {
	orderRepo *repositories.OrderRepository
}

// NewOrdersController 创建订单控制器
func NewOrdersController() *OrdersController {
	return &OrdersController{
		orderRepo: repositories.NewOrderRepository(),
	}
}

// Store 创建订单（商户鉴权）
func (oc *OrdersController) Store(c *gin.Context) {
	// 1. 请求验证
	req, reqErr := requests.ValidateCreateOrder(c)
	if reqErr != nil {
		response.AbortBadRequest(c, reqErr.Description, reqErr.Field)
		return
	}

	// 2. 构建并持久化订单
	o := &order.Order{
		ID:         identifier.NewOrderID(),
		MerchantID: c.GetString("merchant_id"),
		Amount:     req.Amount,
		Currency:   req.Currency,
		Receipt:    req.Receipt,
		Notes:      req.Notes,
		Status:     string(order.StatusCreated),
	}

	if err := oc.orderRepo.Create(c.Request.Context(), o); err != nil {
		response.AbortInternal(c, err)
		return
	}

	response.Created(c, o)
}

// Show 获取订单（商户鉴权，完整记录）
func (oc *OrdersController) Show(c *gin.Context) {
	o, err := oc.orderRepo.GetByIDScoped(c.Request.Context(), c.Param("id"), c.GetString("merchant_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.AbortNotFound(c, "order not found")
			return
		}
		response.AbortInternal(c, err)
		return
	}

	response.Data(c, o)
}

// ShowPublic 获取订单公开投影（收款页面使用，不含商户信息）
func (oc *OrdersController) ShowPublic(c *gin.Context) {
	o, err := oc.orderRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.AbortNotFound(c, "order not found")
			return
		}
		response.AbortInternal(c, err)
		return
	}

	response.Data(c, o.ToPublic())
}
