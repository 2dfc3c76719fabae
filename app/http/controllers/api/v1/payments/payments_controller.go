// Package payments 支付相关接口
package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"payhub/app/models/order"
	"payhub/app/models/payment"
	"payhub/app/repositories"
	"payhub/app/requests"
	"payhub/pkg/identifier"
	"payhub/pkg/instrument"
	"payhub/pkg/logger"
	"payhub/pkg/response"
	"payhub/pkg/settlement"
)

// settlementQueue 受理后结算任务的投递端
type settlementQueue interface {
	PushTask(ctx context.Context, task *settlement.Task) error
}

type PaymentsController struct {
	orderRepo   *repositories.OrderRepository
	paymentRepo *repositories.PaymentRepository
	queue       settlementQueue
}

// NewPaymentsController 创建支付控制器
func NewPaymentsController() *PaymentsController {
	return &PaymentsController{
		orderRepo:   repositories.NewOrderRepository(),
		paymentRepo: repositories.NewPaymentRepository(),
		queue:       settlement.NewQueueService(),
	}
}

// Store 创建支付（商户鉴权）
func (pc *PaymentsController) Store(c *gin.Context) {
	pc.create(c, c.GetString("merchant_id"))
}

// StorePublic 创建支付（收款页面公开入口）
func (pc *PaymentsController) StorePublic(c *gin.Context) {
	pc.create(c, "")
}

// create 两段式支付流程的同步受理段
// 验证要素、快照订单金额、落库 processing，随后把结算任务交给后台
// 工作器。受理响应不等待结算结果
func (pc *PaymentsController) create(c *gin.Context, merchantScope string) {
	// 1. 请求验证（含支付要素分支校验）
	req, reqErr := requests.ValidateCreatePayment(c)
	if reqErr != nil {
		if reqErr.Code == response.CodeBadRequest {
			response.AbortBadRequest(c, reqErr.Description, reqErr.Field)
		} else {
			response.AbortInstrument(c, reqErr.Code, reqErr.Description)
		}
		return
	}

	// 2. 解析订单，鉴权入口限定商户范围
	o, err := pc.resolveOrder(c, req.OrderID, merchantScope)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.AbortNotFound(c, "order not found")
			return
		}
		response.AbortInternal(c, err)
		return
	}

	// 3. 构建支付记录，金额与币种取订单创建时的快照
	p := &payment.Payment{
		ID:         identifier.NewPaymentID(),
		OrderID:    o.ID,
		MerchantID: o.MerchantID,
		Amount:     o.Amount,
		Currency:   o.Currency,
		Method:     req.Method,
		Status:     string(payment.StatusProcessing),
	}

	// 按支付方式填充衍生字段，两类字段互斥
	if req.Method == string(payment.MethodCard) {
		p.CardNetwork = instrument.Network(req.Card.Number)
		p.CardLast4 = instrument.LastFour(req.Card.Number)
	} else {
		p.Handle = req.Handle
	}

	if err := pc.paymentRepo.Create(c.Request.Context(), p); err != nil {
		response.AbortInternal(c, err)
		return
	}

	// 4. 先输出受理响应
	response.Created(c, p.ToPublic())

	// 5. 结算任务入队，失败不影响已受理的支付（停留在 processing）
	task := &settlement.Task{
		PaymentID: p.ID,
		Method:    p.Method,
		CreatedAt: time.Now(),
	}

	// 受理已落库，入队不跟随请求取消，客户端断开不能丢任务
	queueCtx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 10*time.Second)
	defer cancel()

	if err := pc.queue.PushTask(queueCtx, task); err != nil {
		logger.ErrorString("Payments", "Enqueue",
			fmt.Sprintf("settlement task for %s not enqueued: %v", p.ID, err))
	}
}

// resolveOrder 解析支付对应的订单，公开入口不限定商户
func (pc *PaymentsController) resolveOrder(c *gin.Context, orderID, merchantScope string) (*order.Order, error) {
	if merchantScope != "" {
		return pc.orderRepo.GetByIDScoped(c.Request.Context(), orderID, merchantScope)
	}
	return pc.orderRepo.GetByID(c.Request.Context(), orderID)
}

// Show 获取支付记录（商户鉴权，完整记录含错误详情）
func (pc *PaymentsController) Show(c *gin.Context) {
	p, err := pc.paymentRepo.GetByIDScoped(c.Request.Context(), c.Param("id"), c.GetString("merchant_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.AbortNotFound(c, "payment not found")
			return
		}
		response.AbortInternal(c, err)
		return
	}

	response.Data(c, p)
}

// ShowPublic 获取支付记录公开投影（收款页面轮询使用）
func (pc *PaymentsController) ShowPublic(c *gin.Context) {
	p, err := pc.paymentRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.AbortNotFound(c, "payment not found")
			return
		}
		response.AbortInternal(c, err)
		return
	}

	response.Data(c, p.ToPublic())
}
