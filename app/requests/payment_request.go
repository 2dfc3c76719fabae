package requests

import (
	"payhub/app/models/payment"
	"payhub/pkg/instrument"
	"payhub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// CardDetails 银行卡要素
type CardDetails struct {
	Number       string `json:"number"`
	ExpiryMonth  int    `json:"expiry_month"`
	ExpiryYear   int    `json:"expiry_year"`
	SecurityCode string `json:"security_code"`
	HolderName   string `json:"holder_name"`
}

// CreatePaymentRequest 创建支付请求
type CreatePaymentRequest struct {
	OrderID string       `json:"order_id" valid:"required"`
	Method  string       `json:"method" valid:"required"`
	Handle  string       `json:"handle"`
	Card    *CardDetails `json:"card"`
}

// ValidateCreatePayment 验证创建支付请求
// 按支付方式分支校验要素，顺序：字段齐全 → 格式 / 校验和 → 有效期
func ValidateCreatePayment(c *gin.Context) (*CreatePaymentRequest, *RequestError) {
	var req CreatePaymentRequest

	rules := govalidator.MapData{
		"order_id": []string{"required"},
		"method":   []string{"required"},
	}
	messages := govalidator.MapData{
		"order_id": []string{
			"required:order_id is required",
		},
		"method": []string{
			"required:method is required",
		},
	}

	if err := bindAndValidate(c, &req, rules, messages); err != nil {
		return nil, err
	}

	switch req.Method {
	case string(payment.MethodBankHandle):
		if err := validateHandle(&req); err != nil {
			return nil, err
		}
	case string(payment.MethodCard):
		if err := validateCard(&req); err != nil {
			return nil, err
		}
	default:
		return nil, badRequest("method must be bank_handle or card", "method")
	}

	return &req, nil
}

// validateHandle 校验收款账号分支
func validateHandle(req *CreatePaymentRequest) *RequestError {
	if req.Handle == "" {
		return badRequest("handle is required for bank_handle payments", "handle")
	}
	if !instrument.HandleValid(req.Handle) {
		return instrumentError(response.CodeInvalidHandle, "handle format is invalid")
	}
	return nil
}

// validateCard 校验银行卡分支
func validateCard(req *CreatePaymentRequest) *RequestError {
	card := req.Card
	if card == nil {
		return badRequest("card details are required for card payments", "card")
	}

	// 字段齐全性
	switch {
	case card.Number == "":
		return badRequest("card number is required", "card.number")
	case card.ExpiryMonth == 0:
		return badRequest("card expiry_month is required", "card.expiry_month")
	case card.ExpiryYear == 0:
		return badRequest("card expiry_year is required", "card.expiry_year")
	case card.SecurityCode == "":
		return badRequest("card security_code is required", "card.security_code")
	case card.HolderName == "":
		return badRequest("card holder_name is required", "card.holder_name")
	}

	// 校验和
	if !instrument.LuhnValid(card.Number) {
		return instrumentError(response.CodeInvalidCard, "card number failed validation")
	}

	// 有效期
	if !instrument.ExpiryValid(card.ExpiryMonth, card.ExpiryYear) {
		return instrumentError(response.CodeExpiredCard, "card has expired")
	}

	return nil
}
