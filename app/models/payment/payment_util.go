package payment

import (
	"errors"
	"time"
)

// Method 支付方式
type Method string

const (
	MethodBankHandle Method = "bank_handle" // 收款账号转账
	MethodCard       Method = "card"        // 银行卡
)

// Status 支付状态
type Status string

const (
	StatusProcessing Status = "processing" // 处理中（初始态）
	StatusSuccess    Status = "success"    // 成功（终态）
	StatusFailed     Status = "failed"     // 失败（终态）
)

// 结算失败错误码，按支付方式区分
const (
	ErrCodeBankTransferFailed = "BANK_TRANSFER_FAILED"
	ErrCodeCardDeclined       = "CARD_DECLINED"
)

// ValidMethod 检查支付方式是否受支持
func ValidMethod(method string) bool {
	return method == string(MethodBankHandle) || method == string(MethodCard)
}

// IsTerminal 检查支付是否已到达终态
func (p *Payment) IsTerminal() bool {
	return p.Status == string(StatusSuccess) || p.Status == string(StatusFailed)
}

// IsProcessing 检查是否处理中
func (p *Payment) IsProcessing() bool {
	return p.Status == string(StatusProcessing)
}

// Validate 验证支付记录的内部一致性
func (p *Payment) Validate() error {
	if p.OrderID == "" {
		return errors.New("order_id is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	if !ValidMethod(p.Method) {
		return errors.New("invalid payment method")
	}
	if p.Method == string(MethodCard) && p.Handle != "" {
		return errors.New("card payment must not carry a bank handle")
	}
	if p.Method == string(MethodBankHandle) && (p.CardNetwork != "" || p.CardLast4 != "") {
		return errors.New("bank_handle payment must not carry card fields")
	}
	return nil
}

// PublicPayment 对收款方公开的支付投影，不含商户信息
type PublicPayment struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	Method           string    `json:"method"`
	Status           string    `json:"status"`
	Handle           string    `json:"handle,omitempty"`
	CardNetwork      string    `json:"card_network,omitempty"`
	CardLast4        string    `json:"card_last4,omitempty"`
	ErrorCode        string    `json:"error_code,omitempty"`
	ErrorDescription string    `json:"error_description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToPublic 生成公开投影
func (p *Payment) ToPublic() PublicPayment {
	return PublicPayment{
		ID:               p.ID,
		OrderID:          p.OrderID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Method:           p.Method,
		Status:           p.Status,
		Handle:           p.Handle,
		CardNetwork:      p.CardNetwork,
		CardLast4:        p.CardLast4,
		ErrorCode:        p.ErrorCode,
		ErrorDescription: p.ErrorDescription,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
