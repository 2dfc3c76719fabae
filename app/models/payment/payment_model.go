// Package payment 存放支付记录 Model 相关逻辑
package payment

import (
	"payhub/app/models"
)

// Payment 支付记录模型
// 金额和币种为创建时从订单复制的快照，后续订单变更不影响已受理的支付
type Payment struct {
	ID         string `gorm:"primaryKey;type:varchar(32)" json:"id"`
	OrderID    string `gorm:"type:varchar(32);index" json:"order_id"`
	MerchantID string `gorm:"type:varchar(36);index" json:"merchant_id"`
	Amount     int64  `gorm:"not null" json:"amount"`
	Currency   string `gorm:"type:varchar(3)" json:"currency"`
	Method     string `gorm:"type:varchar(20)" json:"method"`
	Status     string `gorm:"type:varchar(20);index" json:"status"`

	// 支付要素衍生字段，card 与 bank_handle 互斥填充
	Handle      string `gorm:"type:varchar(255)" json:"handle,omitempty"`
	CardNetwork string `gorm:"type:varchar(20)" json:"card_network,omitempty"`
	CardLast4   string `gorm:"type:varchar(4)" json:"card_last4,omitempty"`

	// 仅在 failed 状态下填充
	ErrorCode        string `gorm:"type:varchar(40)" json:"error_code,omitempty"`
	ErrorDescription string `gorm:"type:varchar(255)" json:"error_description,omitempty"`

	models.CommonTimestampsField
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
