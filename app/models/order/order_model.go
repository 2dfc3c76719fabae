// Package order 存放订单 Model 相关逻辑
package order

import (
	"payhub/app/models"
)

// Order 订单模型
// 创建后金额和币种不再变更，支付记录以创建时的快照为准
type Order struct {
	ID         string `gorm:"primaryKey;type:varchar(32)" json:"id"`
	MerchantID string `gorm:"type:varchar(36);index" json:"merchant_id"`
	Amount     int64  `gorm:"not null" json:"amount"` // 最小货币单位
	Currency   string `gorm:"type:varchar(3)" json:"currency"`
	Receipt    string `gorm:"type:varchar(255)" json:"receipt"`
	Notes      JSON   `gorm:"type:json" json:"notes"`
	Status     string `gorm:"type:varchar(20);index" json:"status"`

	models.CommonTimestampsField
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
