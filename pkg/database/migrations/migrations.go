package migrations

import (
	"payhub/app/models/merchant"
	"payhub/app/models/order"
	"payhub/app/models/payment"
)

// RegisterTables 返回需要迁移的表的模型列表
func RegisterTables() []interface{} {
	return []interface{}{
		&merchant.Merchant{},
		&order.Order{},
		&payment.Payment{},
	}
}
