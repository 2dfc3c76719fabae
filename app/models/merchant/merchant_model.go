// Package merchant 存放商户 Model 相关逻辑
package merchant

import (
	"payhub/app/models"
)

// Merchant 商户模型
// 由外部的开通流程创建，本服务内除 Active 外视为只读
type Merchant struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name       string `gorm:"type:varchar(255)" json:"name"`
	Email      string `gorm:"unique;type:varchar(255)" json:"email"`
	APIKey     string `gorm:"column:api_key;uniqueIndex;type:varchar(64)" json:"api_key"`
	APISecret  string `gorm:"column:api_secret;type:varchar(64)" json:"-"` // 不对外输出
	WebhookURL string `gorm:"type:text" json:"webhook_url,omitempty"`
	Active     bool   `gorm:"default:true;index" json:"active"`

	models.CommonTimestampsField
}

// TableName 表名
func (Merchant) TableName() string {
	return "merchants"
}
