package repositories

import (
	"context"

	"gorm.io/gorm"

	"payhub/app/models/payment"
	"payhub/pkg/database"
)

// PaymentRepository 支付记录仓库
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建仓库实例
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		db: database.DB,
	}
}

// Create 创建支付记录
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByID 按 ID 获取支付记录（不限定商户，公开入口使用）
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByIDScoped 按 ID 和商户获取支付记录
func (r *PaymentRepository) GetByIDScoped(ctx context.Context, id, merchantID string) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.WithContext(ctx).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SettleTerminal 将处理中的支付一次性置为终态
// 条件更新保证原子性：仅当记录仍为 processing 时生效。
// 返回是否真正发生了状态流转，记录不存在或已是终态时为 false（幂等）
func (r *PaymentRepository) SettleTerminal(ctx context.Context, id string, status payment.Status, errCode, errDesc string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&payment.Payment{}).
		Where("id = ? AND status = ?", id, payment.StatusProcessing).
		Updates(map[string]interface{}{
			"status":            string(status),
			"error_code":        errCode,
			"error_description": errDesc,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
