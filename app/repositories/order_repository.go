package repositories

import (
	"context"

	"gorm.io/gorm"

	"payhub/app/models/order"
	"payhub/pkg/database"
)

// OrderRepository 订单仓库
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建仓库实例
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		db: database.DB,
	}
}

// Create 创建订单
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// GetByID 按 ID 获取订单（不限定商户，公开入口使用）
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByIDScoped 按 ID 和商户获取订单
// 使用复合条件确保商户只能看到自己的订单
func (r *OrderRepository) GetByIDScoped(ctx context.Context, id, merchantID string) (*order.Order, error) {
	var o order.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND merchant_id = ?", id, merchantID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
