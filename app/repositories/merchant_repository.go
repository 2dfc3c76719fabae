package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"payhub/app/models/merchant"
	"payhub/pkg/database"
)

// MerchantRepository 商户仓库
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository 创建仓库实例
func NewMerchantRepository() *MerchantRepository {
	return &MerchantRepository{
		db: database.DB,
	}
}

// FindByCredentials 按凭证对精确匹配可用商户
// key 与 secret 必须同时匹配，未命中统一返回 gorm.ErrRecordNotFound，
// 不区分「key 不存在」与「secret 错误」
func (r *MerchantRepository) FindByCredentials(ctx context.Context, apiKey, apiSecret string) (*merchant.Merchant, error) {
	var m merchant.Merchant
	err := r.db.WithContext(ctx).
		Where("api_key = ? AND api_secret = ? AND active = ?", apiKey, apiSecret, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID 按 ID 获取商户
func (r *MerchantRepository) GetByID(ctx context.Context, id string) (*merchant.Merchant, error) {
	var m merchant.Merchant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByEmail 按邮箱获取商户
func (r *MerchantRepository) FindByEmail(ctx context.Context, email string) (*merchant.Merchant, error) {
	var m merchant.Merchant
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateIfAbsent 幂等创建商户，邮箱冲突时不做任何事（用于启动时预置）
func (r *MerchantRepository) CreateIfAbsent(ctx context.Context, m *merchant.Merchant) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}
