package bootstrap

import (
	"context"

	"github.com/google/uuid"

	"payhub/app/models/merchant"
	"payhub/app/repositories"
	"payhub/pkg/config"
	"payhub/pkg/logger"
)

// SetupSeed 启动时预置测试商户
// 收款演示流程依赖这组固定凭证，重复启动时幂等跳过
func SetupSeed() {
	seedID := config.GetString("app.seed_merchant_id", "550e8400-e29b-41d4-a716-446655440000")
	if _, err := uuid.Parse(seedID); err != nil {
		logger.ErrorString("Seed", "Merchant", "无效的商户 ID："+seedID)
		return
	}

	repo := repositories.NewMerchantRepository()
	err := repo.CreateIfAbsent(context.Background(), &merchant.Merchant{
		ID:        seedID,
		Name:      "Test Merchant",
		Email:     "test@example.com",
		APIKey:    "key_test_abc123",
		APISecret: "secret_test_xyz789",
		Active:    true,
	})
	if err != nil {
		logger.ErrorString("Seed", "Merchant", "预置商户失败："+err.Error())
		return
	}

	logger.InfoString("Seed", "Merchant", "测试商户就绪")
}
