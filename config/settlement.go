package config

import "payhub/pkg/config"

func init() {
	config.Add("settlement", func() map[string]interface{} {
		return map[string]interface{}{
			// 确定性模式：固定结果 + 固定延迟，测试环境使用
			"deterministic": config.Env("SETTLEMENT_DETERMINISTIC", false),

			// 确定性模式下的固定结果，可选 success / failed
			"force_outcome": config.Env("SETTLEMENT_FORCE_OUTCOME", "success"),

			// 确定性模式下的固定延迟，单位：毫秒
			"fixed_delay_ms": config.Env("SETTLEMENT_FIXED_DELAY_MS", 100),

			// 随机模式下的延迟区间，单位：秒
			"min_delay_seconds": config.Env("SETTLEMENT_MIN_DELAY_SECONDS", 5),
			"max_delay_seconds": config.Env("SETTLEMENT_MAX_DELAY_SECONDS", 10),

			// 随机模式下按支付方式区分的成功率
			"bank_success_rate": config.Env("SETTLEMENT_BANK_SUCCESS_RATE", 0.90),
			"card_success_rate": config.Env("SETTLEMENT_CARD_SUCCESS_RATE", 0.95),
		}
	})
}
