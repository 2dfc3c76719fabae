// Package config 站点配置信息
package config

import "payhub/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// 应用名称
			"name": config.Env("APP_NAME", "Payhub"),

			// 当前环境，用以区分多环境，一般为 local, stage, production, test
			"env": config.Env("APP_ENV", "production"),

			// 是否进入调试模式
			"debug": config.Env("APP_DEBUG", false),

			// 应用服务端口
			"port": config.Env("APP_PORT", "8000"),

			// 设置时区，日志记录里会使用到
			"timezone": config.Env("TIMEZONE", "Asia/Kolkata"),

			// 每小时 API 请求数限制
			"api_rate_limit": config.Env("API_RATE_LIMIT", "1000"),

			// 预置测试商户的固定 ID
			"seed_merchant_id": config.Env("SEED_MERCHANT_ID", "550e8400-e29b-41d4-a716-446655440000"),
		}
	})
}
