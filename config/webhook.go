package config

import "payhub/pkg/config"

func init() {
	config.Add("webhook", func() map[string]interface{} {
		return map[string]interface{}{
			// 单次投递超时，单位：秒
			"timeout": config.Env("WEBHOOK_TIMEOUT", 10),

			// 投递失败后的最大重试次数
			"max_retries": config.Env("WEBHOOK_MAX_RETRIES", 3),
		}
	})
}
