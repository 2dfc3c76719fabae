package config

import "payhub/pkg/config"

func init() {
	config.Add("queue", func() map[string]interface{} {
		return map[string]interface{}{
			"rate_limit":   config.Env("QUEUE_RATE_LIMIT", 1000),
			"rate_burst":   config.Env("QUEUE_RATE_BURST", 1000),
			"worker_count": config.Env("QUEUE_WORKER_COUNT", 10),
		}
	})
}
