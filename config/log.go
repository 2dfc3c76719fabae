package config

import "payhub/pkg/config"

func init() {
	config.Add("log", func() map[string]interface{} {
		return map[string]interface{}{

			// 日志级别，可选：debug, info, warn, error
			"level": config.Env("LOG_LEVEL", "debug"),

			// 日志的类型，可选：single 独立的文件、daily 按照日期每日一个
			"type": config.Env("LOG_TYPE", "single"),

			/* ------------------ 滚动日志配置 ------------------ */
			// 日志文件路径
			"filename": config.Env("LOG_NAME", "storage/logs/logs.log"),
			// 每个日志文件保存的最大尺寸，单位：MB
			"max_size": config.Env("LOG_MAX_SIZE", 64),
			// 最多保存日志文件数，0 为不限
			"max_backup": config.Env("LOG_MAX_BACKUP", 5),
			// 最多保存多少天，0 表示不删
			"max_age": config.Env("LOG_MAX_AGE", 30),
			// 是否压缩
			"compress": config.Env("LOG_COMPRESS", false),
		}
	})
}
