package config

// Initialize 触发本目录下所有配置文件的 init 加载
func Initialize() {
	// 空函数，各配置文件通过 init() 注册自身
}
