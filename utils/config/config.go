package config

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息
// 说明：将YAML配置转换为运行时可用的配置对象，补全默认值
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化全局变量
// 功能：创建运行时配置对象，补全默认值
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	if config.Control.Step.Interval == 0 {
		config.Control.Step.Interval = 1.0 / 60
	}
	if config.Output != nil {
		if config.Output.Batch == 0 {
			config.Output.Batch = 256
		}
		if config.Output.Interval == 0 {
			config.Output.Interval = 1
		}
	}

	rc.All = config
	rc.C = config.Control

	return rc
}
