package config

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
// 功能：定义仿真时间控制参数
// 说明：控制仿真的时间范围与步长
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
// 功能：定义仿真系统的核心控制参数
type Control struct {
	Step ControlStep `yaml:"step"`
	Seed uint64      `yaml:"seed,omitempty"` // 随机数种子（车辆生成器使用）
}

// Segment 路段配置
// 功能：通过控制点定义一个路段的几何形状
// 说明：type为straight/quadratic/cubic，控制点数量分别为2/3/4
type Segment struct {
	Type   string      `yaml:"type"`        // 路段类型
	Points [][]float64 `yaml:"points,flow"` // 控制点坐标列表，每项为[x, y]
}

// Vehicle 车辆配置
// 功能：定义车辆的路径、初始运动状态与动力学属性
// 说明：动力学属性为0时采用默认值
type Vehicle struct {
	Path []int   `yaml:"path,flow"` // 路径（路段下标序列）
	X    float64 `yaml:"x,omitempty"`
	V    float64 `yaml:"v,omitempty"`

	Length      float64 `yaml:"l,omitempty"`     // 车辆长度
	MinGap      float64 `yaml:"s0,omitempty"`    // 最小车距
	Headway     float64 `yaml:"t,omitempty"`     // 安全车头时距
	MaxV        float64 `yaml:"v_max,omitempty"` // 最大速度
	MaxA        float64 `yaml:"a_max,omitempty"` // 最大加速度
	MaxBrakingA float64 `yaml:"b_max,omitempty"` // 最大制动减速度（正值）
}

// Signal 信号灯配置
// 功能：定义信号灯的相位时长与停车线位置
// 说明：相位时长为0时采用默认值；stop_position为空时在首次更新时
// 解析为所在路段长度
type Signal struct {
	Segment       int      `yaml:"segment"` // 被管控的路段下标
	GreenDuration float64  `yaml:"green,omitempty"`
	YellowDur     float64  `yaml:"yellow,omitempty"`
	RedDuration   float64  `yaml:"red,omitempty"`
	StopPosition  *float64 `yaml:"stop_position,omitempty"`
}

// GeneratorTemplate 车辆生成模板
type GeneratorTemplate struct {
	Weight  float64 `yaml:"weight"` // 抽样权重
	Vehicle Vehicle `yaml:"vehicle"`
}

// Generator 车辆生成器配置
// 功能：定义周期性注入车辆的速率与加权模板集合
type Generator struct {
	Rate      float64             `yaml:"rate"` // 每分钟生成车辆数
	Templates []GeneratorTemplate `yaml:"templates"`
}

// Output 指定模拟结果输出的配置（MongoDB）
type Output struct {
	URI      string `yaml:"uri"`                // MongoDB连接字符串
	DB       string `yaml:"db"`                 // 数据库名
	Col      string `yaml:"col"`                // 集合名
	Batch    int    `yaml:"batch,omitempty"`    // 批量写入条数，默认256
	Interval int32  `yaml:"interval,omitempty"` // 记录间隔步数，默认1
}

// Config YAML配置文件的根结构
// 功能：定义整个仿真场景的配置结构
type Config struct {
	Control    Control     `yaml:"control"`              // 模拟过程控制
	Segments   []Segment   `yaml:"segments"`             // 路网
	Vehicles   []Vehicle   `yaml:"vehicles,omitempty"`   // 初始车辆
	Signals    []Signal    `yaml:"signals,omitempty"`    // 信号灯
	Generators []Generator `yaml:"generators,omitempty"` // 车辆生成器
	Output     *Output     `yaml:"output,omitempty"`     // 输出
}
