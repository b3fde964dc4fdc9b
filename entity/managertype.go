package entity

import (
	"github.com/hatakesamadireddi1-dev/trafficSimulator/geometry"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
)

// Manager依赖倒置

// entity/segment/manager.go的依赖倒置
type ISegmentManager interface {
	// 根据几何曲线创建路段，返回新路段
	Create(curve geometry.Curve) ISegment

	// 输入路段下标，查找路段，如果不存在则panic
	Get(index int) ISegment
	// 输入路段下标，查找路段，如果不存在则返回error
	GetOrError(index int) (ISegment, error)

	Count() int      // 获取路段数
	All() []ISegment // 获取全部路段（按下标顺序）
}

// entity/vehicle/manager.go的依赖倒置
type IVehicleManager interface {
	// 根据配置创建车辆并加入路径首路段队尾，路径非法时返回error
	Create(c config.Vehicle) (IVehicle, error)

	// 输入车辆ID，查找车辆，如果不存在则panic
	Get(id int32) IVehicle
	// 输入车辆ID，查找车辆，如果不存在则返回error
	GetOrError(id int32) (IVehicle, error)

	Remove(id int32) // 从车辆表中删除车辆
	Count() int      // 获取车辆数
	All() []IVehicle // 获取全部车辆（按ID升序）
}

// entity/signal/manager.go的依赖倒置
type ISignalManager interface {
	// 根据配置创建信号灯，路段下标越界时返回error；
	// 同一路段重复创建时新信号灯替换旧信号灯
	Create(c config.Signal) (ISignal, error)

	// 输入路段下标，查找管控该路段的信号灯，不存在则返回nil
	GetOrNil(segmentIndex int) ISignal

	Update(dt float64) // 更新全部信号灯（按路段下标升序）
	Count() int        // 获取信号灯数
}

// entity/generator/manager.go的依赖倒置
type IGeneratorManager interface {
	// 根据配置创建车辆生成器，模板路径非法时返回error
	Create(c config.Generator) error

	Update() // 更新全部生成器，按速率注入车辆
}
