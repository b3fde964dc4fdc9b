package entity

import (
	"fmt"

	cgeo "git.fiblab.net/general/common/v2/geometry"
)

// SignalState 信号灯相位
type SignalState int32

const (
	SignalStateGreen  SignalState = iota // 绿灯
	SignalStateYellow                    // 黄灯
	SignalStateRed                       // 红灯
)

// String 获取相位的字符串表示
func (s SignalState) String() string {
	switch s {
	case SignalStateGreen:
		return "GREEN"
	case SignalStateYellow:
		return "YELLOW"
	case SignalStateRed:
		return "RED"
	default:
		return fmt.Sprintf("SignalState(%d)", int32(s))
	}
}

// VehicleAttribute 车辆动力学属性
// 说明：MaxBrakingA为正值（减速度的大小）
type VehicleAttribute struct {
	Length      float64 // 车辆长度（米）
	MinGap      float64 // 最小车距s0（米）
	Headway     float64 // 安全车头时距T（秒）
	MaxV        float64 // 最大速度（米/秒）
	MaxA        float64 // 最大加速度（米/秒²）
	MaxBrakingA float64 // 最大制动减速度（米/秒²，正值）
}

// ILeader 前车抽象
// 说明：跟驰模型只需要前车的位置、速度、长度三个量，
// 真实车辆与信号灯的虚拟车都实现该接口
type ILeader interface {
	S() float64      // 在所在路段上的位置（米）
	V() float64      // 速度（米/秒）
	Length() float64 // 车辆长度（米）
}

// entity/vehicle/vehicle.go的依赖倒置
type IVehicle interface {
	ILeader

	ID() int32                         // 获取车辆ID
	A() float64                        // 获取当前加速度
	Attr() VehicleAttribute            // 获取车辆动力学属性
	Path() []int                       // 获取路径（路段下标序列）
	PathIndex() int                    // 获取当前路径下标
	SegmentIndex() int                 // 获取当前所在路段下标
	HasNextSegment() bool              // 判断路径上是否还有下一个路段
	MoveToNextSegment()                // 移动到路径上的下一个路段，位置归零
	Update(dt float64, leader ILeader) // 按跟驰模型更新一个时间步
}

// entity/segment/segment.go的依赖倒置
type ISegment interface {
	ID() int                             // 获取路段下标
	Length() float64                     // 获取路段长度
	Line() []cgeo.Point                  // 获取中心线折线
	GetPositionByS(s float64) cgeo.Point // 根据s坐标计算xy坐标
	GetDirectionByS(s float64) float64   // 根据s坐标计算切向角度
	Vehicles() []IVehicle                // 获取路段上的车辆（从前到后）
	FrontVehicle() (IVehicle, bool)      // 获取最前方的车辆
	LastVehicle() (IVehicle, bool)       // 获取最后方的车辆
	VehicleCount() int                   // 获取路段上的车辆数
	PushVehicle(v IVehicle)              // 车辆进入路段（队尾）
	PopVehicle() IVehicle                // 最前方车辆离开路段（队首）
}

// entity/signal/signal.go的依赖倒置
type ISignal interface {
	SegmentIndex() int       // 获取被管控的路段下标
	State() SignalState      // 获取当前相位
	GreenDuration() float64  // 获取绿灯时长
	YellowDuration() float64 // 获取黄灯时长
	RedDuration() float64    // 获取红灯时长
	CycleDuration() float64  // 获取相位周期总时长
	StopPosition() float64   // 获取停车线位置（未解析时为所在路段长度）
	Phantom() ILeader        // 获取虚拟车，不存在时为nil
	Update(dt float64)       // 推进相位时钟并更新虚拟车
}
