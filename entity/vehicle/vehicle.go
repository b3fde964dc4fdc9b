package vehicle

import (
	"fmt"

	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
	"github.com/samber/lo"
)

// 车辆动力学属性默认值
const (
	defaultLength      = 4.   // 车辆长度（米）
	defaultMinGap      = 4.   // 最小车距（米）
	defaultHeadway     = 1.   // 安全车头时距（秒）
	defaultMaxV        = 16.6 // 最大速度（米/秒）
	defaultMaxA        = 1.44 // 最大加速度（米/秒²）
	defaultMaxBrakingA = 4.61 // 最大制动减速度（米/秒²）
)

// Vehicle 车辆实体
// 功能：表示路网中的一辆车，维护路径、运动状态与动力学属性
// 说明：位置x为当前路段上的s坐标，向上不封顶，
// 越过路段末端后由模拟器处理路段切换
type Vehicle struct {
	id   int32
	attr entity.VehicleAttribute
	ctrl controller

	path      []int // 路径（路段下标序列），创建后不变
	pathIndex int   // 当前路径下标

	x float64 // 当前路段上的位置
	v float64 // 速度
	a float64 // 加速度
}

// ResolveAttr 根据配置计算车辆动力学属性
// 功能：将配置中为0的属性替换为默认值
// 参数：c-车辆配置
// 返回：补全后的动力学属性
func ResolveAttr(c config.Vehicle) entity.VehicleAttribute {
	return entity.VehicleAttribute{
		Length:      lo.Ternary(c.Length != 0, c.Length, defaultLength),
		MinGap:      lo.Ternary(c.MinGap != 0, c.MinGap, defaultMinGap),
		Headway:     lo.Ternary(c.Headway != 0, c.Headway, defaultHeadway),
		MaxV:        lo.Ternary(c.MaxV != 0, c.MaxV, defaultMaxV),
		MaxA:        lo.Ternary(c.MaxA != 0, c.MaxA, defaultMaxA),
		MaxBrakingA: lo.Ternary(c.MaxBrakingA != 0, c.MaxBrakingA, defaultMaxBrakingA),
	}
}

// New 创建并初始化一个新的Vehicle实例
// 功能：根据配置创建Vehicle对象，补全动力学属性默认值
// 参数：id-车辆ID，c-车辆配置
// 返回：初始化完成的Vehicle实例，属性非法时返回error
// 说明：配置中为0的属性取默认值；v_max、a_max、b_max在
// 跟驰模型中作除数，必须为正
func New(id int32, c config.Vehicle) (*Vehicle, error) {
	attr := ResolveAttr(c)
	if attr.MaxV <= 0 || attr.MaxA <= 0 || attr.MaxBrakingA <= 0 {
		return nil, fmt.Errorf(
			"vehicle %d: v_max, a_max, b_max must be positive, got %v, %v, %v",
			id, attr.MaxV, attr.MaxA, attr.MaxBrakingA,
		)
	}
	return &Vehicle{
		id:        id,
		attr:      attr,
		ctrl:      controller{attr: attr},
		path:      append([]int(nil), c.Path...),
		pathIndex: 0,
		x:         c.X,
		v:         c.V,
	}, nil
}

// ID 获取车辆ID
func (v *Vehicle) ID() int32 {
	return v.id
}

// S 获取车辆在当前路段上的位置
func (v *Vehicle) S() float64 {
	return v.x
}

// V 获取车辆速度
func (v *Vehicle) V() float64 {
	return v.v
}

// A 获取车辆当前加速度
func (v *Vehicle) A() float64 {
	return v.a
}

// Length 获取车辆长度
func (v *Vehicle) Length() float64 {
	return v.attr.Length
}

// Attr 获取车辆动力学属性
func (v *Vehicle) Attr() entity.VehicleAttribute {
	return v.attr
}

// Path 获取车辆路径
func (v *Vehicle) Path() []int {
	return v.path
}

// PathIndex 获取当前路径下标
func (v *Vehicle) PathIndex() int {
	return v.pathIndex
}

// SegmentIndex 获取当前所在路段下标
func (v *Vehicle) SegmentIndex() int {
	return v.path[v.pathIndex]
}

// HasNextSegment 判断路径上是否还有下一个路段
func (v *Vehicle) HasNextSegment() bool {
	return v.pathIndex+1 < len(v.path)
}

// MoveToNextSegment 移动到路径上的下一个路段
// 功能：路径下标加一，位置归零
// 说明：没有下一个路段时panic，调用方需先检查HasNextSegment
func (v *Vehicle) MoveToNextSegment() {
	if !v.HasNextSegment() {
		log.Panicf("vehicle %d: no next segment at path index %d", v.id, v.pathIndex)
	}
	v.pathIndex++
	v.x = 0
}

// Update 按跟驰模型更新一个时间步
// 功能：计算加速度并做半隐式积分
// 参数：dt-时间步长（秒），leader-前车（真实车辆或虚拟车），无前车时为nil
// 算法说明：
// 1. 有前车时按IDM跟驰模型计算加速度，否则按自由流模型
// 2. 先更新速度：v = clamp(v + a*dt, 0, v_max)，速度不允许为负
// 3. 再以新速度更新位置：x = x + v*dt
// 说明：先速度后位置的积分顺序保证了加速度反馈的数值稳定性
func (v *Vehicle) Update(dt float64, leader entity.ILeader) {
	if leader != nil {
		v.a = v.ctrl.follow(v.v, leader, v.x)
	} else {
		v.a = v.ctrl.freeRoad(v.v)
	}
	v.v = lo.Clamp(v.v+v.a*dt, 0, v.attr.MaxV)
	v.x += v.v * dt
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle{id=%d, segment=%d, x=%.2f, v=%.2f}",
		v.id, v.SegmentIndex(), v.x, v.v)
}
