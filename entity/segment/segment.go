package segment

import (
	"fmt"

	cgeo "git.fiblab.net/general/common/v2/geometry"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/geometry"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/container"
)

// Segment 路段实体
// 功能：表示路网中的一个路段，持有几何曲线与路段上的车辆队列
// 说明：队列从队首到队尾为从前到后的车辆顺序（队首车辆位置最大），
// 队列只允许队尾进入、队首离开，保证顺序不变式
type Segment struct {
	ctx entity.ITaskContext

	index    int
	curve    geometry.Curve
	vehicles *container.Deque[entity.IVehicle]
}

// newSegment 创建并初始化一个新的Segment实例
// 功能：根据几何曲线创建Segment对象
// 参数：ctx-任务上下文，index-路段下标，curve-几何曲线
// 返回：初始化完成的Segment实例
func newSegment(ctx entity.ITaskContext, index int, curve geometry.Curve) *Segment {
	return &Segment{
		ctx:      ctx,
		index:    index,
		curve:    curve,
		vehicles: container.NewDeque[entity.IVehicle](fmt.Sprintf("segment %d vehicles", index)),
	}
}

// ID 获取路段下标
func (s *Segment) ID() int {
	return s.index
}

// Length 获取路段长度
func (s *Segment) Length() float64 {
	return s.curve.Length()
}

// Line 获取中心线折线
func (s *Segment) Line() []cgeo.Point {
	return s.curve.Line()
}

// GetPositionByS 将路段s坐标转换为xy坐标
func (s *Segment) GetPositionByS(sPos float64) cgeo.Point {
	return s.curve.PositionAt(sPos)
}

// GetDirectionByS 根据路段s坐标计算切向角度
func (s *Segment) GetDirectionByS(sPos float64) float64 {
	return s.curve.HeadingAt(sPos)
}

// Vehicles 获取路段上的车辆（从前到后）
func (s *Segment) Vehicles() []entity.IVehicle {
	return s.vehicles.Values()
}

// FrontVehicle 获取最前方的车辆
// 返回：车辆与是否存在
func (s *Segment) FrontVehicle() (entity.IVehicle, bool) {
	return s.vehicles.Front()
}

// LastVehicle 获取最后方的车辆
// 返回：车辆与是否存在
func (s *Segment) LastVehicle() (entity.IVehicle, bool) {
	return s.vehicles.Back()
}

// VehicleCount 获取路段上的车辆数
func (s *Segment) VehicleCount() int {
	return s.vehicles.Len()
}

// PushVehicle 车辆进入路段（队尾）
// 说明：新进入的车辆位置一定不大于已有车辆，排在队尾
func (s *Segment) PushVehicle(v entity.IVehicle) {
	s.vehicles.PushBack(v)
}

// PopVehicle 最前方车辆离开路段（队首）
// 说明：队列为空时panic
func (s *Segment) PopVehicle() entity.IVehicle {
	return s.vehicles.PopFront()
}
