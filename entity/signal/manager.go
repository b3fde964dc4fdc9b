package signal

import (
	"fmt"
	"sort"

	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
)

// SignalManager TrafficSignal管理器
// 功能：管理所有TrafficSignal实体，提供创建、查找、更新等功能
// 说明：以被管控的路段下标为键，一个路段最多一个信号灯
type SignalManager struct {
	ctx entity.ITaskContext

	data map[int]*TrafficSignal
}

// NewManager 创建TrafficSignal管理器实例
// 功能：初始化TrafficSignal管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的TrafficSignal管理器实例
func NewManager(ctx entity.ITaskContext) *SignalManager {
	return &SignalManager{
		ctx:  ctx,
		data: make(map[int]*TrafficSignal),
	}
}

// Create 根据配置创建信号灯
// 功能：校验路段下标并创建TrafficSignal对象
// 参数：c-信号灯配置
// 返回：新创建的TrafficSignal实例，路段下标越界时返回error
// 说明：同一路段重复创建时新信号灯替换旧信号灯
func (m *SignalManager) Create(c config.Signal) (entity.ISignal, error) {
	segment, err := m.ctx.SegmentManager().GetOrError(c.Segment)
	if err != nil {
		return nil, fmt.Errorf(
			"signal segment index %d is out of range (0..%d)",
			c.Segment, m.ctx.SegmentManager().Count()-1,
		)
	}
	if _, ok := m.data[c.Segment]; ok {
		log.Warnf("signal on segment %d is replaced", c.Segment)
	}
	s := newTrafficSignal(m.ctx, segment, c)
	m.data[c.Segment] = s
	return s, nil
}

// GetOrNil 查找管控指定路段的信号灯
// 参数：segmentIndex-路段下标
// 返回：信号灯，不存在时为nil
func (m *SignalManager) GetOrNil(segmentIndex int) entity.ISignal {
	if s, ok := m.data[segmentIndex]; ok {
		return s
	}
	return nil
}

// Update 更新全部信号灯
// 功能：推进所有信号灯的相位时钟并更新虚拟车
// 参数：dt-时间步长（秒）
// 说明：按路段下标升序遍历，保证结果与遍历顺序无关且可复现
func (m *SignalManager) Update(dt float64) {
	indices := make([]int, 0, len(m.data))
	for index := range m.data {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	for _, index := range indices {
		m.data[index].Update(dt)
	}
}

// Count 获取信号灯数
func (m *SignalManager) Count() int {
	return len(m.data)
}
