package segment

import (
	"fmt"

	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/geometry"
	"github.com/samber/lo"
)

// SegmentManager Segment管理器
// 功能：管理所有Segment实体，提供创建、查找等功能
// 说明：路段按创建顺序编号，下标即身份，创建后不再删除
type SegmentManager struct {
	ctx entity.ITaskContext

	segments []*Segment
}

// NewManager 创建Segment管理器实例
// 功能：初始化Segment管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的Segment管理器实例
func NewManager(ctx entity.ITaskContext) *SegmentManager {
	return &SegmentManager{
		ctx:      ctx,
		segments: make([]*Segment, 0),
	}
}

// Create 根据几何曲线创建路段
// 功能：创建Segment对象并按创建顺序分配下标
// 参数：curve-几何曲线
// 返回：新创建的Segment实例
func (m *SegmentManager) Create(curve geometry.Curve) entity.ISegment {
	s := newSegment(m.ctx, len(m.segments), curve)
	m.segments = append(m.segments, s)
	return s
}

// Get 根据下标获取Segment实例
// 功能：通过路段下标查找对应的Segment对象，如果不存在则panic
// 参数：index-路段下标
// 返回：对应的Segment实例，如果不存在则panic
func (m *SegmentManager) Get(index int) entity.ISegment {
	if index < 0 || index >= len(m.segments) {
		log.Panicf("no index %d in segment data", index)
		return nil
	}
	return m.segments[index]
}

// GetOrError 根据下标获取Segment实例（带错误处理）
// 功能：通过路段下标查找对应的Segment对象，如果不存在则返回错误
// 参数：index-路段下标
// 返回：Segment实例和错误信息，如果不存在则返回nil和错误
func (m *SegmentManager) GetOrError(index int) (entity.ISegment, error) {
	if index < 0 || index >= len(m.segments) {
		return nil, fmt.Errorf("no index %d in segment data", index)
	}
	return m.segments[index], nil
}

// Count 获取路段数
func (m *SegmentManager) Count() int {
	return len(m.segments)
}

// All 获取全部路段（按下标顺序）
func (m *SegmentManager) All() []entity.ISegment {
	return lo.Map(m.segments, func(s *Segment, _ int) entity.ISegment { return s })
}
