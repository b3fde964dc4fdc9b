package generator

import (
	"fmt"

	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/randengine"
)

// GeneratorManager VehicleGenerator管理器
// 功能：管理所有VehicleGenerator实体，提供创建、更新等功能
type GeneratorManager struct {
	ctx    entity.ITaskContext
	engine *randengine.Engine

	generators []*VehicleGenerator
}

// NewManager 创建VehicleGenerator管理器实例
// 功能：初始化VehicleGenerator管理器
// 参数：ctx-任务上下文，engine-随机数引擎
// 返回：新创建的VehicleGenerator管理器实例
func NewManager(ctx entity.ITaskContext, engine *randengine.Engine) *GeneratorManager {
	return &GeneratorManager{
		ctx:        ctx,
		engine:     engine,
		generators: make([]*VehicleGenerator, 0),
	}
}

// Create 根据配置创建车辆生成器
// 功能：校验模板并创建VehicleGenerator对象
// 参数：c-生成器配置
// 返回：模板为空、权重非正或模板路径非法时返回error
func (m *GeneratorManager) Create(c config.Generator) error {
	if len(c.Templates) == 0 {
		return fmt.Errorf("generator has no vehicle templates")
	}
	for i, t := range c.Templates {
		if t.Weight <= 0 {
			return fmt.Errorf("generator template %d has non-positive weight %v", i, t.Weight)
		}
		if len(t.Vehicle.Path) == 0 {
			return fmt.Errorf("generator template %d has empty path", i)
		}
		for _, index := range t.Vehicle.Path {
			if _, err := m.ctx.SegmentManager().GetOrError(index); err != nil {
				return fmt.Errorf("generator template %d contains bad segment index %d: %w", i, index, err)
			}
		}
	}
	m.generators = append(m.generators, newVehicleGenerator(m.ctx, m.engine, c))
	return nil
}

// Update 更新全部生成器
// 功能：按创建顺序依次尝试注入车辆
func (m *GeneratorManager) Update() {
	for _, g := range m.generators {
		g.update()
	}
}
