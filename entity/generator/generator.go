package generator

import (
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity/vehicle"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/randengine"
	"github.com/samber/lo"
)

// defaultRate 默认生成速率（辆/分钟）
const defaultRate = 20.

// VehicleGenerator 车辆生成器
// 功能：按速率周期性地从加权模板集合中抽取车辆注入路网
// 说明：注入前检查入口路段队尾车辆是否已驶出足够距离，
// 空间不足时跳过本次注入并重新抽取模板，时间条件保持满足，
// 下一步会再次尝试
type VehicleGenerator struct {
	ctx    entity.ITaskContext
	engine *randengine.Engine

	rate      float64
	templates []config.GeneratorTemplate
	weights   []float64

	lastAddedTime float64
	upcoming      config.Vehicle
}

// newVehicleGenerator 创建并初始化一个新的VehicleGenerator实例
// 功能：根据配置创建VehicleGenerator对象并抽取第一辆待注入车辆
// 参数：ctx-任务上下文，engine-随机数引擎，c-生成器配置
// 返回：初始化完成的VehicleGenerator实例
func newVehicleGenerator(ctx entity.ITaskContext, engine *randengine.Engine, c config.Generator) *VehicleGenerator {
	g := &VehicleGenerator{
		ctx:       ctx,
		engine:    engine,
		rate:      lo.Ternary(c.Rate != 0, c.Rate, defaultRate),
		templates: c.Templates,
		weights: lo.Map(c.Templates, func(t config.GeneratorTemplate, _ int) float64 {
			return t.Weight
		}),
	}
	g.upcoming = g.pickTemplate()
	return g
}

// pickTemplate 按权重抽取一个车辆模板
// 说明：生成器注入的车辆总是从入口路段起点出发
func (g *VehicleGenerator) pickTemplate() config.Vehicle {
	c := g.templates[g.engine.DiscreteDistribution(g.weights)].Vehicle
	c.X = 0
	c.V = 0
	return c
}

// update 生成器的单步更新
// 算法说明：
//  1. 距上次注入不足60/rate秒时不注入
//  2. 检查入口路段队尾车辆：队列为空，或队尾车辆位置已大于
//     待注入车辆的s0+l时注入，否则跳过
//  3. 无论是否注入成功，都重新抽取下一辆待注入车辆
func (g *VehicleGenerator) update() {
	t := g.ctx.Clock().T
	if t-g.lastAddedTime < 60/g.rate {
		return
	}
	segment := g.ctx.SegmentManager().Get(g.upcoming.Path[0])
	attr := vehicle.ResolveAttr(g.upcoming)
	if last, ok := segment.LastVehicle(); !ok || last.S() > attr.MinGap+attr.Length {
		if _, err := g.ctx.VehicleManager().Create(g.upcoming); err != nil {
			// 模板在生成器创建时已校验，这里只可能是属性非法
			log.Errorf("generator: create vehicle: %v", err)
		} else {
			g.lastAddedTime = t
		}
	}
	g.upcoming = g.pickTemplate()
}
