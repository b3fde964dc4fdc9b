package simulation

import (
	"flag"
	"fmt"

	cgeo "git.fiblab.net/general/common/v2/geometry"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/clock"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity/generator"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity/segment"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity/signal"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity/vehicle"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/geometry"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/randengine"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// Simulation 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态
// 说明：持有时钟与各管理器，对外提供构建路网、推进仿真、
// 读取仿真状态的接口；所有仿真状态只能通过Step在步内串行变更
type Simulation struct {
	// 时钟
	clk *clock.Clock
	// 随机数引擎
	engine *randengine.Engine

	// Segment管理器
	segmentManager entity.ISegmentManager
	// Vehicle管理器
	vehicleManager entity.IVehicleManager
	// TrafficSignal管理器
	signalManager entity.ISignalManager
	// VehicleGenerator管理器
	generatorManager entity.IGeneratorManager

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig
}

// New 创建空的仿真任务上下文
// 功能：以指定时间步长初始化仿真系统，路网为空
// 参数：dt-时间步长（秒）
// 返回：初始化完成的Simulation实例
func New(dt float64) *Simulation {
	return newSimulation(config.Config{
		Control: config.Control{Step: config.ControlStep{Interval: dt}},
	})
}

// NewFromConfig 根据配置创建仿真任务上下文
// 功能：按配置依次构建路段、车辆、信号灯与车辆生成器
// 参数：c-场景配置
// 返回：初始化完成的Simulation实例，配置非法时返回error
func NewFromConfig(c config.Config) (*Simulation, error) {
	s := newSimulation(c)
	for i, sc := range c.Segments {
		if _, err := s.CreateSegmentFromConfig(sc); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	for i, vc := range c.Vehicles {
		if _, err := s.CreateVehicle(vc); err != nil {
			return nil, fmt.Errorf("vehicle %d: %w", i, err)
		}
	}
	for i, sc := range c.Signals {
		if _, err := s.CreateSignal(sc); err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, err)
		}
	}
	for i, gc := range c.Generators {
		if err := s.CreateGenerator(gc); err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
	}
	return s, nil
}

func newSimulation(c config.Config) *Simulation {
	s := &Simulation{}
	s.runtimeConfig = config.NewRuntimeConfig(c)
	s.clk = clock.New(s.runtimeConfig.C.Step)
	s.engine = randengine.New(s.runtimeConfig.C.Seed)

	// 新建各类模拟对象
	s.segmentManager = segment.NewManager(s)
	s.vehicleManager = vehicle.NewManager(s)
	s.signalManager = signal.NewManager(s)
	s.generatorManager = generator.NewManager(s, s.engine)
	return s
}

// Clock 获取时钟
func (s *Simulation) Clock() *clock.Clock {
	return s.clk
}

// SegmentManager 获取Segment管理器
func (s *Simulation) SegmentManager() entity.ISegmentManager {
	return s.segmentManager
}

// VehicleManager 获取Vehicle管理器
func (s *Simulation) VehicleManager() entity.IVehicleManager {
	return s.vehicleManager
}

// SignalManager 获取TrafficSignal管理器
func (s *Simulation) SignalManager() entity.ISignalManager {
	return s.signalManager
}

// RuntimeConfig 获取运行时配置
func (s *Simulation) RuntimeConfig() *config.RuntimeConfig {
	return s.runtimeConfig
}

// CreateStraight 创建直线路段
// 参数：start-起点，end-终点
// 返回：新创建的路段
func (s *Simulation) CreateStraight(start, end cgeo.Point) entity.ISegment {
	return s.segmentManager.Create(geometry.NewStraight(start, end))
}

// CreateQuadraticCurve 创建二次贝塞尔曲线路段
// 参数：start-起点，control-控制点，end-终点
// 返回：新创建的路段
func (s *Simulation) CreateQuadraticCurve(start, control, end cgeo.Point) entity.ISegment {
	return s.segmentManager.Create(geometry.NewQuadraticBezier(start, control, end))
}

// CreateCubicCurve 创建三次贝塞尔曲线路段
// 参数：start-起点，control1、control2-控制点，end-终点
// 返回：新创建的路段
func (s *Simulation) CreateCubicCurve(start, control1, control2, end cgeo.Point) entity.ISegment {
	return s.segmentManager.Create(geometry.NewCubicBezier(start, control1, control2, end))
}

// CreateSegmentFromConfig 根据配置创建路段
// 功能：按类型与控制点数量构建对应的几何曲线
// 参数：c-路段配置
// 返回：新创建的路段，类型或控制点数量非法时返回error
func (s *Simulation) CreateSegmentFromConfig(c config.Segment) (entity.ISegment, error) {
	points := make([]cgeo.Point, 0, len(c.Points))
	for i, p := range c.Points {
		if len(p) < 2 {
			return nil, fmt.Errorf("point %d needs 2 coordinates, got %d", i, len(p))
		}
		points = append(points, cgeo.Point{X: p[0], Y: p[1]})
	}
	switch c.Type {
	case "straight":
		if len(points) != 2 {
			return nil, fmt.Errorf("straight segment needs 2 points, got %d", len(points))
		}
		return s.CreateStraight(points[0], points[1]), nil
	case "quadratic":
		if len(points) != 3 {
			return nil, fmt.Errorf("quadratic segment needs 3 points, got %d", len(points))
		}
		return s.CreateQuadraticCurve(points[0], points[1], points[2]), nil
	case "cubic":
		if len(points) != 4 {
			return nil, fmt.Errorf("cubic segment needs 4 points, got %d", len(points))
		}
		return s.CreateCubicCurve(points[0], points[1], points[2], points[3]), nil
	default:
		return nil, fmt.Errorf("unknown segment type %q", c.Type)
	}
}

// CreateVehicle 根据配置创建车辆
func (s *Simulation) CreateVehicle(c config.Vehicle) (entity.IVehicle, error) {
	return s.vehicleManager.Create(c)
}

// CreateSignal 根据配置创建信号灯
func (s *Simulation) CreateSignal(c config.Signal) (entity.ISignal, error) {
	return s.signalManager.Create(c)
}

// CreateGenerator 根据配置创建车辆生成器
func (s *Simulation) CreateGenerator(c config.Generator) error {
	return s.generatorManager.Create(c)
}

// Step 推进一个仿真步
// 功能：仿真的核心单步更新，严格按固定顺序执行
// 算法说明：
//  1. 更新全部信号灯：保证车辆更新读到本步最终的虚拟车状态
//  2. 逐路段从前到后更新车辆：队首车辆的前车为信号灯虚拟车
//     （存在时），其余车辆的前车为队列中的前一辆；路段之间相互
//     独立，车辆不会跨路段看到前车
//  3. 路段边界处理：每个路段每步只处理队首车辆，位置达到路段
//     长度时弹出，有后续路段则位置归零进入下一路段队尾，否则
//     从车辆表中删除
//  4. 更新车辆生成器
//  5. 推进全局时钟
//
// 说明：每步每路段只处理一次边界，车辆一步至多跨越一个路段，
// 调用方选择dt时需保证v_max*dt小于最短路段长度
func (s *Simulation) Step() {
	if interval := int32(*heartBeatInterval); s.clk.InternalStep%interval == 0 {
		hour, minute, second := s.clk.GetHourMinuteSecond()
		log.Infof(
			"STEP: %d(%d:%d:%.2f)",
			s.clk.InternalStep,
			hour, minute, second,
		)
	}

	dt := s.clk.DT

	// 信号灯
	s.signalManager.Update(dt)

	// 车辆
	for _, seg := range s.segmentManager.All() {
		vehicles := seg.Vehicles()
		if len(vehicles) == 0 {
			continue
		}
		var leader entity.ILeader
		if sig := s.signalManager.GetOrNil(seg.ID()); sig != nil {
			leader = sig.Phantom()
		}
		for _, v := range vehicles {
			v.Update(dt, leader)
			leader = v
		}
	}

	// 路段边界
	for _, seg := range s.segmentManager.All() {
		front, ok := seg.FrontVehicle()
		if !ok {
			continue
		}
		if front.S() >= seg.Length() {
			seg.PopVehicle()
			if front.HasNextSegment() {
				front.MoveToNextSegment()
				s.segmentManager.Get(front.SegmentIndex()).PushVehicle(front)
			} else {
				s.vehicleManager.Remove(front.ID())
			}
		}
	}

	// 车辆生成器
	s.generatorManager.Update()

	// 时钟
	s.clk.Tick()
}

// Run 连续推进若干仿真步
// 参数：steps-步数
func (s *Simulation) Run(steps int) {
	for i := 0; i < steps; i++ {
		s.Step()
	}
}

// VehicleMotion 车辆运动快照
// 功能：用于展示与结果输出的车辆状态，含路段几何换算出的坐标
type VehicleMotion struct {
	Step      int32   `bson:"step"`
	T         float64 `bson:"t"`
	ID        int32   `bson:"id"`
	Segment   int     `bson:"segment"`
	S         float64 `bson:"s"`
	V         float64 `bson:"v"`
	A         float64 `bson:"a"`
	X         float64 `bson:"x"`
	Y         float64 `bson:"y"`
	Direction float64 `bson:"direction"`
}

// VehicleMotions 获取全部车辆的运动快照
// 功能：遍历车辆表，将路段s坐标换算为xy坐标与朝向
// 返回：按车辆ID升序的快照列表
// 说明：只读接口，应在Step完成后调用
func (s *Simulation) VehicleMotions() []VehicleMotion {
	vehicles := s.vehicleManager.All()
	motions := make([]VehicleMotion, 0, len(vehicles))
	for _, v := range vehicles {
		seg := s.segmentManager.Get(v.SegmentIndex())
		pos := seg.GetPositionByS(v.S())
		motions = append(motions, VehicleMotion{
			Step:      s.clk.InternalStep,
			T:         s.clk.T,
			ID:        v.ID(),
			Segment:   seg.ID(),
			S:         v.S(),
			V:         v.V(),
			A:         v.A(),
			X:         pos.X,
			Y:         pos.Y,
			Direction: seg.GetDirectionByS(v.S()),
		})
	}
	return motions
}
