package signal

import (
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
	"github.com/samber/lo"
)

// 信号灯相位时长默认值（秒）
const (
	defaultGreenDuration  = 10.
	defaultYellowDuration = 3.
	defaultRedDuration    = 10.
)

// stoppedVThreshold 车辆视为已停下的速度阈值（米/秒）
const stoppedVThreshold = 0.05

// phantomVehicle 停车线处的虚拟车
// 功能：作为跟驰模型的前车使真实车辆在停车线前制动
// 说明：零长度、零速度、位置固定，不进入路段队列也不参与更新
type phantomVehicle struct {
	s float64
}

func (p *phantomVehicle) S() float64      { return p.s }
func (p *phantomVehicle) V() float64      { return 0 }
func (p *phantomVehicle) Length() float64 { return 0 }

// TrafficSignal 信号灯实体
// 功能：以绿-黄-红循环管控一个路段上的车流
// 说明：通过在停车线处放置虚拟车复用跟驰模型的制动逻辑；
// 黄灯期间用滞回锁防止虚拟车在制动距离边界附近反复出现和消失
type TrafficSignal struct {
	ctx entity.ITaskContext

	segment entity.ISegment

	greenDuration  float64
	yellowDuration float64
	redDuration    float64

	// 配置的停车线位置，nil表示取路段长度，首次更新时解析
	configuredStop   *float64
	stopPosition     float64
	positionResolved bool

	cycleTime  float64
	state      entity.SignalState
	phantom    *phantomVehicle
	yellowHold bool // 黄灯滞回锁
}

// newTrafficSignal 创建并初始化一个新的TrafficSignal实例
// 功能：根据配置创建TrafficSignal对象，补全相位时长默认值
// 参数：ctx-任务上下文，segment-被管控的路段，c-信号灯配置
// 返回：初始化完成的TrafficSignal实例
// 说明：初始相位为绿灯，停车线位置在首次更新时解析
func newTrafficSignal(ctx entity.ITaskContext, segment entity.ISegment, c config.Signal) *TrafficSignal {
	return &TrafficSignal{
		ctx:            ctx,
		segment:        segment,
		greenDuration:  lo.Ternary(c.GreenDuration != 0, c.GreenDuration, defaultGreenDuration),
		yellowDuration: lo.Ternary(c.YellowDur != 0, c.YellowDur, defaultYellowDuration),
		redDuration:    lo.Ternary(c.RedDuration != 0, c.RedDuration, defaultRedDuration),
		configuredStop: c.StopPosition,
		state:          entity.SignalStateGreen,
	}
}

// SegmentIndex 获取被管控的路段下标
func (t *TrafficSignal) SegmentIndex() int {
	return t.segment.ID()
}

// State 获取当前相位
func (t *TrafficSignal) State() entity.SignalState {
	return t.state
}

// GreenDuration 获取绿灯时长
func (t *TrafficSignal) GreenDuration() float64 {
	return t.greenDuration
}

// YellowDuration 获取黄灯时长
func (t *TrafficSignal) YellowDuration() float64 {
	return t.yellowDuration
}

// RedDuration 获取红灯时长
func (t *TrafficSignal) RedDuration() float64 {
	return t.redDuration
}

// CycleDuration 获取一个绿-黄-红周期的总时长
func (t *TrafficSignal) CycleDuration() float64 {
	return t.greenDuration + t.yellowDuration + t.redDuration
}

// StopPosition 获取停车线位置
// 说明：尚未解析时返回所在路段长度
func (t *TrafficSignal) StopPosition() float64 {
	if !t.positionResolved {
		if t.configuredStop != nil {
			return *t.configuredStop
		}
		return t.segment.Length()
	}
	return t.stopPosition
}

// Phantom 获取虚拟车
// 返回：虚拟车，不存在时为nil
func (t *TrafficSignal) Phantom() entity.ILeader {
	if t.phantom == nil {
		return nil
	}
	return t.phantom
}

// Update 推进相位时钟并更新虚拟车
// 功能：信号灯的单步更新，必须先于所有车辆更新执行
// 参数：dt-时间步长（秒）
// 算法说明：
// 1. 首次更新时解析停车线位置（未配置时取路段长度），此后不再变化
// 2. 相位时钟加dt，超过周期总时长时回绕
// 3. 按累积阈值划分相位：[0,绿)绿灯，[绿,绿+黄)黄灯，其余红灯
// 4. 根据相位更新虚拟车
func (t *TrafficSignal) Update(dt float64) {
	if !t.positionResolved {
		if t.configuredStop != nil {
			t.stopPosition = *t.configuredStop
		} else {
			t.stopPosition = t.segment.Length()
		}
		t.positionResolved = true
	}

	t.cycleTime += dt
	if t.cycleTime >= t.CycleDuration() {
		t.cycleTime -= t.CycleDuration()
	}

	switch {
	case t.cycleTime < t.greenDuration:
		t.state = entity.SignalStateGreen
	case t.cycleTime < t.greenDuration+t.yellowDuration:
		t.state = entity.SignalStateYellow
	default:
		t.state = entity.SignalStateRed
	}

	t.updatePhantom()
}

// updatePhantom 根据当前相位创建、保持或移除虚拟车
// 算法说明：
//  1. 绿灯：移除虚拟车并清除滞回锁
//  2. 红灯：虚拟车始终存在于停车线处
//  3. 黄灯：滞回——只有当某辆尚未越线的车辆无法在停车线前刹停
//     （制动距离v²/(2*b_max)大于到停车线的距离）时才触发虚拟车，
//     触发后锁保持，直到所有未越线车辆的速度降到阈值以下才释放
func (t *TrafficSignal) updatePhantom() {
	switch t.state {
	case entity.SignalStateGreen:
		t.phantom = nil
		t.yellowHold = false
	case entity.SignalStateRed:
		t.phantom = &phantomVehicle{s: t.stopPosition}
		t.yellowHold = false
	default:
		if t.yellowHold {
			if t.allBlockedVehiclesStopped() {
				t.yellowHold = false
				t.phantom = nil
			} else {
				t.phantom = &phantomVehicle{s: t.stopPosition}
			}
		} else {
			if t.anyVehicleMustStop() {
				t.yellowHold = true
				t.phantom = &phantomVehicle{s: t.stopPosition}
			} else {
				t.phantom = nil
			}
		}
	}
}

// anyVehicleMustStop 检查是否有车辆无法在停车线前刹停
// 说明：已越过停车线的车辆不参与检查；制动距离按v²/(2*b_max)估算
func (t *TrafficSignal) anyVehicleMustStop() bool {
	for _, v := range t.segment.Vehicles() {
		if v.S() >= t.stopPosition {
			continue
		}
		distanceToLine := t.stopPosition - v.S()
		brakingDistance := 0.
		if bMax := v.Attr().MaxBrakingA; bMax > 0 {
			brakingDistance = v.V() * v.V() / (2 * bMax)
		}
		if brakingDistance > distanceToLine {
			return true
		}
	}
	return false
}

// allBlockedVehiclesStopped 检查停车线前的所有车辆是否都已停下
func (t *TrafficSignal) allBlockedVehiclesStopped() bool {
	for _, v := range t.segment.Vehicles() {
		if v.S() >= t.stopPosition {
			continue
		}
		if v.V() > stoppedVThreshold {
			return false
		}
	}
	return true
}
