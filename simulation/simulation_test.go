package simulation_test

import (
	"testing"

	cgeo "git.fiblab.net/general/common/v2/geometry"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/simulation"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

const dt = 1. / 60

func ptr(v float64) *float64 { return &v }

func TestVehicleStopsAtRed(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 200, Y: 0})
	_, err := s.CreateSignal(config.Signal{
		Segment: 0, GreenDuration: 0.1, YellowDur: 0.1, RedDuration: 30,
		StopPosition: ptr(100),
	})
	require.NoError(t, err)
	v, err := s.CreateVehicle(config.Vehicle{Path: []int{0}, X: 10, V: 15})
	require.NoError(t, err)

	// 10秒后红灯已久，车辆应停在停车线前
	s.Run(600)
	assert.Less(t, v.S(), 100.0)
	assert.InDelta(t, 0, v.V(), 0.1)
}

func TestVehicleStopsAtCustomStopPosition(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 200, Y: 0})
	_, err := s.CreateSignal(config.Signal{
		Segment: 0, GreenDuration: 0.1, YellowDur: 0.1, RedDuration: 30,
		StopPosition: ptr(50),
	})
	require.NoError(t, err)
	v, err := s.CreateVehicle(config.Vehicle{Path: []int{0}, X: 10, V: 10})
	require.NoError(t, err)

	s.Run(600)
	assert.Less(t, v.S(), 50.0)
}

func TestVehicleResumesOnGreen(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 200, Y: 0})
	sig, err := s.CreateSignal(config.Signal{
		Segment: 0, GreenDuration: 5, YellowDur: 0.1, RedDuration: 5,
		StopPosition: ptr(100),
	})
	require.NoError(t, err)
	v, err := s.CreateVehicle(config.Vehicle{Path: []int{0}, X: 90, V: 0})
	require.NoError(t, err)

	// 绿灯期间车辆越过停车线，红灯开始后被虚拟车拦停
	s.Run(320)
	require.Equal(t, entity.SignalStateRed, sig.State())

	// 回到绿灯后重新加速
	s.Run(300)
	require.Equal(t, entity.SignalStateGreen, sig.State())
	s.Run(120)
	assert.Greater(t, v.V(), 1.0)
}

func TestThreeVehicleQueueAtRed(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 300, Y: 0})
	sig, err := s.CreateSignal(config.Signal{
		Segment: 0, GreenDuration: 5, YellowDur: 0.1, RedDuration: 10,
		StopPosition: ptr(200),
	})
	require.NoError(t, err)

	vehicles := make([]entity.IVehicle, 0, 3)
	for _, x := range []float64{50, 30, 10} {
		v, err := s.CreateVehicle(config.Vehicle{Path: []int{0}, X: x, V: 15})
		require.NoError(t, err)
		vehicles = append(vehicles, v)
	}

	// 每步检查队列顺序不变式：从前到后位置单调不增
	for i := 0; i < 900; i++ {
		s.Step()
		queue := s.SegmentManager().Get(0).Vehicles()
		for j := 1; j < len(queue); j++ {
			assert.GreaterOrEqual(t, queue[j-1].S(), queue[j].S())
		}
	}

	// 红灯下所有车辆都停在停车线前
	require.Equal(t, entity.SignalStateRed, sig.State())
	for _, v := range vehicles {
		assert.Less(t, v.S(), 200.0)
	}

	// 回到绿灯后全部恢复行驶
	for i := 0; i < 2000; i++ {
		s.Step()
		if sig.State() == entity.SignalStateGreen {
			break
		}
	}
	require.Equal(t, entity.SignalStateGreen, sig.State())
	s.Run(300)
	for _, v := range vehicles {
		assert.Greater(t, v.V(), 0.5)
	}
}

func TestBoundaryCrossing(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 100, Y: 0})
	s.CreateStraight(cgeo.Point{X: 100, Y: 0}, cgeo.Point{X: 200, Y: 0})
	v, err := s.CreateVehicle(config.Vehicle{Path: []int{0, 1}, X: 90, V: 10})
	require.NoError(t, err)

	// 2秒后车辆应已进入第二个路段
	s.Run(120)
	assert.Equal(t, 1, v.SegmentIndex())
	assert.Equal(t, 1, v.PathIndex())
	assert.Equal(t, 0, s.SegmentManager().Get(0).VehicleCount())
	assert.Equal(t, 1, s.SegmentManager().Get(1).VehicleCount())
	assert.Greater(t, v.S(), 0.0)
}

func TestVehicleRemovedAtPathEnd(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 50, Y: 0})
	v, err := s.CreateVehicle(config.Vehicle{Path: []int{0}, X: 45, V: 10})
	require.NoError(t, err)

	s.Run(60)
	assert.Equal(t, 0, s.VehicleManager().Count())
	assert.Equal(t, 0, s.SegmentManager().Get(0).VehicleCount())
	_, err = s.VehicleManager().GetOrError(v.ID())
	assert.Error(t, err)
}

func TestVehicleCreationErrors(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 100, Y: 0})

	_, err := s.CreateVehicle(config.Vehicle{Path: []int{}})
	assert.Error(t, err)
	_, err = s.CreateVehicle(config.Vehicle{Path: []int{1}})
	assert.Error(t, err)
	_, err = s.CreateVehicle(config.Vehicle{Path: []int{0, 5}})
	assert.Error(t, err)
	_, err = s.CreateVehicle(config.Vehicle{Path: []int{0}, MaxBrakingA: -1})
	assert.Error(t, err)
}

func TestSegmentCreationErrors(t *testing.T) {
	s := simulation.New(dt)

	_, err := s.CreateSegmentFromConfig(config.Segment{Type: "circle", Points: [][]float64{{0, 0}, {1, 1}}})
	assert.Error(t, err)
	_, err = s.CreateSegmentFromConfig(config.Segment{Type: "straight", Points: [][]float64{{0, 0}}})
	assert.Error(t, err)
	_, err = s.CreateSegmentFromConfig(config.Segment{Type: "quadratic", Points: [][]float64{{0, 0}, {1, 1}}})
	assert.Error(t, err)
	_, err = s.CreateSegmentFromConfig(config.Segment{Type: "cubic", Points: [][]float64{{0, 0}, {1, 1}, {2, 2}}})
	assert.Error(t, err)
	_, err = s.CreateSegmentFromConfig(config.Segment{Type: "straight", Points: [][]float64{{0}, {1, 1}}})
	assert.Error(t, err)

	seg, err := s.CreateSegmentFromConfig(config.Segment{Type: "straight", Points: [][]float64{{0, 0}, {100, 0}}})
	require.NoError(t, err)
	assert.Equal(t, 100.0, seg.Length())
}

func TestGeneratedVehiclesStopAtSignal(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 300, Y: 0})
	_, err := s.CreateSignal(config.Signal{
		Segment: 0, GreenDuration: 0.1, YellowDur: 0.1, RedDuration: 60,
		StopPosition: ptr(200),
	})
	require.NoError(t, err)
	err = s.CreateGenerator(config.Generator{
		Rate: 60,
		Templates: []config.GeneratorTemplate{
			{Weight: 1, Vehicle: config.Vehicle{Path: []int{0}}},
		},
	})
	require.NoError(t, err)

	s.Run(1800)
	vehicles := s.SegmentManager().Get(0).Vehicles()
	assert.Greater(t, len(vehicles), 1)
	for _, v := range vehicles {
		assert.Less(t, v.S(), 200.0)
	}
}

func TestGeneratorCreationErrors(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 100, Y: 0})

	err := s.CreateGenerator(config.Generator{Rate: 60})
	assert.Error(t, err)
	err = s.CreateGenerator(config.Generator{
		Rate:      60,
		Templates: []config.GeneratorTemplate{{Weight: 0, Vehicle: config.Vehicle{Path: []int{0}}}},
	})
	assert.Error(t, err)
	err = s.CreateGenerator(config.Generator{
		Rate:      60,
		Templates: []config.GeneratorTemplate{{Weight: 1, Vehicle: config.Vehicle{Path: []int{3}}}},
	})
	assert.Error(t, err)
}

func TestClockAdvances(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 100, Y: 0})

	assert.Equal(t, int32(0), s.Clock().InternalStep)
	s.Run(600)
	assert.Equal(t, int32(600), s.Clock().InternalStep)
	assert.InDelta(t, 10.0, s.Clock().T, 1e-9)
}

func TestVehicleMotions(t *testing.T) {
	s := simulation.New(dt)
	s.CreateStraight(cgeo.Point{X: 0, Y: 0}, cgeo.Point{X: 0, Y: 100})
	v, err := s.CreateVehicle(config.Vehicle{Path: []int{0}, X: 40, V: 5})
	require.NoError(t, err)

	motions := s.VehicleMotions()
	require.Len(t, motions, 1)
	assert.Equal(t, v.ID(), motions[0].ID)
	assert.Equal(t, 0, motions[0].Segment)
	assert.InDelta(t, 40, motions[0].S, 1e-9)
	assert.InDelta(t, 0, motions[0].X, 1e-9)
	assert.InDelta(t, 40, motions[0].Y, 1e-9)
}

func TestNewFromConfigYAML(t *testing.T) {
	data := `
control:
  step:
    start: 0
    total: 600
    interval: 0.016666666666666666
  seed: 43
segments:
  - type: straight
    points: [[0, 0], [200, 0]]
  - type: quadratic
    points: [[200, 0], [300, 0], [300, 100]]
vehicles:
  - path: [0, 1]
    x: 10
    v: 15
signals:
  - segment: 0
    green: 0.1
    yellow: 0.1
    red: 30
    stop_position: 100
generators:
  - rate: 30
    templates:
      - weight: 1
        vehicle:
          path: [0]
`
	var c config.Config
	require.NoError(t, yaml.UnmarshalStrict([]byte(data), &c))

	s, err := simulation.NewFromConfig(c)
	require.NoError(t, err)
	assert.Equal(t, 2, s.SegmentManager().Count())
	assert.Equal(t, 1, s.VehicleManager().Count())
	assert.Equal(t, 1, s.SignalManager().Count())
	assert.Equal(t, int32(600), s.Clock().END_STEP)

	s.Run(600)
	// 红灯把首车拦在停车线前
	front, ok := s.SegmentManager().Get(0).FrontVehicle()
	require.True(t, ok)
	assert.Less(t, front.S(), 100.0)
}

func TestNewFromConfigBadConfig(t *testing.T) {
	_, err := simulation.NewFromConfig(config.Config{
		Segments: []config.Segment{{Type: "straight", Points: [][]float64{{0, 0}}}},
	})
	assert.Error(t, err)

	_, err = simulation.NewFromConfig(config.Config{
		Segments: []config.Segment{{Type: "straight", Points: [][]float64{{0, 0}, {100, 0}}}},
		Signals:  []config.Signal{{Segment: 4}},
	})
	assert.Error(t, err)
}
