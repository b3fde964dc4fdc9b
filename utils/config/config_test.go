package config_test

import (
	"testing"

	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestUnmarshalStrict(t *testing.T) {
	data := `
control:
  step:
    start: 0
    total: 1200
    interval: 0.1
  seed: 7
segments:
  - type: straight
    points: [[0, 0], [100, 0]]
  - type: cubic
    points: [[100, 0], [150, 0], [150, 50], [100, 50]]
vehicles:
  - path: [0]
    v: 12
    b_max: 5.0
signals:
  - segment: 0
    green: 20
    stop_position: 80
output:
  uri: mongodb://localhost:27017
  db: sim
  col: motions
`
	var c config.Config
	require.NoError(t, yaml.UnmarshalStrict([]byte(data), &c))

	assert.Equal(t, int32(1200), c.Control.Step.Total)
	assert.Equal(t, 0.1, c.Control.Step.Interval)
	assert.Equal(t, uint64(7), c.Control.Seed)

	require.Len(t, c.Segments, 2)
	assert.Equal(t, "cubic", c.Segments[1].Type)
	assert.Len(t, c.Segments[1].Points, 4)

	require.Len(t, c.Vehicles, 1)
	assert.Equal(t, 12.0, c.Vehicles[0].V)
	assert.Equal(t, 5.0, c.Vehicles[0].MaxBrakingA)

	require.Len(t, c.Signals, 1)
	assert.Equal(t, 20.0, c.Signals[0].GreenDuration)
	require.NotNil(t, c.Signals[0].StopPosition)
	assert.Equal(t, 80.0, *c.Signals[0].StopPosition)

	require.NotNil(t, c.Output)
	assert.Equal(t, "sim", c.Output.DB)
}

func TestUnmarshalStrictRejectsUnknownField(t *testing.T) {
	data := `
control:
  step:
    start: 0
    total: 10
    interval: 1
  bogus: true
`
	var c config.Config
	assert.Error(t, yaml.UnmarshalStrict([]byte(data), &c))
}

func TestRuntimeConfigDefaults(t *testing.T) {
	rc := config.NewRuntimeConfig(config.Config{
		Output: &config.Output{URI: "mongodb://localhost:27017", DB: "sim", Col: "motions"},
	})
	assert.Equal(t, 1./60, rc.C.Step.Interval)
	assert.Equal(t, 256, rc.All.Output.Batch)
	assert.Equal(t, int32(1), rc.All.Output.Interval)
}
