package entity

import (
	"github.com/hatakesamadireddi1-dev/trafficSimulator/clock"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
)

type ITaskContext interface {
	Clock() *clock.Clock
	SegmentManager() ISegmentManager
	VehicleManager() IVehicleManager
	SignalManager() ISignalManager
	RuntimeConfig() *config.RuntimeConfig
}
