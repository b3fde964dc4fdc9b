package main

import (
	"encoding/base64"
	"flag"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/simulation"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/config"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/utils/output"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	// 配置文件路径
	configPath = flag.String("config", "", "config file path")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "main")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取配置
	var c config.Config
	var file []byte
	var err error
	if *configPath != "" {
		file, err = os.ReadFile(*configPath)
		if err != nil {
			log.Panicf("config file load err: %v", err)
		}
	} else if *configData != "" {
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			log.Panicf("config data load err: %v", err)
		}
	} else {
		log.Panic("config file or config data must be specified")
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		log.Panicf("config file load err: %v", err)
	}
	log.Infof("%+v", c)

	sim, err := simulation.NewFromConfig(c)
	if err != nil {
		log.Panicf("build simulation err: %v", err)
	}

	run(sim, c)
}

// run 运行主循环
// 功能：推进仿真到结束步，按配置记录车辆运动数据
func run(sim *simulation.Simulation, c config.Config) {
	recorder := newRecorderOrNil(c)
	if recorder != nil {
		defer recorder.Close()
	}

	clk := sim.Clock()
	for clk.InternalStep < clk.END_STEP {
		sim.Step()
		if recorder != nil && recorder.ShouldRecord(clk.InternalStep) {
			recorder.Record(lo.Map(
				sim.VehicleMotions(),
				func(m simulation.VehicleMotion, _ int) interface{} { return m },
			))
		}
	}
	log.Infof("simulation finished at step %d (%s), %d vehicles on the road",
		clk.InternalStep, clk, sim.VehicleManager().Count())
}

// newRecorderOrNil 按配置创建结果记录器
// 返回：未配置输出时为nil
func newRecorderOrNil(c config.Config) *output.Recorder {
	if c.Output == nil {
		return nil
	}
	return output.NewRecorder(*c.Output)
}
