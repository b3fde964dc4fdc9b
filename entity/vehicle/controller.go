package vehicle

import (
	"math"

	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/hatakesamadireddi1-dev/trafficSimulator/entity"
)

// idmTheta IDM自由流项的速度指数
const idmTheta = 4.

// controller 车辆跟驰控制器
// 功能：基于IDM模型计算车辆加速度
type controller struct {
	attr entity.VehicleAttribute
}

// freeRoad 自由流加速度
// 功能：前方无车时计算趋近最大速度的加速度
// 参数：v-当前速度
// 返回：加速度
// 说明：a = a_max * (1 - (v/v_max)^4)，速度越接近上限加速越弱
func (c *controller) freeRoad(v float64) float64 {
	return c.attr.MaxA * (1 - math.Pow(v/c.attr.MaxV, idmTheta))
}

// follow 跟驰加速度
// 功能：根据前车状态计算IDM加速度
// 参数：v-当前速度，leader-前车，selfX-当前位置
// 返回：加速度
// 算法说明：
// 1. 计算净距离：distance = 前车位置 - 前车车长 - 本车位置
// 2. 距离不大于0时视为碰撞，输出负无穷加速度强制停车
// 3. 计算期望车距：s_star = s0 + max(0, v*T + v*(v-v_ahead)/(2*sqrt(a_max*b_max)))
// 4. 加速度 = a_max * (1 - (v/v_max)^4 - (s_star/distance)^2)
func (c *controller) follow(v float64, leader entity.ILeader, selfX float64) float64 {
	distance := leader.S() - leader.Length() - selfX
	if distance <= 0 {
		return -mathutil.INF
	}
	sStar := c.attr.MinGap + math.Max(
		0,
		v*c.attr.Headway+v*(v-leader.V())/2/math.Sqrt(c.attr.MaxA*c.attr.MaxBrakingA),
	)
	return c.attr.MaxA * (1 - math.Pow(v/c.attr.MaxV, idmTheta) - math.Pow(sStar/distance, 2))
}
