package geometry

import (
	cgeo "git.fiblab.net/general/common/v2/geometry"
)

// NewStraight 创建直线路段几何
// 功能：根据起点与终点构建直线曲线
// 参数：start-起点坐标，end-终点坐标
// 返回：曲线对象
func NewStraight(start, end cgeo.Point) Curve {
	return newPolylineCurve([]cgeo.Point{start, end})
}
