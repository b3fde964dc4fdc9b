package geometry

import (
	cgeo "git.fiblab.net/general/common/v2/geometry"
)

// curveSubdivisions 贝塞尔曲线离散化的均匀参数细分数
const curveSubdivisions = 300

// NewQuadraticBezier 创建二次贝塞尔曲线路段几何
// 功能：根据三个控制点构建二次贝塞尔曲线
// 参数：p0-起点，p1-控制点，p2-终点
// 返回：曲线对象
// 算法说明：
// 1. 在参数t∈[0,1]上均匀取curveSubdivisions+1个采样点
// 2. 按B(t)=(1-t)²p0+2t(1-t)p1+t²p2求值
// 3. 采样点连成折线，后续查询均基于折线弧长表
func NewQuadraticBezier(p0, p1, p2 cgeo.Point) Curve {
	line := make([]cgeo.Point, 0, curveSubdivisions+1)
	for i := 0; i <= curveSubdivisions; i++ {
		t := float64(i) / curveSubdivisions
		u := 1 - t
		line = append(line, cgeo.Point{
			X: u*u*p0.X + 2*t*u*p1.X + t*t*p2.X,
			Y: u*u*p0.Y + 2*t*u*p1.Y + t*t*p2.Y,
		})
	}
	return newPolylineCurve(line)
}

// NewCubicBezier 创建三次贝塞尔曲线路段几何
// 功能：根据四个控制点构建三次贝塞尔曲线
// 参数：p0-起点，p1、p2-控制点，p3-终点
// 返回：曲线对象
// 算法说明：与二次曲线相同，采样公式为
// B(t)=(1-t)³p0+3t(1-t)²p1+3t²(1-t)p2+t³p3
func NewCubicBezier(p0, p1, p2, p3 cgeo.Point) Curve {
	line := make([]cgeo.Point, 0, curveSubdivisions+1)
	for i := 0; i <= curveSubdivisions; i++ {
		t := float64(i) / curveSubdivisions
		u := 1 - t
		line = append(line, cgeo.Point{
			X: u*u*u*p0.X + 3*t*u*u*p1.X + 3*t*t*u*p2.X + t*t*t*p3.X,
			Y: u*u*u*p0.Y + 3*t*u*u*p1.Y + 3*t*t*u*p2.Y + t*t*t*p3.Y,
		})
	}
	return newPolylineCurve(line)
}
