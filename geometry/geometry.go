// 路段几何，提供直线与贝塞尔曲线的弧长参数化查询
package geometry

import (
	"sort"

	cgeo "git.fiblab.net/general/common/v2/geometry"
	"github.com/samber/lo"
)

// Curve 路段中心线的几何抽象
// 功能：以弧长参数s（单位米）统一查询位置与切向角度
type Curve interface {
	// Length 曲线总长度（米）
	Length() float64
	// PositionAt 将弧长s转换为xy坐标，s超出[0, Length]时截断到端点
	PositionAt(s float64) cgeo.Point
	// HeadingAt 弧长s处的切向角度（atan2，弧度）
	HeadingAt(s float64) float64
	// Line 离散化后的折线坐标
	Line() []cgeo.Point
}

// polylineCurve 折线化曲线
// 功能：所有曲线类型统一离散化为折线后按弧长查表
// 说明：维护折线坐标、累积长度表与每段方向，查询时二分查找后线性插值
type polylineCurve struct {
	line           []cgeo.Point             // 折线坐标
	lineLengths    []float64                // 累积长度表
	lineDirections []cgeo.PolylineDirection // 每一段的方向（atan2）
}

// newPolylineCurve 由折线坐标构建曲线
func newPolylineCurve(line []cgeo.Point) *polylineCurve {
	return &polylineCurve{
		line:           line,
		lineLengths:    cgeo.GetPolylineLengths2D(line),
		lineDirections: cgeo.GetPolylineDirections(line),
	}
}

func (c *polylineCurve) Length() float64 {
	return c.lineLengths[len(c.lineLengths)-1]
}

func (c *polylineCurve) Line() []cgeo.Point {
	return c.line
}

// PositionAt 将弧长s转换为xy坐标
// 算法说明：
// 1. 截断越界的s到折线长度范围
// 2. 二分查找s所在的折线段
// 3. 在段内线性插值得到坐标
func (c *polylineCurve) PositionAt(s float64) (pos cgeo.Point) {
	if s < c.lineLengths[0] || s > c.lineLengths[len(c.lineLengths)-1] {
		log.Debugf("get position with s %v out of range{%v,%v}",
			s, c.lineLengths[0], c.lineLengths[len(c.lineLengths)-1])
		s = lo.Clamp(s, c.lineLengths[0], c.lineLengths[len(c.lineLengths)-1])
	}
	if i := sort.SearchFloat64s(c.lineLengths, s); i == 0 {
		pos = c.line[0]
	} else {
		sHigh, sLow := c.lineLengths[i], c.lineLengths[i-1]
		k := (s - sLow) / (sHigh - sLow)
		if k < 0 || k > 1 {
			log.Panicf("geometry: PositionAt(), bad k %v. sHigh=%f, sLow=%f, s=%f", k, sHigh, sLow, s)
		}
		pos = cgeo.Blend(c.line[i-1], c.line[i], k)
	}
	return
}

// HeadingAt 弧长s处的切向角度
func (c *polylineCurve) HeadingAt(s float64) float64 {
	if s < c.lineLengths[0] || s > c.lineLengths[len(c.lineLengths)-1] {
		log.Debugf("get direction with s %v out of range{%v,%v}",
			s, c.lineLengths[0], c.lineLengths[len(c.lineLengths)-1])
		s = lo.Clamp(s, c.lineLengths[0], c.lineLengths[len(c.lineLengths)-1])
	}
	if i := sort.SearchFloat64s(c.lineLengths, s); i == 0 {
		return c.lineDirections[0].Direction
	} else {
		return c.lineDirections[i-1].Direction
	}
}
