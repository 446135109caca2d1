package utils

import "math"

// Distance 返回两点之间的欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// CirclesOverlap 判断两个圆是否相交（圆心距严格小于半径之和）
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// StepToward 从 (x, y) 朝 (tx, ty) 前进 step 像素
// 两点重合时不移动
func StepToward(x, y, tx, ty, step float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return x, y
	}
	return x + dx/dist*step, y + dy/dist*step
}

// Clamp 将 v 限制在 [lo, hi] 区间
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
