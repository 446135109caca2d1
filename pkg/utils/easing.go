package utils

import (
	"math"
	"time"
)

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Pulse 周期性脉冲：每个周期内 0 → 1 → 0，两端经过缓入缓出
// 用于 Boss 光环这类随时间呼吸的效果
func Pulse(now, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	phase := float64(now%period) / float64(period)
	if phase < 0.5 {
		return EaseInOutCubic(phase * 2)
	}
	return EaseInOutCubic((1 - phase) * 2)
}

// FadeOut 从 1 缓出到 0，elapsed 超过 duration 后返回 0
// 用于受伤闪烁
func FadeOut(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration || elapsed < 0 {
		return 0
	}
	return 1 - EaseOutQuad(float64(elapsed)/float64(duration))
}
