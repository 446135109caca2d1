package game

import "time"

// HoldTimer 组合键按住计时
// 松开任意一个键即重新计时，按满时长后触发一次并重新开始
type HoldTimer struct {
	active bool
	start  time.Duration
}

// Update 推进计时，返回本帧是否触发
func (h *HoldTimer) Update(held bool, now, hold time.Duration) bool {
	if !held {
		h.active = false
		return false
	}
	if !h.active {
		h.active = true
		h.start = now
		return false
	}
	if now-h.start >= hold {
		h.active = false
		return true
	}
	return false
}

// Active 是否正在计时
func (h *HoldTimer) Active() bool {
	return h.active
}

// Progress 返回 0~1 的计时进度
func (h *HoldTimer) Progress(now, hold time.Duration) float64 {
	if !h.active || hold <= 0 {
		return 0
	}
	p := float64(now-h.start) / float64(hold)
	if p > 1 {
		return 1
	}
	return p
}
