package entities

import "time"

// Cooldown 记录一次性动作的上一次触发时间
// 从未触发过时视为就绪
type Cooldown struct {
	last  time.Duration
	fired bool
}

// Ready 距上次触发是否已过去至少 window（含边界）
func (c *Cooldown) Ready(now, window time.Duration) bool {
	return !c.fired || now-c.last >= window
}

// Exceeded 距上次触发是否已超过 window（不含边界）
func (c *Cooldown) Exceeded(now, window time.Duration) bool {
	return !c.fired || now-c.last > window
}

// Trigger 记录在 now 触发
func (c *Cooldown) Trigger(now time.Duration) {
	c.last = now
	c.fired = true
}

// Since 返回距上次触发的时长；从未触发时 ok 为 false
func (c *Cooldown) Since(now time.Duration) (elapsed time.Duration, ok bool) {
	if !c.fired {
		return 0, false
	}
	return now - c.last, true
}
