package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// 终端只报告按下不报告松开，而且只自动重复最后按下的那个键
//   - 首次按下后 firstRepeatWindow 内视为按住（覆盖自动重复的首次延迟）
//   - 开始自动重复后，最后一次重复之后 repeatWindow 内视为按住
//   - 之后按下的键仍在重复时，先按下的键继续视为按住（组合键、斜向移动），
//     但距其最后一次按下不超过 carry
const (
	firstRepeatWindow = 600 * time.Millisecond
	repeatWindow      = 200 * time.Millisecond
)

// 逻辑按键
const (
	keyLeft  = "left"
	keyRight = "right"
	keyUp    = "up"
	keyDown  = "down"
	keyOne   = "1"
	keyT     = "t"
	keyTwo   = "2"
)

type keyState struct {
	last      time.Time
	repeating bool
}

func (k keyState) window() time.Duration {
	if k.repeating {
		return repeatWindow
	}
	return firstRepeatWindow
}

// heldKeys 根据按下事件推断按住状态
type heldKeys struct {
	keys   map[string]keyState
	latest string // 最后按下的键，终端只会重复它
	carry  time.Duration
}

// newHeldKeys carry 为组合键中先按下的键最长保持时间
func newHeldKeys(carry time.Duration) *heldKeys {
	return &heldKeys{keys: make(map[string]keyState), carry: carry}
}

// Press 记录一次按下或自动重复
func (h *heldKeys) Press(name string, now time.Time) {
	prev, ok := h.keys[name]
	repeating := ok && h.latest == name && now.Sub(prev.last) <= prev.window()
	h.keys[name] = keyState{last: now, repeating: repeating}
	h.latest = name
}

// Held 判断按键当前是否视为按住
func (h *heldKeys) Held(name string, now time.Time) bool {
	k, ok := h.keys[name]
	if !ok {
		return false
	}
	if now.Sub(k.last) <= k.window() {
		return true
	}
	if name == h.latest || now.Sub(k.last) > h.carry {
		return false
	}
	// 被之后按下且仍在重复的键带着
	cur, ok := h.keys[h.latest]
	return ok && cur.last.After(k.last) && now.Sub(cur.last) <= cur.window()
}

// Release 立即松开（方向反转时避免对向键残留）
func (h *heldKeys) Release(name string) {
	delete(h.keys, name)
}

// Clear 松开所有按键
func (h *heldKeys) Clear() {
	for k := range h.keys {
		delete(h.keys, k)
	}
	h.latest = ""
}

// opposite 对向键
var opposite = map[string]string{
	keyLeft: keyRight, keyRight: keyLeft,
	keyUp: keyDown, keyDown: keyUp,
}

// keyName 把 tcell 按键事件映射为逻辑按键，无关按键返回空串
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return keyLeft
	case tcell.KeyRight:
		return keyRight
	case tcell.KeyUp:
		return keyUp
	case tcell.KeyDown:
		return keyDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return keyLeft
		case 'd', 'D':
			return keyRight
		case 'w', 'W':
			return keyUp
		case 's', 'S':
			return keyDown
		case '1':
			return keyOne
		case '2':
			return keyTwo
		case 't', 'T':
			return keyT
		}
	}
	return ""
}
