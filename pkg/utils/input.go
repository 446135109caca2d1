// Package utils 提供通用工具函数
package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// TouchPoint 一个活动触点
type TouchPoint struct {
	ID   ebiten.TouchID
	X, Y float64
}

// ActiveTouches 返回当前所有活动触点
func ActiveTouches(buf []TouchPoint) []TouchPoint {
	buf = buf[:0]
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, TouchPoint{ID: id, X: float64(x), Y: float64(y)})
	}
	return buf
}

// ============================================================================
// 双摇杆触屏控制 - 左半屏移动，右半屏瞄准
// ============================================================================

// noTouch 表示未跟踪任何触点
const noTouch ebiten.TouchID = -1

// TwinStick 双区触屏控制器
//   - 按下位置在 SplitX 左侧的触点控制移动（相对于固定摇杆中心）
//   - 右侧的触点设置瞄准点，松开后瞄准点保留
//
// 每个触点按下时归属一个区域，拖动越过分界线也不改变归属
type TwinStick struct {
	AnchorX, AnchorY float64 // 摇杆中心
	Radius           float64 // 摇杆外圈半径（绘制与摇杆头限制）
	DeadZone         float64 // 死区半径
	SplitX           float64 // 左右分界

	moveID       ebiten.TouchID
	moveX, moveY float64

	aimID      ebiten.TouchID
	aimX, aimY float64
	hasAim     bool
}

// NewTwinStick 创建双摇杆控制器
func NewTwinStick(anchorX, anchorY, radius, deadZone, splitX float64) *TwinStick {
	return &TwinStick{
		AnchorX:  anchorX,
		AnchorY:  anchorY,
		Radius:   radius,
		DeadZone: deadZone,
		SplitX:   splitX,
		moveID:   noTouch,
		aimID:    noTouch,
	}
}

// Update 用本帧的活动触点刷新控制器状态
func (ts *TwinStick) Update(touches []TouchPoint) {
	moveSeen, aimSeen := false, false

	for _, t := range touches {
		switch {
		case t.ID == ts.moveID:
			ts.moveX, ts.moveY = t.X, t.Y
			moveSeen = true
		case t.ID == ts.aimID:
			ts.aimX, ts.aimY = t.X, t.Y
			aimSeen = true
		}
	}

	// 已松开的触点释放区域
	if !moveSeen {
		ts.moveID = noTouch
	}
	if !aimSeen {
		ts.aimID = noTouch
	}

	// 新触点按位置分配到空闲区域
	for _, t := range touches {
		if t.ID == ts.moveID || t.ID == ts.aimID {
			continue
		}
		if t.X < ts.SplitX {
			if ts.moveID == noTouch {
				ts.moveID = t.ID
				ts.moveX, ts.moveY = t.X, t.Y
			}
			continue
		}
		if ts.aimID == noTouch {
			ts.aimID = t.ID
			ts.aimX, ts.aimY = t.X, t.Y
			ts.hasAim = true
		}
	}
}

// Direction 返回移动方向（单位向量）
// 没有移动触点或在死区内时返回 (0, 0)
func (ts *TwinStick) Direction() (float64, float64) {
	if ts.moveID == noTouch {
		return 0, 0
	}
	dx := ts.moveX - ts.AnchorX
	dy := ts.moveY - ts.AnchorY
	dist := math.Hypot(dx, dy)
	if dist < ts.DeadZone || dist == 0 {
		return 0, 0
	}
	return dx / dist, dy / dist
}

// Knob 返回摇杆头的绘制位置（限制在外圈内）
func (ts *TwinStick) Knob() (float64, float64) {
	if ts.moveID == noTouch {
		return ts.AnchorX, ts.AnchorY
	}
	dx := ts.moveX - ts.AnchorX
	dy := ts.moveY - ts.AnchorY
	dist := math.Hypot(dx, dy)
	if dist <= ts.Radius {
		return ts.moveX, ts.moveY
	}
	return ts.AnchorX + dx/dist*ts.Radius, ts.AnchorY + dy/dist*ts.Radius
}

// Aim 返回瞄准点；从未触摸过右半屏时 ok 为 false
func (ts *TwinStick) Aim() (x, y float64, ok bool) {
	return ts.aimX, ts.aimY, ts.hasAim
}

// Moving 是否有移动触点
func (ts *TwinStick) Moving() bool {
	return ts.moveID != noTouch
}

// Reset 清除所有触点与瞄准点
func (ts *TwinStick) Reset() {
	ts.moveID = noTouch
	ts.aimID = noTouch
	ts.hasAim = false
}
