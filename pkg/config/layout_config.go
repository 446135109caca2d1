package config

import "time"

// 布局配置常量
// 所有坐标使用逻辑屏幕坐标（左上角为原点），与窗口实际大小无关

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// TicksPerSecond 固定逻辑帧率
	TicksPerSecond = 60
)

// TickDuration 每个逻辑帧对应的游戏时间
const TickDuration = time.Second / TicksPerSecond

// HUD 布局
const (
	// OrbBarX 经验条左上角 X 坐标（为左侧的分数让出位置）
	OrbBarX = 200.0
	// OrbBarY 经验条左上角 Y 坐标
	OrbBarY = 10.0
	// OrbBarWidth 经验条宽度
	OrbBarWidth = 300.0
	// OrbBarHeight 经验条高度
	OrbBarHeight = 15.0

	// BossBarMargin Boss 血条左右边距
	BossBarMargin = 20.0
	// BossBarHeight Boss 血条高度
	BossBarHeight = 25.0
	// BossBarBottomOffset Boss 血条距屏幕底部的距离
	BossBarBottomOffset = 60.0

	// PlayerHealthBarWidth 玩家头顶血条宽度
	PlayerHealthBarWidth = 40.0
	// PlayerHealthBarHeight 玩家头顶血条高度
	PlayerHealthBarHeight = 6.0
)

// 触屏摇杆布局（移动端）
const (
	// JoystickAnchorX 移动摇杆中心 X 坐标
	JoystickAnchorX = 100.0
	// JoystickAnchorY 移动摇杆中心 Y 坐标（屏幕左下角）
	JoystickAnchorY = GameWindowHeight - 100.0
	// JoystickRadius 摇杆外圈半径
	JoystickRadius = 50.0
	// JoystickDeadZone 摇杆死区半径，小于该距离不移动
	JoystickDeadZone = 8.0
)

// Bounds 描述可玩区域
type Bounds struct {
	Width  float64
	Height float64
}

// ScreenBounds 返回默认逻辑屏幕对应的可玩区域
func ScreenBounds() Bounds {
	return Bounds{Width: GameWindowWidth, Height: GameWindowHeight}
}
