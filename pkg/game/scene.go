package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个可以独立更新和绘制的场景
type Scene interface {
	// Update 推进一帧，deltaTime 为固定步长（秒）
	Update(deltaTime float64)

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

// Closer 可选接口，程序退出前调用（保存设置等）
type Closer interface {
	Close()
}
