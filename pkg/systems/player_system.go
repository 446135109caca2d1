package systems

import (
	"github.com/decker502/zombieshooter/pkg/game"
)

// PlayerSystem 处理玩家移动与自动射击
type PlayerSystem struct {
	world *game.World
	input *game.Input
}

// NewPlayerSystem 创建玩家系统
// input 指向模拟器持有的本帧输入
func NewPlayerSystem(w *game.World, input *game.Input) *PlayerSystem {
	return &PlayerSystem{world: w, input: input}
}

// Update 按输入移动玩家，并朝瞄准点自动射击
func (s *PlayerSystem) Update(deltaTime float64) {
	w := s.world
	p := w.Player

	p.Move(s.input.MoveX, s.input.MoveY, w.Bounds)

	// 移动端在第一次触摸右半屏之前没有瞄准点
	if !s.input.HasAim {
		return
	}
	bullets := p.Shoot(s.input.AimX, s.input.AimY, w.Now, w.Level, &w.Tuning.Player.Weapon, w.Tuning.Zombies)
	w.AddProjectiles(bullets)
}
