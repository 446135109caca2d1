package systems

import (
	"log"

	"github.com/decker502/zombieshooter/pkg/game"
)

// EnemySystem 普通僵尸的追击与射击
type EnemySystem struct {
	world *game.World
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(w *game.World) *EnemySystem {
	return &EnemySystem{world: w}
}

// Update 所有僵尸朝玩家移动，黑色僵尸按间隔环形射击
func (s *EnemySystem) Update(deltaTime float64) {
	w := s.world
	for _, z := range w.Zombies {
		z.Pursue(w.Player.X, w.Player.Y)

		ring, err := z.Shoot(w.Now, w.Tuning.Zombies)
		if err != nil {
			log.Printf("[Enemy] %s shoot failed: %v", z.Kind, err)
			continue
		}
		w.AddProjectiles(ring)
	}
}
