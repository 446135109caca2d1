package systems

import (
	"log"

	"github.com/decker502/zombieshooter/pkg/game"
)

// LevelSystem 经验满时升级
type LevelSystem struct {
	world *game.World
}

// NewLevelSystem 创建升级系统
func NewLevelSystem(w *game.World) *LevelSystem {
	return &LevelSystem{world: w}
}

// Update 每帧最多升一级，多余的经验清零
func (s *LevelSystem) Update(deltaTime float64) {
	w := s.world
	if w.OrbsCollected < w.OrbsNeeded {
		return
	}
	w.SetLevel(w.Level + 1)
	w.Emit(game.Event{Kind: game.EventLevelUp, X: w.Player.X, Y: w.Player.Y, Value: w.Level})
	log.Printf("[Level] Level up: %d (next at %d orbs, shoot delay %v)", w.Level, w.OrbsNeeded, w.Player.ShootDelay)
}
