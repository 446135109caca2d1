package systems

import (
	"github.com/decker502/zombieshooter/pkg/game"
)

// OrbSystem 经验球吸附与拾取
type OrbSystem struct {
	world *game.World
}

// NewOrbSystem 创建经验球系统
func NewOrbSystem(w *game.World) *OrbSystem {
	return &OrbSystem{world: w}
}

// Update 更新所有经验球，拾取的球计入经验
func (s *OrbSystem) Update(deltaTime float64) {
	w := s.world
	stats := w.Tuning.Player.Orb
	kept := w.Orbs[:0]
	for _, o := range w.Orbs {
		if o.Update(w.Player.X, w.Player.Y, stats) {
			w.OrbsCollected++
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(w.Orbs); i++ {
		w.Orbs[i] = nil
	}
	w.Orbs = kept
}
