package systems

import (
	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/game"
)

// ProjectileSystem 移动子弹并移除飞出屏幕的子弹
// 必须在碰撞检测之前运行，出屏的子弹不参与本帧碰撞
type ProjectileSystem struct {
	world *game.World
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(w *game.World) *ProjectileSystem {
	return &ProjectileSystem{world: w}
}

// Update 更新所有子弹
func (s *ProjectileSystem) Update(deltaTime float64) {
	w := s.world
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Update()
		if p.IsOffScreen(w.Bounds) {
			continue
		}
		kept = append(kept, p)
	}
	clearTail(w.Projectiles, len(kept))
	w.Projectiles = kept
}

// clearTail 清空原地过滤后残留的尾部指针
func clearTail(ps []*entities.Projectile, n int) {
	for i := n; i < len(ps); i++ {
		ps[i] = nil
	}
}
