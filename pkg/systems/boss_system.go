package systems

import (
	"log"

	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/types"
)

// BossSystem 负责 Boss 登场、追击与射击
type BossSystem struct {
	world *game.World
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(w *game.World) *BossSystem {
	return &BossSystem{world: w}
}

// Update 检查登场条件，然后更新存活的 Boss
func (s *BossSystem) Update(deltaTime float64) {
	w := s.world
	rules := w.Tuning.Spawn

	if w.Level >= rules.Boss.Level && w.Level < rules.FinalBoss.Level && !w.BossSpawned && !w.BossDefeated {
		s.spawnBoss()
	}
	if w.Level >= rules.FinalBoss.Level && !w.FinalBossSpawned && !w.FinalBossDefeated {
		s.spawnFinalBoss()
	}

	s.updateBoss(w.Boss)
	s.updateBoss(w.FinalBoss)
}

// spawnBoss 在随机一条边的中点外侧生成 Boss
func (s *BossSystem) spawnBoss() {
	w := s.world
	x, y := edgeMidpoint(w, w.Tuning.Spawn.Boss.EdgeOffset)
	if _, err := w.SpawnEnemy(types.EnemyBoss, x, y); err != nil {
		log.Printf("[Spawn] boss spawn failed: %v", err)
		return
	}
	w.BossSpawned = true
	w.Emit(game.Event{Kind: game.EventBossSpawned, Enemy: types.EnemyBoss, X: x, Y: y})
	log.Printf("[Spawn] Boss spawned at (%.0f, %.0f), level %d", x, y, w.Level)
}

// spawnFinalBoss 清场后在屏幕中心生成最终 Boss
// 被清掉的 Boss 视为已击败，最终 Boss 倒下后僵尸恢复生成
func (s *BossSystem) spawnFinalBoss() {
	w := s.world
	w.Zombies = nil
	w.Boss = nil
	w.BossDefeated = true
	w.FinalBoss = nil

	x, y := w.Bounds.Width/2, w.Bounds.Height/2
	if off := w.Tuning.Spawn.FinalBoss.EdgeOffset; off > 0 {
		x, y = edgeMidpoint(w, off)
	}
	if _, err := w.SpawnEnemy(types.EnemyFinalBoss, x, y); err != nil {
		log.Printf("[Spawn] final boss spawn failed: %v", err)
		return
	}
	w.FinalBossSpawned = true
	w.Emit(game.Event{Kind: game.EventBossSpawned, Enemy: types.EnemyFinalBoss, X: x, Y: y})
	log.Printf("[Spawn] Final boss spawned at (%.0f, %.0f), level %d", x, y, w.Level)
}

func (s *BossSystem) updateBoss(b *entities.Enemy) {
	if b == nil {
		return
	}
	w := s.world
	b.Pursue(w.Player.X, w.Player.Y)

	ring, err := b.Shoot(w.Now, w.Tuning.Zombies)
	if err != nil {
		log.Printf("[Enemy] %s shoot failed: %v", b.Kind, err)
		return
	}
	w.AddProjectiles(ring)
}

// edgeMidpoint 随机选择一条边，返回其中点向外偏移 offset 的位置
func edgeMidpoint(w *game.World, offset float64) (float64, float64) {
	midX, midY := w.Bounds.Width/2, w.Bounds.Height/2
	switch w.Rng.Intn(4) {
	case 0: // 上
		return midX, -offset
	case 1: // 右
		return w.Bounds.Width + offset, midY
	case 2: // 下
		return midX, w.Bounds.Height + offset
	default: // 左
		return -offset, midY
	}
}
