package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/types"
)

// newTestWorld 创建固定种子的 World
func newTestWorld() *game.World {
	return game.NewWorld(config.DefaultTuning(), config.ScreenBounds(), rand.New(rand.NewSource(42)))
}

// addEnemy 在指定位置放置敌人
func addEnemy(t *testing.T, w *game.World, kind types.EnemyKind, x, y float64) *entities.Enemy {
	t.Helper()
	e, err := w.SpawnEnemy(kind, x, y)
	if err != nil {
		t.Fatalf("SpawnEnemy(%s): %v", kind, err)
	}
	return e
}

// addBullet 直接放置一颗子弹
func addBullet(w *game.World, kind types.ProjectileKind, x, y, dx, dy float64) *entities.Projectile {
	stats, _ := w.Tuning.Zombies.GetProjectileStats(kind)
	p := entities.NewProjectile(kind, stats, x, y, dx, dy)
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// countEvents 统计本帧指定类型的事件
func countEvents(w *game.World, kind game.EventKind) int {
	n := 0
	for _, ev := range w.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
