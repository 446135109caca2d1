package systems

import (
	"testing"

	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/types"
	"github.com/decker502/zombieshooter/pkg/utils"
)

func TestBossSpawnsOnceAtLevel15(t *testing.T) {
	w := newTestWorld()
	s := NewBossSystem(w)

	w.Level = 14
	s.Update(0)
	if w.Boss != nil {
		t.Fatal("boss should not spawn before level 15")
	}

	w.Level = 15
	s.Update(0)
	if w.Boss == nil || !w.BossSpawned {
		t.Fatal("boss should spawn at level 15")
	}
	if countEvents(w, game.EventBossSpawned) != 1 {
		t.Error("expected boss spawned event")
	}
	boss := w.Boss

	// 位于某条边中点外 60 像素，登场当帧已朝玩家前进一步
	onMidpoint := false
	for _, mid := range [][2]float64{{400, -60}, {860, 300}, {400, 660}, {-60, 300}} {
		if utils.Distance(boss.X, boss.Y, mid[0], mid[1]) < boss.Speed+1e-9 {
			onMidpoint = true
		}
	}
	if !onMidpoint {
		t.Errorf("boss spawned at (%v, %v)", boss.X, boss.Y)
	}

	s.Update(0)
	if w.Boss != boss {
		t.Error("boss must stay a singleton")
	}

	// 击败后不再出现
	w.Boss = nil
	w.BossDefeated = true
	w.Level = 20
	s.Update(0)
	if w.Boss != nil {
		t.Error("defeated boss should not respawn")
	}
}

func TestBossPursuesAndShoots(t *testing.T) {
	w := newTestWorld()
	s := NewBossSystem(w)
	boss := addEnemy(t, w, types.EnemyBoss, 0, 300)
	w.BossSpawned = true
	w.Level = 15

	s.Update(0)

	if boss.X != 0.8 {
		t.Errorf("boss should step 0.8 toward the player, x=%v", boss.X)
	}
	if len(w.Projectiles) != 20 {
		t.Errorf("boss ring should have 20 bullets, got %d", len(w.Projectiles))
	}
}

func TestFinalBossClearsField(t *testing.T) {
	w := newTestWorld()
	s := NewBossSystem(w)
	addEnemy(t, w, types.EnemyBoss, 0, 0)
	addEnemy(t, w, types.EnemyNormal, 10, 10)
	addEnemy(t, w, types.EnemyGreen, 20, 20)
	w.BossSpawned = true
	w.Level = 25

	s.Update(0)

	if len(w.Zombies) != 0 || w.Boss != nil {
		t.Fatal("final boss should clear zombies and the boss")
	}
	if w.FinalBoss == nil || !w.FinalBossSpawned {
		t.Fatal("final boss should spawn")
	}
	if !w.BossDefeated {
		t.Error("cleared boss stage should count as defeated")
	}
	// 登场当帧已朝玩家（屏幕中心）移动，玩家也在中心，所以不动
	if w.FinalBoss.X != 400 || w.FinalBoss.Y != 300 {
		t.Errorf("final boss at (%v, %v), want centre", w.FinalBoss.X, w.FinalBoss.Y)
	}
	if len(w.Projectiles) != 30 {
		t.Errorf("final boss ring should have 30 bullets, got %d", len(w.Projectiles))
	}
}
