package systems

import (
	"testing"
	"time"

	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/types"
)

func TestLevelUpSingleIncrementPerTick(t *testing.T) {
	w := newTestWorld()
	s := NewLevelSystem(w)
	w.OrbsCollected = 1000

	s.Update(0)

	if w.Level != 2 {
		t.Fatalf("expected exactly one level up, got level %d", w.Level)
	}
	if w.OrbsCollected != 0 || w.OrbsNeeded != 20 {
		t.Errorf("orbs = %d/%d, want 0/20", w.OrbsCollected, w.OrbsNeeded)
	}
	if w.Player.ShootDelay != 100*time.Millisecond {
		t.Errorf("shoot delay = %v, want 100ms", w.Player.ShootDelay)
	}
	if countEvents(w, game.EventLevelUp) != 1 {
		t.Error("expected level up event")
	}

	s.Update(0)
	if w.Level != 2 {
		t.Errorf("no orbs, no level up; got %d", w.Level)
	}
}

func TestOrbSystemCollects(t *testing.T) {
	w := newTestWorld()
	s := NewOrbSystem(w)
	stats := w.Tuning.Player.Orb
	px, py := w.Player.X, w.Player.Y

	near := entities.NewOrb(px+10, py, stats)
	mid := entities.NewOrb(px+50, py, stats)
	far := entities.NewOrb(px+100, py, stats)
	w.Orbs = append(w.Orbs, near, mid, far)

	s.Update(0)

	if w.OrbsCollected != 1 {
		t.Errorf("expected 1 orb collected, got %d", w.OrbsCollected)
	}
	if len(w.Orbs) != 2 {
		t.Fatalf("expected 2 orbs left, got %d", len(w.Orbs))
	}
	if mid.X != px+44 {
		t.Errorf("magnetised orb should move 6px, x=%v", mid.X)
	}
	if far.X != px+100 {
		t.Errorf("far orb should not move, x=%v", far.X)
	}
}

func TestCheatRequiresDebug(t *testing.T) {
	w := newTestWorld()
	in := &game.Input{CheatToBoss: true}
	s := NewCheatSystem(w, in)

	for i := 0; i <= 200; i++ {
		w.Now = time.Duration(i) * 20 * time.Millisecond
		s.Update(0)
	}
	if w.Level != 1 {
		t.Errorf("cheat must be ignored without debug mode, level %d", w.Level)
	}
}

func TestCheatSkipToBoss(t *testing.T) {
	w := newTestWorld()
	w.Debug = true
	in := &game.Input{CheatToBoss: true}
	s := NewCheatSystem(w, in)

	s.Update(0)
	w.Now = 2999 * time.Millisecond
	s.Update(0)
	if w.Level != 1 {
		t.Fatalf("cheat fired early, level %d", w.Level)
	}

	w.Now = 3 * time.Second
	s.Update(0)
	if w.Level != 15 || w.OrbsNeeded != 150 || w.OrbsCollected != 0 {
		t.Errorf("level/needed = %d/%d, want 15/150", w.Level, w.OrbsNeeded)
	}
}

func TestCheatSkipToFinalBoss(t *testing.T) {
	w := newTestWorld()
	w.Debug = true
	addEnemy(t, w, types.EnemyBoss, 0, 0)
	addEnemy(t, w, types.EnemyNormal, 10, 10)
	w.FinalBossSpawned = true
	w.FinalBossDefeated = true

	in := &game.Input{CheatToFinalBoss: true}
	s := NewCheatSystem(w, in)
	s.Update(0)
	w.Now = 3 * time.Second
	s.Update(0)

	if w.Level != 25 || w.OrbsNeeded != 250 {
		t.Fatalf("level/needed = %d/%d, want 25/250", w.Level, w.OrbsNeeded)
	}
	if len(w.Zombies) != 0 || w.Boss != nil {
		t.Error("cheat should clear zombies and the boss")
	}
	if !w.BossSpawned || !w.BossDefeated || w.FinalBossSpawned || w.FinalBossDefeated {
		t.Errorf("flags = %v/%v/%v/%v", w.BossSpawned, w.BossDefeated, w.FinalBossSpawned, w.FinalBossDefeated)
	}

	// 下一次 Boss 系统更新时最终 Boss 登场
	NewBossSystem(w).Update(0)
	if w.FinalBoss == nil {
		t.Error("final boss should be re-armed")
	}
}
