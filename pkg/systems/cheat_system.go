package systems

import (
	"log"

	"github.com/decker502/zombieshooter/pkg/game"
)

// CheatSystem 调试用的跳关组合键，仅在调试模式下生效
//   - 按住 1+T: 跳到 Boss 等级
//   - 按住 T+2: 跳到最终 Boss 等级，清场并重新允许最终 Boss 登场
type CheatSystem struct {
	world *game.World
	input *game.Input
}

// NewCheatSystem 创建作弊系统
func NewCheatSystem(w *game.World, input *game.Input) *CheatSystem {
	return &CheatSystem{world: w, input: input}
}

// Update 推进组合键计时
func (s *CheatSystem) Update(deltaTime float64) {
	w := s.world
	if !w.Debug {
		return
	}
	hold := w.Tuning.Player.CheatHold()
	rules := w.Tuning.Spawn

	if w.CheatToBoss.Update(s.input.CheatToBoss, w.Now, hold) {
		w.SetLevel(rules.Boss.Level)
		w.Emit(game.Event{Kind: game.EventCheat, Value: w.Level})
		log.Printf("[Cheat] Skipped to level %d", w.Level)
	}

	if w.CheatToFinalBoss.Update(s.input.CheatToFinalBoss, w.Now, hold) {
		w.SetLevel(rules.FinalBoss.Level)
		w.Zombies = nil
		w.Boss = nil
		w.BossSpawned = true
		w.BossDefeated = true
		w.FinalBossSpawned = false
		w.FinalBossDefeated = false
		w.Emit(game.Event{Kind: game.EventCheat, Value: w.Level})
		log.Printf("[Cheat] Skipped to level %d (final boss armed)", w.Level)
	}
}
