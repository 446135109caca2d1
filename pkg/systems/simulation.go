package systems

import (
	"log"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/game"
)

// System 按固定步长更新的逻辑系统
type System interface {
	Update(deltaTime float64)
}

// Simulation 驱动一局游戏的固定步长主循环
// 桌面、移动端、终端和无界面工具共用同一个模拟器
type Simulation struct {
	world   *game.World
	input   game.Input
	systems []System
}

// NewSimulation 为 World 创建模拟器
// 系统顺序即每帧的执行顺序：子弹先移动并移除出屏子弹，碰撞最后结算
func NewSimulation(w *game.World) *Simulation {
	s := &Simulation{world: w}
	s.systems = []System{
		NewCheatSystem(w, &s.input),
		NewPlayerSystem(w, &s.input),
		NewProjectileSystem(w),
		NewEnemySystem(w),
		NewBossSystem(w),
		NewOrbSystem(w),
		NewLevelSystem(w),
		NewSpawnSystem(w),
		NewCollisionSystem(w),
	}
	return s
}

// World 返回模拟的 World
func (s *Simulation) World() *game.World {
	return s.world
}

// Step 推进一帧
//   - GameOver: 只响应重新开始
//   - Paused: 只响应取消暂停，时钟不前进
//   - Running: 时钟前进一帧并依次运行所有系统
func (s *Simulation) Step(in game.Input) {
	w := s.world
	w.ClearEvents()

	switch w.State {
	case game.StateGameOver:
		if in.Restart {
			w.Reset()
			log.Printf("[Game] Restarted")
		}
		return
	case game.StatePaused:
		if in.Pause {
			w.State = game.StateRunning
			log.Printf("[Game] Resumed")
		}
		return
	}

	if in.Pause {
		w.State = game.StatePaused
		log.Printf("[Game] Paused")
		return
	}

	s.input = in
	w.Now += config.TickDuration
	dt := config.TickDuration.Seconds()
	for _, sys := range s.systems {
		sys.Update(dt)
	}
}
