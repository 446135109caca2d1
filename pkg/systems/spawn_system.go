package systems

import (
	"log"

	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/types"
)

// SpawnSystem 按计时器在屏幕边缘生成僵尸
//
// 每次计时到期都会尝试生成并缩短间隔，即使被 Boss 阶段阻止
type SpawnSystem struct {
	world *game.World
}

// NewSpawnSystem 创建僵尸生成系统
func NewSpawnSystem(w *game.World) *SpawnSystem {
	return &SpawnSystem{world: w}
}

// Update 检查生成计时器
func (s *SpawnSystem) Update(deltaTime float64) {
	w := s.world
	if w.Now-w.LastSpawn <= w.SpawnDelay {
		return
	}

	s.spawnZombie()
	w.LastSpawn = w.Now
	w.SpawnDelay = w.Tuning.Spawn.NextDelay(w.SpawnDelay)
}

// blocked 判断当前是否禁止生成普通僵尸
func (s *SpawnSystem) blocked() bool {
	w := s.world
	if w.FinalBoss != nil || w.Boss != nil {
		return true
	}
	return w.Level >= w.Tuning.Spawn.Boss.Level && !w.BossDefeated
}

// spawnZombie 按当前等级段选择类型并生成一只僵尸
func (s *SpawnSystem) spawnZombie() {
	if s.blocked() {
		return
	}
	w := s.world
	rules := w.Tuning.Spawn

	x, y := s.edgePosition(rules.EdgeOffset)

	idx, band := rules.BandForLevel(w.Level)
	w.BandSpawns[idx]++
	name := band.Regular
	if w.BandSpawns[idx]%band.Every == 0 {
		name = band.Special
	}

	kind, err := types.ParseEnemyKind(name)
	if err != nil {
		log.Printf("[Spawn] %v", err)
		return
	}
	if _, err := w.SpawnEnemy(kind, x, y); err != nil {
		log.Printf("[Spawn] %s spawn failed: %v", kind, err)
	}
}

// edgePosition 随机选择一条边，在其外侧 offset 处取随机位置
func (s *SpawnSystem) edgePosition(offset float64) (float64, float64) {
	w := s.world
	width, height := int(w.Bounds.Width), int(w.Bounds.Height)
	switch w.Rng.Intn(4) {
	case 0: // 上
		return float64(w.Rng.Intn(width + 1)), -offset
	case 1: // 右
		return w.Bounds.Width + offset, float64(w.Rng.Intn(height + 1))
	case 2: // 下
		return float64(w.Rng.Intn(width + 1)), w.Bounds.Height + offset
	default: // 左
		return -offset, float64(w.Rng.Intn(height + 1))
	}
}
