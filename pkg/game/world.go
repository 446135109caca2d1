package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/types"
	"github.com/decker502/zombieshooter/pkg/utils"
)

// RunState 一局游戏的运行状态
type RunState int

const (
	StateRunning  RunState = iota // 正常运行
	StatePaused                   // 暂停：停止更新，继续绘制
	StateGameOver                 // 结束：只接受重新开始
)

// String 返回状态名
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind 每帧事件类型
type EventKind int

const (
	EventEnemyKilled EventKind = iota // 敌人被击杀，Value 为得分
	EventPlayerHit                    // 玩家受伤，Value 为剩余血量（取整）
	EventLevelUp                      // 升级，Value 为新等级
	EventBossSpawned                  // Boss 登场
	EventGameOver                     // 玩家死亡，Value 为最终得分
	EventCheat                        // 作弊码生效，Value 为目标等级
)

// Event 一帧内发生的事件
// 前端用它来播放音效、打印日志，逻辑本身不依赖事件
type Event struct {
	Kind  EventKind
	Enemy types.EnemyKind // 与敌人相关的事件填写
	X, Y  float64
	Value int
}

// World 一局游戏的全部状态
// 所有系统通过指针共享同一个 World，每帧只在主循环中被修改
type World struct {
	Tuning *config.Tuning
	Bounds config.Bounds
	Rng    *rand.Rand

	// Debug 为 true 时启用作弊组合键
	Debug bool

	// Now 游戏时钟，只在 Running 状态下前进
	Now   time.Duration
	State RunState

	Player      *entities.Player
	Zombies     []*entities.Enemy
	Boss        *entities.Enemy
	FinalBoss   *entities.Enemy
	Projectiles []*entities.Projectile
	Orbs        []*entities.Orb

	Score         int
	Level         int
	OrbsCollected int
	OrbsNeeded    int

	// 生成计时
	LastSpawn  time.Duration
	SpawnDelay time.Duration
	// BandSpawns 每个等级段独立的生成计数
	BandSpawns []int

	BossSpawned       bool
	BossDefeated      bool
	FinalBossSpawned  bool
	FinalBossDefeated bool

	// 作弊组合键计时
	CheatToBoss      HoldTimer
	CheatToFinalBoss HoldTimer

	// Kills 按类型统计的击杀数
	Kills map[types.EnemyKind]int

	// Events 本帧事件，每帧开始时清空
	Events []Event
}

// NewWorld 创建一局新游戏
//
// 参数：
//   - tuning: 数值配置，nil 时使用内置默认值
//   - bounds: 场地尺寸
//   - rng: 随机源，nil 时以当前时间为种子
func NewWorld(tuning *config.Tuning, bounds config.Bounds, rng *rand.Rand) *World {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &World{
		Tuning: tuning,
		Bounds: bounds,
		Rng:    rng,
	}
	w.Reset()
	return w
}

// Reset 恢复到一局开始时的状态
// 保留配置、随机源和调试开关
func (w *World) Reset() {
	w.Now = 0
	w.State = StateRunning

	w.Player = entities.NewPlayer(w.Tuning.Player, w.Bounds.Width/2, w.Bounds.Height/2)
	w.Zombies = nil
	w.Boss = nil
	w.FinalBoss = nil
	w.Projectiles = nil
	w.Orbs = nil

	w.Score = 0
	w.Level = 1
	w.OrbsCollected = 0
	w.OrbsNeeded = w.Tuning.Player.Progression.OrbsNeeded(1)

	w.LastSpawn = 0
	w.SpawnDelay = w.Tuning.Spawn.InitialDelay()
	w.BandSpawns = make([]int, len(w.Tuning.Spawn.Bands))

	w.BossSpawned = false
	w.BossDefeated = false
	w.FinalBossSpawned = false
	w.FinalBossDefeated = false

	w.CheatToBoss = HoldTimer{}
	w.CheatToFinalBoss = HoldTimer{}

	w.Kills = make(map[types.EnemyKind]int)
	w.Events = w.Events[:0]
}

// Emit 记录一个事件
func (w *World) Emit(ev Event) {
	w.Events = append(w.Events, ev)
}

// ClearEvents 清空本帧事件
func (w *World) ClearEvents() {
	w.Events = w.Events[:0]
}

// SetLevel 直接设置等级：清零经验、重算升级门槛与射击间隔
func (w *World) SetLevel(level int) {
	w.Level = level
	w.OrbsCollected = 0
	w.OrbsNeeded = w.Tuning.Player.Progression.OrbsNeeded(level)
	w.Player.UpdateShootSpeed(&w.Tuning.Player.Weapon, level)
}

// SpawnEnemy 在 (x, y) 创建指定类型的敌人
// 普通僵尸加入 Zombies，Boss 写入对应槽位（已有 Boss 时返回错误）
func (w *World) SpawnEnemy(kind types.EnemyKind, x, y float64) (*entities.Enemy, error) {
	switch kind {
	case types.EnemyBoss:
		if w.Boss != nil {
			return nil, fmt.Errorf("boss already alive")
		}
	case types.EnemyFinalBoss:
		if w.FinalBoss != nil {
			return nil, fmt.Errorf("final boss already alive")
		}
	}

	e, err := entities.NewEnemy(kind, w.Tuning.Zombies, x, y)
	if err != nil {
		return nil, err
	}

	switch kind {
	case types.EnemyBoss:
		w.Boss = e
	case types.EnemyFinalBoss:
		w.FinalBoss = e
	default:
		w.Zombies = append(w.Zombies, e)
	}
	return e, nil
}

// SpawnOrbs 在死亡位置周围随机掉落 count 个经验球
// 偏移后的位置限制在场地内
func (w *World) SpawnOrbs(x, y float64, count int) {
	stats := w.Tuning.Player.Orb
	offset := stats.SpawnOffset
	for i := 0; i < count; i++ {
		ox := float64(w.Rng.Intn(2*offset+1) - offset)
		oy := float64(w.Rng.Intn(2*offset+1) - offset)
		ox = utils.Clamp(x+ox, 0, w.Bounds.Width)
		oy = utils.Clamp(y+oy, 0, w.Bounds.Height)
		w.Orbs = append(w.Orbs, entities.NewOrb(ox, oy, stats))
	}
}

// ActiveBoss 返回当前存活的 Boss（优先最终 Boss），供 HUD 绘制血条
func (w *World) ActiveBoss() *entities.Enemy {
	if w.FinalBoss != nil {
		return w.FinalBoss
	}
	return w.Boss
}

// AddProjectiles 追加子弹
func (w *World) AddProjectiles(ps []*entities.Projectile) {
	w.Projectiles = append(w.Projectiles, ps...)
}

// GameOver 进入结束状态并记录事件
func (w *World) GameOver() {
	if w.State == StateGameOver {
		return
	}
	w.State = StateGameOver
	w.Emit(Event{Kind: EventGameOver, X: w.Player.X, Y: w.Player.Y, Value: w.Score})
	log.Printf("[Game] Game over: level=%d score=%d", w.Level, w.Score)
}

// CheatProgress 返回正在按住的作弊组合键的目标等级与进度（0~1）
// 非调试模式或未按住时 ok 为 false
func (w *World) CheatProgress() (targetLevel int, progress float64, ok bool) {
	if !w.Debug {
		return 0, 0, false
	}
	hold := w.Tuning.Player.CheatHold()
	rules := w.Tuning.Spawn
	switch {
	case w.CheatToBoss.Active():
		return rules.Boss.Level, w.CheatToBoss.Progress(w.Now, hold), true
	case w.CheatToFinalBoss.Active():
		return rules.FinalBoss.Level, w.CheatToFinalBoss.Progress(w.Now, hold), true
	}
	return 0, 0, false
}

// FormatHealth 血量显示：整数不带小数，半点伤害保留一位
func FormatHealth(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0f", h)
	}
	return fmt.Sprintf("%.1f", h)
}
