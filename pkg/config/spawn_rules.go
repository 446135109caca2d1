package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/decker502/zombieshooter/pkg/types"
)

// SpawnRulesConfig 僵尸生成规则配置
type SpawnRulesConfig struct {
	SpawnDelay SpawnDelayConfig `yaml:"spawnDelay"` // 生成间隔（逐次缩短）
	EdgeOffset float64          `yaml:"edgeOffset"` // 僵尸在屏幕外生成的距离
	Bands      []SpawnBand      `yaml:"bands"`      // 按等级划分的生成组合
	Boss       BossRule         `yaml:"boss"`       // 第一个 Boss
	FinalBoss  BossRule         `yaml:"finalBoss"`  // 最终 Boss
}

// SpawnDelayConfig 生成间隔配置
type SpawnDelayConfig struct {
	InitialMs int `yaml:"initialMs"` // 初始间隔
	MinMs     int `yaml:"minMs"`     // 最小间隔
	StepMs    int `yaml:"stepMs"`    // 每次生成后缩短的量
}

// SpawnBand 一个等级段内的生成组合
// 每段有独立计数器：第 Every 次生成为 Special，其余为 Regular
type SpawnBand struct {
	MinLevel int    `yaml:"minLevel"` // 本段起始等级（含）
	Every    int    `yaml:"every"`    // 特殊敌人出现周期
	Special  string `yaml:"special"`  // 特殊敌人类型名
	Regular  string `yaml:"regular"`  // 常规敌人类型名
}

// BossRule Boss 登场规则
type BossRule struct {
	Level      int     `yaml:"level"`      // 登场等级
	EdgeOffset float64 `yaml:"edgeOffset"` // 屏幕外生成距离，0 表示在屏幕中心生成
}

// DefaultSpawnRules 返回内置生成规则，与 data/spawn_rules.yaml 一致
func DefaultSpawnRules() *SpawnRulesConfig {
	return &SpawnRulesConfig{
		SpawnDelay: SpawnDelayConfig{InitialMs: 2000, MinMs: 500, StepMs: 50},
		EdgeOffset: 20,
		Bands: []SpawnBand{
			{MinLevel: 1, Every: 5, Special: types.EnemyNameBuff, Regular: types.EnemyNameNormal},
			{MinLevel: 5, Every: 15, Special: types.EnemyNameGreen, Regular: types.EnemyNameBuff},
			{MinLevel: 10, Every: 20, Special: types.EnemyNameBlack, Regular: types.EnemyNameGreen},
		},
		Boss:      BossRule{Level: 15, EdgeOffset: 60},
		FinalBoss: BossRule{Level: 25, EdgeOffset: 0},
	}
}

// LoadSpawnRules 从 YAML 文件加载僵尸生成规则配置
func LoadSpawnRules(filePath string) (*SpawnRulesConfig, error) {
	var config SpawnRulesConfig
	if err := readYAML(filePath, &config); err != nil {
		return nil, fmt.Errorf("failed to load spawn rules: %w", err)
	}

	if err := validateSpawnRules(&config); err != nil {
		return nil, fmt.Errorf("invalid spawn rules config: %w", err)
	}

	// 按起始等级排序，便于查找
	sort.Slice(config.Bands, func(i, j int) bool {
		return config.Bands[i].MinLevel < config.Bands[j].MinLevel
	})

	return &config, nil
}

// validateSpawnRules 验证配置的有效性
func validateSpawnRules(config *SpawnRulesConfig) error {
	d := config.SpawnDelay
	if d.InitialMs <= 0 || d.MinMs <= 0 {
		return fmt.Errorf("spawnDelay: initialMs and minMs must be positive, got %d/%d", d.InitialMs, d.MinMs)
	}
	if d.MinMs > d.InitialMs {
		return fmt.Errorf("spawnDelay: minMs (%d) cannot exceed initialMs (%d)", d.MinMs, d.InitialMs)
	}
	if d.StepMs < 0 {
		return fmt.Errorf("spawnDelay: stepMs must be >= 0, got %d", d.StepMs)
	}

	// 验证等级段
	if len(config.Bands) == 0 {
		return fmt.Errorf("bands cannot be empty")
	}
	hasLevelOne := false
	for i, band := range config.Bands {
		if band.MinLevel < 1 {
			return fmt.Errorf("bands[%d]: minLevel must be >= 1, got %d", i, band.MinLevel)
		}
		if band.MinLevel == 1 {
			hasLevelOne = true
		}
		if band.Every < 1 {
			return fmt.Errorf("bands[%d]: every must be >= 1, got %d", i, band.Every)
		}
		for _, name := range []string{band.Special, band.Regular} {
			kind, err := types.ParseEnemyKind(name)
			if err != nil {
				return fmt.Errorf("bands[%d]: %w", i, err)
			}
			if kind.IsBoss() {
				return fmt.Errorf("bands[%d]: boss %s cannot be spawned by the timer", i, name)
			}
		}
	}
	if !hasLevelOne {
		return fmt.Errorf("bands must contain an entry with minLevel 1")
	}

	// 验证 Boss 规则
	if config.Boss.Level < 1 || config.FinalBoss.Level < 1 {
		return fmt.Errorf("boss levels must be >= 1, got %d/%d", config.Boss.Level, config.FinalBoss.Level)
	}
	if config.FinalBoss.Level <= config.Boss.Level {
		return fmt.Errorf("finalBoss.level (%d) must be greater than boss.level (%d)", config.FinalBoss.Level, config.Boss.Level)
	}

	return nil
}

// BandForLevel 返回给定等级适用的生成段（起始等级不超过 level 的最高段）
// Bands 需按 MinLevel 升序排列；返回的索引用于区分每段独立的计数器
func (c *SpawnRulesConfig) BandForLevel(level int) (int, SpawnBand) {
	idx := 0
	for i, band := range c.Bands {
		if band.MinLevel <= level {
			idx = i
		}
	}
	return idx, c.Bands[idx]
}

// InitialDelay 返回初始生成间隔
func (c *SpawnRulesConfig) InitialDelay() time.Duration {
	return time.Duration(c.SpawnDelay.InitialMs) * time.Millisecond
}

// NextDelay 返回一次生成之后的新间隔
func (c *SpawnRulesConfig) NextDelay(current time.Duration) time.Duration {
	next := current - time.Duration(c.SpawnDelay.StepMs)*time.Millisecond
	if floor := time.Duration(c.SpawnDelay.MinMs) * time.Millisecond; next < floor {
		return floor
	}
	return next
}
