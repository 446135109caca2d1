package config

import (
	"fmt"
	"math"
	"time"
)

// PlayerConfig 玩家、武器、经验球与升级相关的配置
type PlayerConfig struct {
	Player      PlayerStats       `yaml:"player"`
	Weapon      WeaponStats       `yaml:"weapon"`
	Orb         OrbStats          `yaml:"orb"`
	Progression ProgressionConfig `yaml:"progression"`
	Cheats      CheatConfig       `yaml:"cheats"`
}

// PlayerStats 玩家基础属性
type PlayerStats struct {
	Size             float64 `yaml:"size"`             // 碰撞半径
	Speed            float64 `yaml:"speed"`            // 每帧位移
	MaxHealth        float64 `yaml:"maxHealth"`        // 最大血量
	ContactDamage    float64 `yaml:"contactDamage"`    // 普通僵尸接触伤害
	DamageCooldownMs int     `yaml:"damageCooldownMs"` // 接触伤害冷却
}

// WeaponStats 自动射击配置
type WeaponStats struct {
	BaseDelayMs      int     `yaml:"baseDelayMs"`      // 1 级射击间隔
	MinDelayMs       int     `yaml:"minDelayMs"`       // 射击间隔下限
	BulletSpeed      float64 `yaml:"bulletSpeed"`      // 子弹每帧位移
	SpreadDegrees    float64 `yaml:"spreadDegrees"`    // 多弹道扇形总角度
	MultiStreamLevel int     `yaml:"multiStreamLevel"` // 从该等级起弹道数等于等级
	RedLevel         int     `yaml:"redLevel"`         // 从该等级起切换为红色子弹
}

// OrbStats 经验球配置
type OrbStats struct {
	Size            float64 `yaml:"size"`            // 绘制半径
	CollectionRange float64 `yaml:"collectionRange"` // 拾取距离
	MagnetRange     float64 `yaml:"magnetRange"`     // 吸附距离
	MagnetSpeed     float64 `yaml:"magnetSpeed"`     // 吸附时每帧位移
	SpawnOffset     int     `yaml:"spawnOffset"`     // 掉落时的随机偏移范围 [-n, n]
}

// ProgressionConfig 升级配置
type ProgressionConfig struct {
	OrbsPerLevel int `yaml:"orbsPerLevel"` // 升级所需经验球 = 等级 * OrbsPerLevel
}

// CheatConfig 调试作弊配置（仅在调试模式下生效）
type CheatConfig struct {
	HoldMs int `yaml:"holdMs"` // 按住组合键的时长
}

// DefaultPlayerConfig 返回内置的玩家配置，与 data/player.yaml 一致
func DefaultPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		Player: PlayerStats{Size: 20, Speed: 5, MaxHealth: 10, ContactDamage: 1, DamageCooldownMs: 1000},
		Weapon: WeaponStats{
			BaseDelayMs: 200, MinDelayMs: 25, BulletSpeed: 10, SpreadDegrees: 60,
			MultiStreamLevel: 3, RedLevel: 7,
		},
		Orb:         OrbStats{Size: 5, CollectionRange: 20, MagnetRange: 80, MagnetSpeed: 6, SpawnOffset: 15},
		Progression: ProgressionConfig{OrbsPerLevel: 10},
		Cheats:      CheatConfig{HoldMs: 3000},
	}
}

// LoadPlayerConfig 从 YAML 文件加载玩家配置
func LoadPlayerConfig(filePath string) (*PlayerConfig, error) {
	var config PlayerConfig
	if err := readYAML(filePath, &config); err != nil {
		return nil, fmt.Errorf("failed to load player config: %w", err)
	}

	if err := validatePlayerConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid player config in %s: %w", filePath, err)
	}

	return &config, nil
}

// validatePlayerConfig 验证玩家配置
func validatePlayerConfig(c *PlayerConfig) error {
	if c.Player.Size <= 0 || c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player: size and maxHealth must be positive")
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("player: speed cannot be negative, got %v", c.Player.Speed)
	}
	if c.Player.DamageCooldownMs < 0 {
		return fmt.Errorf("player: damageCooldownMs cannot be negative, got %d", c.Player.DamageCooldownMs)
	}
	w := c.Weapon
	if w.BaseDelayMs <= 0 || w.MinDelayMs <= 0 {
		return fmt.Errorf("weapon: baseDelayMs and minDelayMs must be positive")
	}
	if w.MinDelayMs > w.BaseDelayMs {
		return fmt.Errorf("weapon: minDelayMs (%d) cannot exceed baseDelayMs (%d)", w.MinDelayMs, w.BaseDelayMs)
	}
	if w.BulletSpeed <= 0 {
		return fmt.Errorf("weapon: bulletSpeed must be positive, got %v", w.BulletSpeed)
	}
	if w.SpreadDegrees < 0 || w.SpreadDegrees > 360 {
		return fmt.Errorf("weapon: spreadDegrees must be within [0, 360], got %v", w.SpreadDegrees)
	}
	if w.MultiStreamLevel < 1 || w.RedLevel < 1 {
		return fmt.Errorf("weapon: multiStreamLevel and redLevel must be >= 1")
	}
	o := c.Orb
	if o.CollectionRange <= 0 || o.MagnetRange < o.CollectionRange {
		return fmt.Errorf("orb: need 0 < collectionRange <= magnetRange, got %v/%v", o.CollectionRange, o.MagnetRange)
	}
	if o.MagnetSpeed < 0 || o.SpawnOffset < 0 {
		return fmt.Errorf("orb: magnetSpeed and spawnOffset cannot be negative")
	}
	if c.Progression.OrbsPerLevel < 1 {
		return fmt.Errorf("progression: orbsPerLevel must be >= 1, got %d", c.Progression.OrbsPerLevel)
	}
	if c.Cheats.HoldMs < 0 {
		return fmt.Errorf("cheats: holdMs cannot be negative, got %d", c.Cheats.HoldMs)
	}
	return nil
}

// DamageCooldown 返回玩家接触伤害冷却
func (c *PlayerConfig) DamageCooldown() time.Duration {
	return time.Duration(c.Player.DamageCooldownMs) * time.Millisecond
}

// CheatHold 返回作弊组合键需要按住的时长
func (c *PlayerConfig) CheatHold() time.Duration {
	return time.Duration(c.Cheats.HoldMs) * time.Millisecond
}

// ShootDelayForLevel 计算给定等级的射击间隔
// delay = max(min, base / 2^(level-1))，随等级单调不增
func (w *WeaponStats) ShootDelayForLevel(level int) time.Duration {
	floor := time.Duration(w.MinDelayMs) * time.Millisecond
	if level < 1 {
		level = 1
	}
	// 2^30 之后基础间隔早已低于下限，避免移位溢出
	if level-1 >= 30 {
		return floor
	}
	// 与毫秒整除保持一致
	delay := time.Duration(w.BaseDelayMs>>(level-1)) * time.Millisecond
	if delay < floor {
		return floor
	}
	return delay
}

// StreamsForLevel 返回给定等级的弹道数量与是否为红色子弹
func (w *WeaponStats) StreamsForLevel(level int) (streams int, red bool) {
	if level >= w.RedLevel {
		return level - w.RedLevel + 1, true
	}
	if level < w.MultiStreamLevel {
		return 1, false
	}
	return level, false
}

// SpreadRadians 返回扇形总角度（弧度）
func (w *WeaponStats) SpreadRadians() float64 {
	return w.SpreadDegrees * math.Pi / 180
}

// OrbsNeeded 返回从 level 升到下一级需要的经验球数量
func (p *ProgressionConfig) OrbsNeeded(level int) int {
	return level * p.OrbsPerLevel
}
