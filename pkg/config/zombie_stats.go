package config

import (
	"fmt"
	"time"

	"github.com/decker502/zombieshooter/pkg/types"
)

// EnemyStats 单个敌人类型的属性配置
type EnemyStats struct {
	Size              float64 `yaml:"size"`              // 碰撞半径（像素）
	Speed             float64 `yaml:"speed"`             // 每帧追击位移（像素）
	Health            float64 `yaml:"health"`            // 初始血量
	ContactDamage     float64 `yaml:"contactDamage"`     // Boss 接触伤害，0 表示使用玩家的接触伤害规则
	ContactCooldownMs int     `yaml:"contactCooldownMs"` // Boss 接触伤害冷却
	ShootDelayMs      int     `yaml:"shootDelayMs"`      // 环形射击间隔，0 表示不射击
	RingCount         int     `yaml:"ringCount"`         // 每次环形射击的子弹数
	BulletSpeed       float64 `yaml:"bulletSpeed"`       // 子弹每帧位移
	Projectile        string  `yaml:"projectile"`        // 子弹档位名（见 projectiles 配置）
	RewardOrbs        int     `yaml:"rewardOrbs"`        // 击杀掉落的经验球数量
	RewardScore       int     `yaml:"rewardScore"`       // 击杀得分
}

// ShootDelay 返回射击间隔
func (s *EnemyStats) ShootDelay() time.Duration {
	return time.Duration(s.ShootDelayMs) * time.Millisecond
}

// ContactCooldown 返回接触伤害冷却
func (s *EnemyStats) ContactCooldown() time.Duration {
	return time.Duration(s.ContactCooldownMs) * time.Millisecond
}

// Shoots 判断该类型是否会射击
func (s *EnemyStats) Shoots() bool {
	return s.ShootDelayMs > 0 && s.RingCount > 0
}

// ProjectileStats 单个子弹档位的属性配置
type ProjectileStats struct {
	Size   float64 `yaml:"size"`   // 碰撞半径
	Damage float64 `yaml:"damage"` // 命中伤害
	Margin float64 `yaml:"margin"` // 出屏判定的额外边距
}

// ZombieStatsConfig 敌人属性配置文件结构
type ZombieStatsConfig struct {
	Zombies     map[string]EnemyStats      `yaml:"zombies"`     // 敌人类型名 -> 属性
	Projectiles map[string]ProjectileStats `yaml:"projectiles"` // 子弹档位名 -> 属性
}

// DefaultZombieStats 返回内置的敌人属性表
// 与 data/zombie_stats.yaml 保持一致
func DefaultZombieStats() *ZombieStatsConfig {
	return &ZombieStatsConfig{
		Zombies: map[string]EnemyStats{
			types.EnemyNameNormal: {Size: 15, Speed: 1.5, Health: 2, RewardOrbs: 2, RewardScore: 10},
			types.EnemyNameBuff:   {Size: 45, Speed: 1.0, Health: 16, RewardOrbs: 7, RewardScore: 80},
			types.EnemyNameGreen:  {Size: 7, Speed: 2.0, Health: 112, RewardOrbs: 2, RewardScore: 10},
			types.EnemyNameBlack: {
				Size: 35, Speed: 1.2, Health: 560,
				ShootDelayMs: 4000, RingCount: 10, BulletSpeed: 4, Projectile: "small",
				RewardOrbs: 2, RewardScore: 10,
			},
			types.EnemyNameBoss: {
				Size: 60, Speed: 0.8, Health: 25200,
				ContactDamage: 5, ContactCooldownMs: 5000,
				ShootDelayMs: 1000, RingCount: 20, BulletSpeed: 6, Projectile: "boss",
				RewardOrbs: 150, RewardScore: 1000,
			},
			types.EnemyNameFinalBoss: {
				Size: 80, Speed: 0.6, Health: 50000,
				ContactDamage: 5, ContactCooldownMs: 5000,
				ShootDelayMs: 500, RingCount: 30, BulletSpeed: 5, Projectile: "final_boss",
				RewardOrbs: 500, RewardScore: 5000,
			},
		},
		Projectiles: map[string]ProjectileStats{
			"player":     {Size: 3, Damage: 1, Margin: 0},
			"player_red": {Size: 3, Damage: 7, Margin: 0},
			"small":      {Size: 4, Damage: 1, Margin: 30},
			"boss":       {Size: 20, Damage: 2, Margin: 50},
			"final_boss": {Size: 8, Damage: 0.5, Margin: 50},
		},
	}
}

// LoadZombieStats 从 YAML 文件加载敌人属性配置
// 参数：
//
//	filepath - 配置文件路径，"data/" 开头时从嵌入资源读取
//
// 返回：
//
//	*ZombieStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadZombieStats(filepath string) (*ZombieStatsConfig, error) {
	var config ZombieStatsConfig
	if err := readYAML(filepath, &config); err != nil {
		return nil, fmt.Errorf("failed to load zombie stats: %w", err)
	}

	if err := validateZombieStats(&config); err != nil {
		return nil, fmt.Errorf("invalid zombie stats in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateZombieStats 验证敌人属性配置的完整性和合法性
func validateZombieStats(config *ZombieStatsConfig) error {
	for _, kind := range types.AllEnemyKinds() {
		if _, ok := config.Zombies[kind.String()]; !ok {
			return fmt.Errorf("zombie %s: missing entry", kind)
		}
	}

	for name, stats := range config.Zombies {
		if _, err := types.ParseEnemyKind(name); err != nil {
			return fmt.Errorf("zombie %s: %w", name, err)
		}
		if stats.Size <= 0 {
			return fmt.Errorf("zombie %s: size must be positive, got %v", name, stats.Size)
		}
		if stats.Speed < 0 {
			return fmt.Errorf("zombie %s: speed cannot be negative, got %v", name, stats.Speed)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("zombie %s: health must be positive, got %v", name, stats.Health)
		}
		if stats.RewardOrbs < 0 || stats.RewardScore < 0 {
			return fmt.Errorf("zombie %s: rewards cannot be negative", name)
		}
		if stats.Shoots() {
			if _, ok := config.Projectiles[stats.Projectile]; !ok {
				return fmt.Errorf("zombie %s: unknown projectile %q", name, stats.Projectile)
			}
			// 敌人只能发射敌方子弹，否则碰撞结算会把它当作玩家子弹
			if kind, err := types.ParseProjectileKind(stats.Projectile); err == nil && kind.Owner() != types.OwnerEnemy {
				return fmt.Errorf("zombie %s: projectile %q is owned by the %s", name, stats.Projectile, kind.Owner())
			}
		}
	}

	for name, p := range config.Projectiles {
		if _, err := types.ParseProjectileKind(name); err != nil {
			return fmt.Errorf("projectile %s: %w", name, err)
		}
		if p.Size <= 0 {
			return fmt.Errorf("projectile %s: size must be positive, got %v", name, p.Size)
		}
		if p.Damage < 0 {
			return fmt.Errorf("projectile %s: damage cannot be negative, got %v", name, p.Damage)
		}
	}
	for _, required := range []string{"player", "player_red"} {
		if _, ok := config.Projectiles[required]; !ok {
			return fmt.Errorf("projectile %s: missing entry", required)
		}
	}

	return nil
}

// GetEnemyStats 获取指定敌人类型的完整属性
// 如果敌人类型不存在，返回 nil 和 false
func (c *ZombieStatsConfig) GetEnemyStats(kind types.EnemyKind) (*EnemyStats, bool) {
	stats, ok := c.Zombies[kind.String()]
	if !ok {
		return nil, false
	}
	return &stats, true
}

// GetProjectileStats 获取指定子弹档位的属性
func (c *ZombieStatsConfig) GetProjectileStats(kind types.ProjectileKind) (ProjectileStats, bool) {
	stats, ok := c.Projectiles[kind.String()]
	return stats, ok
}
