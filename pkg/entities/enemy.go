package entities

import (
	"fmt"
	"time"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/types"
	"github.com/decker502/zombieshooter/pkg/utils"
)

// Enemy 敌人（四种僵尸与两种 Boss）
// 所有敌人共用追击逻辑，差异全部来自属性表
type Enemy struct {
	Kind      types.EnemyKind
	X, Y      float64
	Size      float64
	Speed     float64
	Health    float64
	MaxHealth float64

	stats   *config.EnemyStats
	shot    Cooldown // 上一次环形射击
	contact Cooldown // 上一次对玩家造成接触伤害（Boss 使用）
}

// NewEnemy 根据属性表创建指定类型的敌人
func NewEnemy(kind types.EnemyKind, table *config.ZombieStatsConfig, x, y float64) (*Enemy, error) {
	stats, ok := table.GetEnemyStats(kind)
	if !ok {
		return nil, fmt.Errorf("no stats for enemy kind %s", kind)
	}
	return &Enemy{
		Kind:      kind,
		X:         x,
		Y:         y,
		Size:      stats.Size,
		Speed:     stats.Speed,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		stats:     stats,
	}, nil
}

// Pursue 朝目标点直线前进 Speed 像素
func (e *Enemy) Pursue(tx, ty float64) {
	e.X, e.Y = utils.StepToward(e.X, e.Y, tx, ty, e.Speed)
}

// Shoot 射击间隔已过时发射一圈子弹，否则返回 nil
func (e *Enemy) Shoot(now time.Duration, table *config.ZombieStatsConfig) ([]*Projectile, error) {
	if !e.stats.Shoots() || !e.shot.Exceeded(now, e.stats.ShootDelay()) {
		return nil, nil
	}
	ring, err := NewRing(table, e.stats.Projectile, e.X, e.Y, e.stats.RingCount, e.stats.BulletSpeed)
	if err != nil {
		return nil, err
	}
	e.shot.Trigger(now)
	return ring, nil
}

// TakeDamage 扣血并返回是否死亡
// 死亡时血量记为 0
func (e *Enemy) TakeDamage(damage float64) bool {
	e.Health -= damage
	if e.Health <= 0 {
		e.Health = 0
		return true
	}
	return false
}

// CanDamagePlayer Boss 接触伤害是否已冷却完毕
func (e *Enemy) CanDamagePlayer(now time.Duration) bool {
	return e.contact.Ready(now, e.stats.ContactCooldown())
}

// DamagePlayer 记录一次接触伤害并返回伤害值
func (e *Enemy) DamagePlayer(now time.Duration) float64 {
	e.contact.Trigger(now)
	return e.stats.ContactDamage
}

// Reward 返回击杀奖励（经验球数量、分数）
func (e *Enemy) Reward() (orbs, score int) {
	return e.stats.RewardOrbs, e.stats.RewardScore
}

// Touches 判断是否与给定圆相交
func (e *Enemy) Touches(x, y, r float64) bool {
	return utils.CirclesOverlap(e.X, e.Y, e.Size, x, y, r)
}
