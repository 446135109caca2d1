package entities

import (
	"math"
	"time"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/types"
	"github.com/decker502/zombieshooter/pkg/utils"
)

// Player 玩家
type Player struct {
	X, Y      float64
	Size      float64
	Speed     float64
	Health    float64
	MaxHealth float64

	// ShootDelay 当前射击间隔，随等级缩短
	ShootDelay time.Duration

	shot Cooldown // 上一次射击
	hurt Cooldown // 上一次受到接触伤害
}

// NewPlayer 在 (x, y) 创建 1 级玩家
func NewPlayer(cfg *config.PlayerConfig, x, y float64) *Player {
	return &Player{
		X:          x,
		Y:          y,
		Size:       cfg.Player.Size,
		Speed:      cfg.Player.Speed,
		Health:     cfg.Player.MaxHealth,
		MaxHealth:  cfg.Player.MaxHealth,
		ShootDelay: cfg.Weapon.ShootDelayForLevel(1),
	}
}

// Move 按输入方向移动并限制在屏幕内
// 键盘输入每个轴为 -1/0/1，摇杆输入为单位向量
func (p *Player) Move(dirX, dirY float64, bounds config.Bounds) {
	p.X += dirX * p.Speed
	p.Y += dirY * p.Speed

	p.X = utils.Clamp(p.X, p.Size, bounds.Width-p.Size)
	p.Y = utils.Clamp(p.Y, p.Size, bounds.Height-p.Size)
}

// UpdateShootSpeed 按等级重新计算射击间隔
func (p *Player) UpdateShootSpeed(weapon *config.WeaponStats, level int) {
	p.ShootDelay = weapon.ShootDelayForLevel(level)
}

// Shoot 朝目标点自动射击
// 距上次射击超过 ShootDelay 时发射一轮扇形子弹，否则返回 nil
// 目标点与玩家重合时不射击
func (p *Player) Shoot(targetX, targetY float64, now time.Duration, level int, weapon *config.WeaponStats, stats *config.ZombieStatsConfig) []*Projectile {
	if !p.shot.Exceeded(now, p.ShootDelay) {
		return nil
	}

	dx := targetX - p.X
	dy := targetY - p.Y
	if dx == 0 && dy == 0 {
		return nil
	}
	baseAngle := math.Atan2(dy, dx)

	streams, red := weapon.StreamsForLevel(level)
	kind := types.ProjectilePlayer
	if red {
		kind = types.ProjectilePlayerRed
	}
	pstats, ok := stats.GetProjectileStats(kind)
	if !ok {
		return nil
	}

	// 多弹道在扇形内均匀分布，以瞄准方向为中心
	startAngle := baseAngle
	angleStep := 0.0
	if streams > 1 {
		spread := weapon.SpreadRadians()
		startAngle = baseAngle - spread/2
		angleStep = spread / float64(streams-1)
	}

	bullets := make([]*Projectile, 0, streams)
	for i := 0; i < streams; i++ {
		angle := startAngle + float64(i)*angleStep
		bullets = append(bullets, NewProjectile(kind, pstats, p.X, p.Y,
			math.Cos(angle)*weapon.BulletSpeed, math.Sin(angle)*weapon.BulletSpeed))
	}

	p.shot.Trigger(now)
	return bullets
}

// TakeContactDamage 受到接触伤害（受冷却限制）
// 返回 hit 表示本次是否扣血，dead 表示是否死亡
func (p *Player) TakeContactDamage(amount float64, now, cooldown time.Duration) (hit, dead bool) {
	if !p.hurt.Ready(now, cooldown) {
		return false, false
	}
	p.hurt.Trigger(now)
	return true, p.ApplyDamage(amount)
}

// ApplyDamage 直接扣血（子弹、Boss 接触），血量最低为 0
// 返回是否死亡
func (p *Player) ApplyDamage(amount float64) bool {
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// IsDead 判断玩家是否死亡
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// SinceLastHurt 距上次接触伤害的时长
func (p *Player) SinceLastHurt(now time.Duration) (time.Duration, bool) {
	return p.hurt.Since(now)
}
