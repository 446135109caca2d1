package systems

import (
	"log"

	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/types"
	"github.com/decker502/zombieshooter/pkg/utils"
)

// CollisionSystem 子弹命中与接触伤害结算
//
// 每颗子弹最多命中一个目标；玩家子弹依次检查 Boss、最终 Boss、普通僵尸，
// 第一个相交的目标即为命中目标
type CollisionSystem struct {
	world *game.World
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(w *game.World) *CollisionSystem {
	return &CollisionSystem{world: w}
}

// Update 结算本帧所有碰撞，玩家死亡时进入 GameOver
func (s *CollisionSystem) Update(deltaTime float64) {
	w := s.world

	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		// 玩家死亡后剩余的子弹保持原样
		if w.State == game.StateGameOver || !s.resolveProjectile(p) {
			kept = append(kept, p)
		}
	}
	clearTail(w.Projectiles, len(kept))
	w.Projectiles = kept

	if w.State == game.StateGameOver {
		return
	}
	s.resolveContacts()
}

// resolveProjectile 处理单颗子弹，返回子弹是否被消耗
func (s *CollisionSystem) resolveProjectile(p *entities.Projectile) bool {
	w := s.world

	if p.Owner == types.OwnerEnemy {
		player := w.Player
		if !utils.CirclesOverlap(p.X, p.Y, p.Size, player.X, player.Y, player.Size) {
			return false
		}
		s.damagePlayer(p.Damage)
		return true
	}

	if w.Boss != nil && w.Boss.Touches(p.X, p.Y, p.Size) {
		if w.Boss.TakeDamage(p.Damage) {
			s.kill(w.Boss)
			w.Boss = nil
			w.BossDefeated = true
		}
		return true
	}

	if w.FinalBoss != nil && w.FinalBoss.Touches(p.X, p.Y, p.Size) {
		if w.FinalBoss.TakeDamage(p.Damage) {
			s.kill(w.FinalBoss)
			w.FinalBoss = nil
			w.FinalBossDefeated = true
		}
		return true
	}

	for i, z := range w.Zombies {
		if !z.Touches(p.X, p.Y, p.Size) {
			continue
		}
		if z.TakeDamage(p.Damage) {
			s.kill(z)
			w.Zombies = append(w.Zombies[:i], w.Zombies[i+1:]...)
		}
		return true
	}
	return false
}

// resolveContacts 玩家与敌人身体接触
// Boss 接触伤害受各自的冷却限制；普通僵尸不论几只相交都只按玩家冷却扣一次
func (s *CollisionSystem) resolveContacts() {
	w := s.world
	player := w.Player

	touchingZombie := false
	for _, z := range w.Zombies {
		if z.Touches(player.X, player.Y, player.Size) {
			touchingZombie = true
			break
		}
	}

	for _, boss := range []*entities.Enemy{w.Boss, w.FinalBoss} {
		if boss == nil || !boss.Touches(player.X, player.Y, player.Size) {
			continue
		}
		if !boss.CanDamagePlayer(w.Now) {
			continue
		}
		if s.damagePlayer(boss.DamagePlayer(w.Now)) {
			return
		}
	}

	if touchingZombie {
		cfg := w.Tuning.Player
		hit, dead := player.TakeContactDamage(cfg.Player.ContactDamage, w.Now, cfg.DamageCooldown())
		if hit {
			s.playerHit()
		}
		if dead {
			w.GameOver()
		}
	}
}

// damagePlayer 无冷却扣血，返回玩家是否死亡
func (s *CollisionSystem) damagePlayer(amount float64) bool {
	w := s.world
	dead := w.Player.ApplyDamage(amount)
	s.playerHit()
	if dead {
		w.GameOver()
	}
	return dead
}

func (s *CollisionSystem) playerHit() {
	w := s.world
	w.Emit(game.Event{Kind: game.EventPlayerHit, X: w.Player.X, Y: w.Player.Y, Value: int(w.Player.Health)})
}

// kill 结算击杀奖励：掉落经验球并加分
func (s *CollisionSystem) kill(e *entities.Enemy) {
	w := s.world
	orbs, score := e.Reward()
	w.SpawnOrbs(e.X, e.Y, orbs)
	w.Score += score
	w.Kills[e.Kind]++
	w.Emit(game.Event{Kind: game.EventEnemyKilled, Enemy: e.Kind, X: e.X, Y: e.Y, Value: score})
	if e.Kind.IsBoss() {
		log.Printf("[Combat] %s defeated, +%d score, %d orbs", e.Kind, score, orbs)
	}
}
