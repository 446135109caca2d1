package entities

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/types"
)

func newTestPlayer() (*Player, *config.PlayerConfig) {
	cfg := config.DefaultPlayerConfig()
	return NewPlayer(cfg, 400, 300), cfg
}

func TestPlayerMoveClampsToScreen(t *testing.T) {
	p, _ := newTestPlayer()
	bounds := config.Bounds{Width: 800, Height: 600}

	p.Move(1, 0, bounds)
	if p.X != 405 || p.Y != 300 {
		t.Fatalf("expected (405, 300), got (%v, %v)", p.X, p.Y)
	}

	// 连续向左上移动，最终停在 (size, size)
	for i := 0; i < 200; i++ {
		p.Move(-1, -1, bounds)
	}
	if p.X != p.Size || p.Y != p.Size {
		t.Errorf("expected clamp to (%v, %v), got (%v, %v)", p.Size, p.Size, p.X, p.Y)
	}

	for i := 0; i < 200; i++ {
		p.Move(1, 1, bounds)
	}
	if p.X != bounds.Width-p.Size || p.Y != bounds.Height-p.Size {
		t.Errorf("expected clamp to (%v, %v), got (%v, %v)",
			bounds.Width-p.Size, bounds.Height-p.Size, p.X, p.Y)
	}
}

func TestPlayerShootRespectsDelay(t *testing.T) {
	p, cfg := newTestPlayer()
	stats := config.DefaultZombieStats()

	first := p.Shoot(500, 300, 0, 1, &cfg.Weapon, stats)
	if len(first) != 1 {
		t.Fatalf("first shot should fire 1 bullet, got %d", len(first))
	}
	if first[0].Owner != types.OwnerPlayer {
		t.Errorf("player bullet owner = %v", first[0].Owner)
	}
	if math.Abs(first[0].DX-10) > 1e-9 || math.Abs(first[0].DY) > 1e-9 {
		t.Errorf("expected velocity (10, 0), got (%v, %v)", first[0].DX, first[0].DY)
	}

	// 间隔 200ms 时不满足 "超过" 条件
	if got := p.Shoot(500, 300, 200*time.Millisecond, 1, &cfg.Weapon, stats); got != nil {
		t.Errorf("shot at exactly the delay should be rejected, got %d bullets", len(got))
	}
	if got := p.Shoot(500, 300, 201*time.Millisecond, 1, &cfg.Weapon, stats); len(got) != 1 {
		t.Errorf("shot after the delay should fire, got %d bullets", len(got))
	}
}

func TestPlayerShootNoTarget(t *testing.T) {
	p, cfg := newTestPlayer()
	if got := p.Shoot(p.X, p.Y, 0, 1, &cfg.Weapon, config.DefaultZombieStats()); got != nil {
		t.Errorf("aiming at the player itself should not fire, got %d bullets", len(got))
	}
}

func TestPlayerShootStreams(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		streams int
		kind    types.ProjectileKind
		damage  float64
	}{
		{"1级单发", 1, 1, types.ProjectilePlayer, 1},
		{"2级单发", 2, 1, types.ProjectilePlayer, 1},
		{"3级三发", 3, 3, types.ProjectilePlayer, 1},
		{"6级六发", 6, 6, types.ProjectilePlayer, 1},
		{"7级红色单发", 7, 1, types.ProjectilePlayerRed, 7},
		{"10级红色四发", 10, 4, types.ProjectilePlayerRed, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, cfg := newTestPlayer()
			bullets := p.Shoot(500, 300, 0, tt.level, &cfg.Weapon, config.DefaultZombieStats())
			if len(bullets) != tt.streams {
				t.Fatalf("expected %d bullets, got %d", tt.streams, len(bullets))
			}
			for _, b := range bullets {
				if b.Kind != tt.kind || b.Damage != tt.damage {
					t.Errorf("bullet kind/damage = %v/%v, want %v/%v", b.Kind, b.Damage, tt.kind, tt.damage)
				}
			}
			if tt.streams > 1 {
				// 首尾弹道覆盖 60° 扇形，中心朝向目标
				first := math.Atan2(bullets[0].DY, bullets[0].DX)
				last := math.Atan2(bullets[len(bullets)-1].DY, bullets[len(bullets)-1].DX)
				if math.Abs(first+math.Pi/6) > 1e-9 || math.Abs(last-math.Pi/6) > 1e-9 {
					t.Errorf("fan edges = %v/%v, want ±π/6", first, last)
				}
			}
		})
	}
}

func TestPlayerContactDamageCooldown(t *testing.T) {
	p, cfg := newTestPlayer()
	cooldown := cfg.DamageCooldown()

	hit, dead := p.TakeContactDamage(1, 0, cooldown)
	if !hit || dead || p.Health != 9 {
		t.Fatalf("first contact: hit=%v dead=%v health=%v", hit, dead, p.Health)
	}
	if hit, _ := p.TakeContactDamage(1, 999*time.Millisecond, cooldown); hit {
		t.Error("contact within 1000ms should be ignored")
	}
	if hit, _ := p.TakeContactDamage(1, 1000*time.Millisecond, cooldown); !hit {
		t.Error("contact at 1000ms should apply")
	}
	if p.Health != 8 {
		t.Errorf("expected health 8, got %v", p.Health)
	}
}

func TestPlayerApplyDamageClampsAtZero(t *testing.T) {
	p, _ := newTestPlayer()
	if dead := p.ApplyDamage(4); dead {
		t.Fatal("player should survive 4 damage")
	}
	if dead := p.ApplyDamage(25); !dead {
		t.Fatal("player should die")
	}
	if p.Health != 0 || !p.IsDead() {
		t.Errorf("health should clamp to 0, got %v", p.Health)
	}
}
