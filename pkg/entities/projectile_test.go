package entities

import (
	"math"
	"testing"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/types"
)

func TestProjectileOffScreen(t *testing.T) {
	bounds := config.Bounds{Width: 800, Height: 600}
	stats := config.DefaultZombieStats()

	tests := []struct {
		name string
		kind types.ProjectileKind
		x, y float64
		want bool
	}{
		{"玩家子弹在屏幕内", types.ProjectilePlayer, 400, 300, false},
		{"玩家子弹刚好在边缘", types.ProjectilePlayer, 800, 600, false},
		{"玩家子弹越过右边缘", types.ProjectilePlayer, 800.5, 300, true},
		{"小子弹在边距内", types.ProjectileSmall, -30, 300, false},
		{"小子弹越过边距", types.ProjectileSmall, -31, 300, true},
		{"Boss 子弹在边距内", types.ProjectileBoss, 400, 650, false},
		{"Boss 子弹越过边距", types.ProjectileBoss, 400, 651, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, _ := stats.GetProjectileStats(tt.kind)
			p := NewProjectile(tt.kind, ps, tt.x, tt.y, 0, 0)
			if got := p.IsOffScreen(bounds); got != tt.want {
				t.Errorf("IsOffScreen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectileUpdate(t *testing.T) {
	ps, _ := config.DefaultZombieStats().GetProjectileStats(types.ProjectilePlayer)
	p := NewProjectile(types.ProjectilePlayer, ps, 10, 10, 3, -4)
	p.Update()
	p.Update()
	if p.X != 16 || p.Y != 2 {
		t.Errorf("expected (16, 2), got (%v, %v)", p.X, p.Y)
	}
}

func TestNewRing(t *testing.T) {
	stats := config.DefaultZombieStats()

	ring, err := NewRing(stats, "boss", 0, 0, 20, 6)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	if len(ring) != 20 {
		t.Fatalf("expected 20 bullets, got %d", len(ring))
	}
	for i, b := range ring {
		want := float64(i) / 20 * 2 * math.Pi
		got := math.Atan2(b.DY, b.DX)
		if got < 0 {
			got += 2 * math.Pi
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("bullet %d angle = %v, want %v", i, got, want)
		}
		if b.Damage != 2 || b.Size != 20 {
			t.Errorf("bullet %d damage/size = %v/%v", i, b.Damage, b.Size)
		}
	}

	if _, err := NewRing(stats, "laser", 0, 0, 4, 1); err == nil {
		t.Error("expected error for unknown projectile")
	}
}
