package entities

import (
	"fmt"
	"math"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/types"
)

// Projectile 子弹
// 玩家子弹与敌人子弹共用同一结构，通过 Owner 区分命中对象
type Projectile struct {
	Kind   types.ProjectileKind
	Owner  types.Owner
	X, Y   float64
	DX, DY float64 // 每帧位移
	Size   float64
	Damage float64
	Margin float64 // 出屏判定边距
}

// NewProjectile 根据档位属性创建子弹
func NewProjectile(kind types.ProjectileKind, stats config.ProjectileStats, x, y, dx, dy float64) *Projectile {
	return &Projectile{
		Kind:   kind,
		Owner:  kind.Owner(),
		X:      x,
		Y:      y,
		DX:     dx,
		DY:     dy,
		Size:   stats.Size,
		Damage: stats.Damage,
		Margin: stats.Margin,
	}
}

// Update 按速度前进一帧
func (p *Projectile) Update() {
	p.X += p.DX
	p.Y += p.DY
}

// IsOffScreen 判断子弹是否已飞出（带边距的）屏幕
func (p *Projectile) IsOffScreen(bounds config.Bounds) bool {
	return p.X < -p.Margin || p.X > bounds.Width+p.Margin ||
		p.Y < -p.Margin || p.Y > bounds.Height+p.Margin
}

// NewRing 以 (x, y) 为圆心向四周均匀发射 count 发子弹
// 第 i 发子弹的角度为 2πi/count
func NewRing(stats *config.ZombieStatsConfig, kindName string, x, y float64, count int, speed float64) ([]*Projectile, error) {
	kind, err := types.ParseProjectileKind(kindName)
	if err != nil {
		return nil, err
	}
	pstats, ok := stats.GetProjectileStats(kind)
	if !ok {
		return nil, fmt.Errorf("no stats for projectile %s", kind)
	}

	ring := make([]*Projectile, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		ring = append(ring, NewProjectile(kind, pstats, x, y, math.Cos(angle)*speed, math.Sin(angle)*speed))
	}
	return ring, nil
}
