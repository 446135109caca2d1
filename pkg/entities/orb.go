package entities

import (
	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/utils"
)

// Orb 经验球
// 敌人死亡时掉落，靠近玩家时被吸附
type Orb struct {
	X, Y      float64
	Size      float64
	Collected bool
}

// NewOrb 创建经验球
func NewOrb(x, y float64, stats config.OrbStats) *Orb {
	return &Orb{X: x, Y: y, Size: stats.Size}
}

// Update 根据与玩家的距离更新经验球
//   - d < 拾取距离: 标记为已收集，返回 true
//   - d < 吸附距离: 朝玩家移动固定距离
//   - 其他: 保持不动
func (o *Orb) Update(px, py float64, stats config.OrbStats) bool {
	distance := utils.Distance(o.X, o.Y, px, py)

	if distance < stats.CollectionRange {
		o.Collected = true
		return true
	}
	if distance < stats.MagnetRange {
		o.X, o.Y = utils.StepToward(o.X, o.Y, px, py, stats.MagnetSpeed)
	}
	return false
}
