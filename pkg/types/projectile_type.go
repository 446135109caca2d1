package types

import "fmt"

// Owner 标记子弹的归属方
// 碰撞解析只看归属，不再探测子弹上的布尔标记
type Owner int

const (
	OwnerPlayer Owner = iota // 玩家发射，只命中敌人
	OwnerEnemy               // 敌人/Boss 发射，只命中玩家
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// ProjectileKind 定义子弹的外观与属性档位
type ProjectileKind int

const (
	ProjectilePlayer    ProjectileKind = iota // 黄色普通子弹
	ProjectilePlayerRed                       // 第 7 级起的红色子弹
	ProjectileSmall                           // 黑色僵尸的小子弹
	ProjectileBoss                            // Boss 的大子弹
	ProjectileFinalBoss                       // 最终 Boss 的金色子弹
)

var projectileNames = map[ProjectileKind]string{
	ProjectilePlayer:    "player",
	ProjectilePlayerRed: "player_red",
	ProjectileSmall:     "small",
	ProjectileBoss:      "boss",
	ProjectileFinalBoss: "final_boss",
}

func (k ProjectileKind) String() string {
	if name, ok := projectileNames[k]; ok {
		return name
	}
	return "unknown"
}

// Owner 返回该档位子弹的归属方
func (k ProjectileKind) Owner() Owner {
	switch k {
	case ProjectilePlayer, ProjectilePlayerRed:
		return OwnerPlayer
	default:
		return OwnerEnemy
	}
}

// ParseProjectileKind 将类型名解析为 ProjectileKind
func ParseProjectileKind(name string) (ProjectileKind, error) {
	for kind, n := range projectileNames {
		if n == name {
			return kind, nil
		}
	}
	return ProjectilePlayer, fmt.Errorf("unknown projectile kind %q", name)
}
