// Package types 定义共享的基础类型
package types

import "fmt"

// EnemyKind 定义敌人的类型
type EnemyKind int

const (
	// EnemyUnknown 未知敌人类型
	EnemyUnknown EnemyKind = iota

	EnemyNormal // 普通僵尸
	EnemyBuff   // 壮硕僵尸（橙色，3倍体型）
	EnemyGreen  // 绿色僵尸（小而快）
	EnemyBlack  // 黑色僵尸（远程，环形射击）

	// Boss
	EnemyBoss      // 第一个 Boss（第 15 级出现）
	EnemyFinalBoss // 最终 Boss（第 25 级出现）
)

// 配置文件中使用的类型名
const (
	EnemyNameNormal    = "normal"
	EnemyNameBuff      = "buff"
	EnemyNameGreen     = "green"
	EnemyNameBlack     = "black"
	EnemyNameBoss      = "boss"
	EnemyNameFinalBoss = "final_boss"
)

var enemyNames = map[EnemyKind]string{
	EnemyNormal:    EnemyNameNormal,
	EnemyBuff:      EnemyNameBuff,
	EnemyGreen:     EnemyNameGreen,
	EnemyBlack:     EnemyNameBlack,
	EnemyBoss:      EnemyNameBoss,
	EnemyFinalBoss: EnemyNameFinalBoss,
}

// AllEnemyKinds 按固定顺序返回所有已知敌人类型
func AllEnemyKinds() []EnemyKind {
	return []EnemyKind{EnemyNormal, EnemyBuff, EnemyGreen, EnemyBlack, EnemyBoss, EnemyFinalBoss}
}

// String 返回配置文件中使用的类型名
func (k EnemyKind) String() string {
	if name, ok := enemyNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsBoss 判断是否为 Boss 类敌人（单例、带接触冷却）
func (k EnemyKind) IsBoss() bool {
	return k == EnemyBoss || k == EnemyFinalBoss
}

// ParseEnemyKind 将类型名解析为 EnemyKind
func ParseEnemyKind(name string) (EnemyKind, error) {
	for kind, n := range enemyNames {
		if n == name {
			return kind, nil
		}
	}
	return EnemyUnknown, fmt.Errorf("unknown enemy kind %q", name)
}

// BossTitle 返回 Boss 血条上显示的名字，非 Boss 返回空串
func (k EnemyKind) BossTitle() string {
	switch k {
	case EnemyBoss:
		return "MAKS GOD OF WAR"
	case EnemyFinalBoss:
		return "HANAKO DEMON FOX"
	}
	return ""
}
