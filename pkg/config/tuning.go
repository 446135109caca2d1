package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
)

// 嵌入的默认配置路径
const (
	DefaultDataDir       = "data"
	ZombieStatsFileName  = "zombie_stats.yaml"
	SpawnRulesFileName   = "spawn_rules.yaml"
	PlayerConfigFileName = "player.yaml"
)

// Tuning 汇总一局游戏需要的全部数值配置
type Tuning struct {
	Zombies *ZombieStatsConfig
	Spawn   *SpawnRulesConfig
	Player  *PlayerConfig
}

// DefaultTuning 返回内置数值（不依赖任何文件）
func DefaultTuning() *Tuning {
	return &Tuning{
		Zombies: DefaultZombieStats(),
		Spawn:   DefaultSpawnRules(),
		Player:  DefaultPlayerConfig(),
	}
}

// LoadTuning 从目录加载三份配置文件
// 缺失的文件使用内置默认值；存在但无效的文件返回错误
//
// 参数：
//   - dir: 配置目录，"data" 表示嵌入资源，其余为磁盘目录
func LoadTuning(dir string) (*Tuning, error) {
	t := DefaultTuning()

	zombies, err := LoadZombieStats(path.Join(dir, ZombieStatsFileName))
	switch {
	case err == nil:
		t.Zombies = zombies
	case isNotExist(err):
		log.Printf("[Config] %s not found in %s, using built-in zombie stats", ZombieStatsFileName, dir)
	default:
		return nil, fmt.Errorf("tuning: %w", err)
	}

	spawn, err := LoadSpawnRules(path.Join(dir, SpawnRulesFileName))
	switch {
	case err == nil:
		t.Spawn = spawn
	case isNotExist(err):
		log.Printf("[Config] %s not found in %s, using built-in spawn rules", SpawnRulesFileName, dir)
	default:
		return nil, fmt.Errorf("tuning: %w", err)
	}

	player, err := LoadPlayerConfig(path.Join(dir, PlayerConfigFileName))
	switch {
	case err == nil:
		t.Player = player
	case isNotExist(err):
		log.Printf("[Config] %s not found in %s, using built-in player config", PlayerConfigFileName, dir)
	default:
		return nil, fmt.Errorf("tuning: %w", err)
	}

	log.Printf("[Config] Tuning loaded from %s", dir)
	return t, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
