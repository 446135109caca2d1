// verify_balance 无界面运行模拟，检查数值平衡
//
// 玩家沿屏幕中心绕圈移动，始终瞄准最近的敌人，运行指定时长后打印等级、分数和各类敌人的击杀数。
//
// 使用方法:
//
//	go run ./cmd/verify_balance [-seconds 300] [-seed 1] [-radius 150] [-config DIR] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/zombieshooter/data"
	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/embedded"
	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/systems"
	"github.com/decker502/zombieshooter/pkg/types"
	"github.com/decker502/zombieshooter/pkg/utils"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	seconds   = flag.Int("seconds", 300, "模拟的游戏时长（秒）")
	seed      = flag.Int64("seed", 1, "随机种子")
	radius    = flag.Float64("radius", 150, "绕圈半径（像素）")
	period    = flag.Float64("period", 6, "绕圈一周的时间（秒）")
	configDir = flag.String("config", "", "数值配置目录，默认使用内置配置")
	report    = flag.Int("report", 30, "每隔多少秒打印一次进度，0 表示只打印最终结果")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.Init(data.FS)

	dir := *configDir
	if dir == "" {
		dir = config.DefaultDataDir
	}
	tuning, err := config.LoadTuning(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := game.NewWorld(tuning, config.ScreenBounds(), rand.New(rand.NewSource(*seed)))
	sim := systems.NewSimulation(w)

	ticks := *seconds * config.TicksPerSecond
	reportEvery := *report * config.TicksPerSecond
	for i := 0; i < ticks && w.State != game.StateGameOver; i++ {
		sim.Step(circleInput(w, *radius, *period))
		if reportEvery > 0 && (i+1)%reportEvery == 0 {
			printStatus(w)
		}
	}

	fmt.Println("=== Result ===")
	printStatus(w)
	if w.State == game.StateGameOver {
		fmt.Println("Player died")
	}
	for _, kind := range types.AllEnemyKinds() {
		fmt.Printf("  %-10s kills: %d\n", kind, w.Kills[kind])
	}
}

// circleInput 朝圆周上的目标点移动，瞄准最近的敌人
func circleInput(w *game.World, radius, periodSec float64) game.Input {
	p := w.Player
	angle := 2 * math.Pi * w.Now.Seconds() / periodSec
	tx := w.Bounds.Width/2 + radius*math.Cos(angle)
	ty := w.Bounds.Height/2 + radius*math.Sin(angle)

	var in game.Input
	if d := utils.Distance(p.X, p.Y, tx, ty); d > p.Speed {
		in.MoveX, in.MoveY = (tx-p.X)/d, (ty-p.Y)/d
	}
	if target := nearest(w); target != nil {
		in.AimX, in.AimY, in.HasAim = target.X, target.Y, true
	}
	return in
}

func nearest(w *game.World) *entities.Enemy {
	var best *entities.Enemy
	bestDist := math.Inf(1)
	candidates := append([]*entities.Enemy{w.Boss, w.FinalBoss}, w.Zombies...)
	for _, e := range candidates {
		if e == nil {
			continue
		}
		if d := utils.Distance(w.Player.X, w.Player.Y, e.X, e.Y); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func printStatus(w *game.World) {
	fmt.Printf("[%6s] Lv.%-2d score=%-6d health=%s/%s zombies=%d orbs=%d/%d\n",
		w.Now.Round(time.Second), w.Level, w.Score,
		game.FormatHealth(w.Player.Health), game.FormatHealth(w.Player.MaxHealth),
		len(w.Zombies), w.OrbsCollected, w.OrbsNeeded)
}
