package main

import (
	"flag"
	"log"

	"github.com/decker502/zombieshooter/data"
	"github.com/decker502/zombieshooter/pkg/app"
	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	debug     = flag.Bool("debug", false, "启用作弊组合键（1+T 跳到 15 级，T+2 跳到 25 级）")
	configDir = flag.String("config", "", "数值配置目录（包含 zombie_stats.yaml 等），默认使用内置配置")
	seed      = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
)

func main() {
	flag.Parse()

	embedded.Init(data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Debug:     *debug,
		ConfigDir: *configDir,
		Seed:      *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Zombie Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
