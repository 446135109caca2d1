// tui 在终端中运行僵尸射击游戏
//
// 使用方法:
//
//	go run ./cmd/tui [-debug] [-seed N] [-config DIR] [-log FILE]
//
// 操作: WASD/方向键移动，鼠标瞄准（未移动鼠标时自动瞄准最近的敌人），P 暂停，R 重新开始，Q 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/zombieshooter/data"
	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/embedded"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/tui"
	"github.com/gdamore/tcell/v2"
)

var (
	debug     = flag.Bool("debug", false, "启用作弊组合键（1+T 跳到 15 级，T+2 跳到 25 级）")
	configDir = flag.String("config", "", "数值配置目录，默认使用内置配置")
	seed      = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	logFile   = flag.String("log", "", "日志文件（终端被游戏占用，默认丢弃日志）")
	mute      = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	embedded.Init(data.FS)

	dir := *configDir
	if dir == "" {
		dir = config.DefaultDataDir
	}
	tuning, err := config.LoadTuning(dir)
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}

	settingsManager, err := game.NewSettingsManager(game.OpenStorage(game.AppName))
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if *mute {
		settingsManager.SetSoundEnabled(false)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	world := game.NewWorld(tuning, config.ScreenBounds(), rand.New(rand.NewSource(s)))
	world.Debug = *debug || settingsManager.GetSettings().DebugCheats

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := tui.NewSound(settingsManager)
	if err := sound.Initialize(); err != nil {
		// 没有音频设备时照常运行
		log.Printf("[TUI] Sound disabled: %v", err)
	}
	defer sound.Cleanup()

	log.Printf("[TUI] Started (seed=%d, debug=%v, config=%s)", s, world.Debug, dir)
	tui.New(screen, world, sound).Run()
	log.Printf("[TUI] Quit: level=%d score=%d", world.Level, world.Score)
	return nil
}
