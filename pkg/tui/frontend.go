// Package tui 终端前端
// 用 tcell 把同一套模拟画到终端网格上，键盘移动、鼠标瞄准
package tui

import (
	"log"
	"math"
	"time"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/systems"
	"github.com/decker502/zombieshooter/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// Frontend 终端前端
type Frontend struct {
	screen tcell.Screen
	sim    *systems.Simulation
	world  *game.World
	sound  *Sound
	view   Viewport
	keys   *heldKeys

	// 鼠标瞄准点；从未收到鼠标事件时自动瞄准最近的敌人
	aimX, aimY float64
	mouseAim   bool

	// 边沿触发的按键，在下一帧消费
	pendingPause   bool
	pendingRestart bool

	quit bool
}

// New 创建终端前端，sound 可为 nil
func New(screen tcell.Screen, world *game.World, sound *Sound) *Frontend {
	cols, rows := screen.Size()
	return &Frontend{
		screen: screen,
		sim:    systems.NewSimulation(world),
		world:  world,
		sound:  sound,
		view:   NewViewport(cols, rows, world.Bounds),
		keys:   newHeldKeys(world.Tuning.Player.CheatHold() + time.Second),
	}
}

// Run 主循环：事件协程 + 固定步长 ticker
func (f *Frontend) Run() {
	ticker := time.NewTicker(config.TickDuration)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	f.Draw()
	for !f.quit {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			f.HandleEvent(ev, time.Now())
		case now := <-ticker.C:
			f.Tick(now)
			f.Draw()
		}
	}
}

// Quit 是否请求退出
func (f *Frontend) Quit() bool {
	return f.quit
}

// HandleEvent 处理一个 tcell 事件
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.handleKey(ev, now)
	case *tcell.EventMouse:
		col, row := ev.Position()
		if row >= hudRows && row < hudRows+f.view.FieldRows() {
			f.aimX, f.aimY = f.view.ToField(col, row)
			f.mouseAim = true
		}
	case *tcell.EventResize:
		cols, rows := f.screen.Size()
		f.view = NewViewport(cols, rows, f.world.Bounds)
		f.screen.Sync()
	}
}

func (f *Frontend) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		f.quit = true
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			f.quit = true
			return
		case 'p', 'P':
			f.pendingPause = true
			return
		case 'r', 'R':
			f.pendingRestart = true
			return
		}
	}

	name := keyName(ev)
	if name == "" {
		return
	}
	if o, ok := opposite[name]; ok {
		f.keys.Release(o)
	}
	f.keys.Press(name, now)
}

// input 根据按键状态组装一帧输入
func (f *Frontend) input(now time.Time) game.Input {
	var in game.Input
	if f.keys.Held(keyLeft, now) {
		in.MoveX--
	}
	if f.keys.Held(keyRight, now) {
		in.MoveX++
	}
	if f.keys.Held(keyUp, now) {
		in.MoveY--
	}
	if f.keys.Held(keyDown, now) {
		in.MoveY++
	}

	t := f.keys.Held(keyT, now)
	in.CheatToBoss = t && f.keys.Held(keyOne, now)
	in.CheatToFinalBoss = t && f.keys.Held(keyTwo, now)

	in.Pause, f.pendingPause = f.pendingPause, false
	in.Restart, f.pendingRestart = f.pendingRestart, false

	if f.mouseAim {
		in.AimX, in.AimY, in.HasAim = f.aimX, f.aimY, true
	} else if target := nearestEnemy(f.world); target != nil {
		in.AimX, in.AimY, in.HasAim = target.X, target.Y, true
	}
	return in
}

// Tick 推进一帧
func (f *Frontend) Tick(now time.Time) {
	wasOver := f.world.State == game.StateGameOver
	f.sim.Step(f.input(now))
	if wasOver && f.world.State == game.StateRunning {
		f.keys.Clear()
	}

	if f.sound != nil {
		f.sound.PlayEvents(f.world.Events)
	}
	for _, ev := range f.world.Events {
		if ev.Kind == game.EventGameOver {
			log.Printf("[TUI] Game over, score %d", ev.Value)
		}
	}
}

// nearestEnemy 返回离玩家最近的敌人（含 Boss），没有时返回 nil
func nearestEnemy(w *game.World) *entities.Enemy {
	p := w.Player
	var best *entities.Enemy
	bestDist := math.Inf(1)

	consider := func(e *entities.Enemy) {
		if e == nil {
			return
		}
		if d := utils.Distance(p.X, p.Y, e.X, e.Y); d < bestDist {
			best, bestDist = e, d
		}
	}
	for _, z := range w.Zombies {
		consider(z)
	}
	consider(w.Boss)
	consider(w.FinalBoss)
	return best
}
