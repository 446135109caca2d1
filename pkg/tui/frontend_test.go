package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/types"
	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	w := game.NewWorld(nil, config.ScreenBounds(), rand.New(rand.NewSource(7)))
	return New(screen, w, nil), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// rowText 读取一行文本
func rowText(s tcell.SimulationScreen, row, cols int) string {
	var b strings.Builder
	for col := 0; col < cols; col++ {
		r, _, _, _ := s.GetContent(col, row)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestFrontendQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		f, _ := newTestFrontend(t)
		f.HandleEvent(ev, time.Now())
		if !f.Quit() {
			t.Errorf("%v should quit", ev.Name())
		}
	}
}

func TestFrontendMovementAndPause(t *testing.T) {
	f, _ := newTestFrontend(t)
	w := f.world
	now := time.Now()
	startX := w.Player.X

	f.HandleEvent(key('a'), now)
	f.Tick(now)
	if w.Player.X != startX-w.Player.Speed {
		t.Fatalf("player X = %v, want %v", w.Player.X, startX-w.Player.Speed)
	}

	// 对向键立即取消之前的方向
	f.HandleEvent(key('d'), now)
	f.Tick(now)
	if w.Player.X != startX {
		t.Fatalf("player X = %v, want %v", w.Player.X, startX)
	}

	// 超过按住窗口后停止
	f.Tick(now.Add(firstRepeatWindow + time.Millisecond))
	if w.Player.X != startX {
		t.Errorf("player should stop after the hold window, X = %v", w.Player.X)
	}

	f.HandleEvent(key('p'), now)
	f.Tick(now)
	if w.State != game.StatePaused {
		t.Fatalf("state = %v, want paused", w.State)
	}
	f.Tick(now)
	if w.State != game.StatePaused {
		t.Error("pause is edge triggered and must not toggle twice")
	}
	f.HandleEvent(key('P'), now)
	f.Tick(now)
	if w.State != game.StateRunning {
		t.Errorf("state = %v, want running", w.State)
	}
}

// holdKeys 模拟终端按住 first 后再按住 second：只有 second 自动重复
// 每 16ms 推进一帧，持续 d
func holdKeys(f *Frontend, first, second rune, start time.Time, d time.Duration) {
	f.HandleEvent(key(first), start)
	pressAt := start.Add(50 * time.Millisecond)
	f.HandleEvent(key(second), pressAt)
	nextRepeat := pressAt.Add(500 * time.Millisecond)

	for now := start; now.Sub(start) < d; now = now.Add(16 * time.Millisecond) {
		for !nextRepeat.After(now) {
			f.HandleEvent(key(second), nextRepeat)
			nextRepeat = nextRepeat.Add(33 * time.Millisecond)
		}
		f.Tick(now)
	}
}

func TestFrontendCheatChord(t *testing.T) {
	t.Run("1+T 跳到 Boss 关", func(t *testing.T) {
		f, _ := newTestFrontend(t)
		f.world.Debug = true
		holdKeys(f, '1', 't', time.Unix(1000, 0), 5*time.Second)

		want := f.world.Tuning.Spawn.Boss.Level
		if f.world.Level != want {
			t.Errorf("level after holding 1+T = %d, want %d", f.world.Level, want)
		}
	})

	t.Run("T+2 跳到最终 Boss 关", func(t *testing.T) {
		f, _ := newTestFrontend(t)
		f.world.Debug = true
		holdKeys(f, 't', '2', time.Unix(1000, 0), 5*time.Second)

		want := f.world.Tuning.Spawn.FinalBoss.Level
		if f.world.Level != want {
			t.Errorf("level after holding T+2 = %d, want %d", f.world.Level, want)
		}
	})

	t.Run("非调试模式无效", func(t *testing.T) {
		f, _ := newTestFrontend(t)
		holdKeys(f, '1', 't', time.Unix(1000, 0), 5*time.Second)
		if f.world.Level != 1 {
			t.Errorf("cheats need debug mode, level = %d", f.world.Level)
		}
	})
}

func TestFrontendDiagonal(t *testing.T) {
	f, _ := newTestFrontend(t)
	w := f.world
	startX, startY := w.Player.X, w.Player.Y

	// 按住 W 再按住 D，1 秒后两个方向都应持续移动
	holdKeys(f, 'w', 'd', time.Unix(1000, 0), time.Second)

	if w.Player.X <= startX+w.Player.Speed*30 {
		t.Errorf("player should keep moving right, X = %v (start %v)", w.Player.X, startX)
	}
	if w.Player.Y >= startY-w.Player.Speed*30 {
		t.Errorf("player should keep moving up, Y = %v (start %v)", w.Player.Y, startY)
	}
}

func TestFrontendRestart(t *testing.T) {
	f, _ := newTestFrontend(t)
	w := f.world
	now := time.Now()

	w.Score = 120
	w.GameOver()
	f.HandleEvent(key('w'), now)
	f.HandleEvent(key('r'), now)
	f.Tick(now)

	if w.State != game.StateRunning || w.Score != 0 {
		t.Fatalf("restart should reset the world: state=%v score=%d", w.State, w.Score)
	}
	if f.keys.Held(keyUp, now) {
		t.Error("held keys are cleared on restart")
	}
}

func TestFrontendAim(t *testing.T) {
	f, _ := newTestFrontend(t)
	w := f.world
	now := time.Now()

	if in := f.input(now); in.HasAim {
		t.Error("no mouse and no enemies means no aim")
	}

	near, err := w.SpawnEnemy(types.EnemyNormal, 450, 300)
	if err != nil {
		t.Fatalf("SpawnEnemy: %v", err)
	}
	if _, err := w.SpawnEnemy(types.EnemyNormal, 10, 10); err != nil {
		t.Fatalf("SpawnEnemy: %v", err)
	}
	in := f.input(now)
	if !in.HasAim || in.AimX != near.X || in.AimY != near.Y {
		t.Errorf("auto-aim should target the nearest enemy, got %+v", in)
	}

	f.HandleEvent(tcell.NewEventMouse(60, 5, tcell.ButtonNone, tcell.ModNone), now)
	in = f.input(now)
	x, y := f.view.ToField(60, 5)
	if !in.HasAim || in.AimX != x || in.AimY != y {
		t.Errorf("mouse aim = (%v, %v), want (%v, %v)", in.AimX, in.AimY, x, y)
	}

	// HUD 行上的鼠标事件不改变瞄准点
	f.HandleEvent(tcell.NewEventMouse(10, 0, tcell.ButtonNone, tcell.ModNone), now)
	if in2 := f.input(now); in2.AimX != x || in2.AimY != y {
		t.Error("mouse on the HUD row must not move the aim point")
	}
}

func TestFrontendDraw(t *testing.T) {
	f, screen := newTestFrontend(t)
	f.Draw()

	if hud := rowText(screen, 0, 80); !strings.HasPrefix(hud, "Score: 0  Health: 10/10  Lv.1 [") {
		t.Errorf("HUD = %q", hud)
	}
	col, row, _ := f.view.ToCell(f.world.Player.X, f.world.Player.Y)
	if r, _, _, _ := screen.GetContent(col, row); r != '@' {
		t.Errorf("player glyph = %q, want '@'", r)
	}
	if footer := rowText(screen, 23, 80); !strings.HasPrefix(footer, "WASD/arrows move") {
		t.Errorf("footer = %q", footer)
	}

	f.world.GameOver()
	f.Draw()
	if mid := rowText(screen, 12, 80); !strings.Contains(mid, "GAME OVER") {
		t.Errorf("middle row = %q", mid)
	}
}

func TestFrontendDrawBoss(t *testing.T) {
	f, screen := newTestFrontend(t)
	boss, err := f.world.SpawnEnemy(types.EnemyBoss, 200, 200)
	if err != nil {
		t.Fatalf("SpawnEnemy: %v", err)
	}
	f.Draw()

	footer := rowText(screen, 23, 80)
	if !strings.HasPrefix(footer, "MAKS GOD OF WAR [") {
		t.Errorf("footer = %q", footer)
	}
	// 半径 60 的 Boss 在 80x24 终端上横向至少占 6 格
	col, row, _ := f.view.ToCell(boss.X, boss.Y)
	for _, dc := range []int{-2, 0, 2} {
		if r, _, _, _ := screen.GetContent(col+dc, row); r != 'B' {
			t.Errorf("cell (%d, %d) = %q, want 'B'", col+dc, row, r)
		}
	}
}

func TestTextBar(t *testing.T) {
	tests := []struct {
		value, max float64
		want       string
	}{
		{0, 10, "[    ]"},
		{5, 10, "[==  ]"},
		{10, 10, "[====]"},
		{20, 10, "[====]"},
		{1, 0, "[    ]"},
	}
	for _, tt := range tests {
		if got := textBar(tt.value, tt.max, 4); got != tt.want {
			t.Errorf("textBar(%v, %v) = %q, want %q", tt.value, tt.max, got, tt.want)
		}
	}
}
