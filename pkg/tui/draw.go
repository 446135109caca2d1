package tui

import (
	"fmt"
	"strings"

	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// 样式
var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleOrb     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCheat   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	styleOver    = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
)

// barWidth HUD 经验条宽度（字符）
const barWidth = 20

// Draw 绘制一帧
func (f *Frontend) Draw() {
	s := f.screen
	s.Clear()
	w := f.world

	for _, o := range w.Orbs {
		f.plot(o.X, o.Y, 'o', styleOrb)
	}
	for _, p := range w.Projectiles {
		f.drawProjectile(p)
	}
	for _, z := range w.Zombies {
		f.drawEnemy(z)
	}
	if w.Boss != nil {
		f.drawEnemy(w.Boss)
	}
	if w.FinalBoss != nil {
		f.drawEnemy(w.FinalBoss)
	}
	f.plot(w.Player.X, w.Player.Y, '@', stylePlayer)

	f.drawHUD()
	f.drawFooter()

	switch w.State {
	case game.StatePaused:
		f.drawCentered("  PAUSED - press P to resume  ", styleOverlay)
	case game.StateGameOver:
		f.drawCentered(fmt.Sprintf("  GAME OVER  Final Score: %d  press R to restart  ", w.Score), styleOver)
	}

	s.Show()
}

// plot 在场地坐标处画一个字符
func (f *Frontend) plot(x, y float64, r rune, style tcell.Style) {
	col, row, ok := f.view.ToCell(x, y)
	if !ok {
		return
	}
	f.screen.SetContent(col, row, r, nil, style)
}

// disc 画一个实心圆；半径小于一个单元格时退化为单个字符
func (f *Frontend) disc(x, y, radius float64, r rune, style tcell.Style) {
	rx, ry := f.view.Radii(radius)
	if rx < 1 && ry < 1 {
		f.plot(x, y, r, style)
		return
	}

	c0, r0, _ := f.view.ToCell(x-radius, y-radius)
	c1, r1, _ := f.view.ToCell(x+radius, y+radius)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if col < 0 || col >= f.view.Cols || row < hudRows || row >= hudRows+f.view.FieldRows() {
				continue
			}
			cx, cy := f.view.ToField(col, row)
			dx, dy := (cx-x)/radius, (cy-y)/radius
			if dx*dx+dy*dy <= 1 {
				f.screen.SetContent(col, row, r, nil, style)
			}
		}
	}
	// 中心总是可见
	f.plot(x, y, r, style)
}

// enemyGlyph 敌人的字符与样式
func enemyGlyph(e *entities.Enemy) (rune, tcell.Style) {
	switch e.Kind {
	case types.EnemyBuff:
		return 'Z', tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case types.EnemyGreen:
		return 'z', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case types.EnemyBlack:
		return 'X', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case types.EnemyBoss:
		return 'B', tcell.StyleDefault.Foreground(tcell.ColorDarkRed).Bold(true)
	case types.EnemyFinalBoss:
		return 'F', tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	}
	if e.Health < e.MaxHealth {
		return 'z', tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	}
	return 'z', tcell.StyleDefault.Foreground(tcell.ColorRed)
}

func (f *Frontend) drawEnemy(e *entities.Enemy) {
	r, style := enemyGlyph(e)
	f.disc(e.X, e.Y, e.Size, r, style)
}

// projectileGlyph 子弹的字符与样式
func projectileGlyph(kind types.ProjectileKind) (rune, tcell.Style) {
	switch kind {
	case types.ProjectilePlayer:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case types.ProjectilePlayerRed:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case types.ProjectileSmall:
		return '*', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case types.ProjectileBoss:
		return 'O', tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	return '*', tcell.StyleDefault.Foreground(tcell.ColorGold)
}

func (f *Frontend) drawProjectile(p *entities.Projectile) {
	r, style := projectileGlyph(p.Kind)
	if p.Kind == types.ProjectileBoss {
		f.disc(p.X, p.Y, p.Size, r, style)
		return
	}
	f.plot(p.X, p.Y, r, style)
}

// textBar 文本进度条，例如 [=====     ]
func textBar(value, maxValue float64, width int) string {
	filled := 0
	if maxValue > 0 && value > 0 {
		filled = int(value / maxValue * float64(width))
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// hudLine 顶部状态行
func hudLine(w *game.World) string {
	p := w.Player
	return fmt.Sprintf("Score: %d  Health: %s/%s  Lv.%d %s %d/%d",
		w.Score, game.FormatHealth(p.Health), game.FormatHealth(p.MaxHealth),
		w.Level, textBar(float64(w.OrbsCollected), float64(w.OrbsNeeded), barWidth), w.OrbsCollected, w.OrbsNeeded)
}

// footerLine 底栏：Boss 在场时显示血条，否则显示操作提示
func footerLine(w *game.World, mouseAim bool) string {
	if boss := w.ActiveBoss(); boss != nil {
		return fmt.Sprintf("%s %s %s/%s", boss.Kind.BossTitle(), textBar(boss.Health, boss.MaxHealth, barWidth*2),
			game.FormatHealth(boss.Health), game.FormatHealth(boss.MaxHealth))
	}
	aim := "mouse aims"
	if !mouseAim {
		aim = "auto-aim (move the mouse to aim)"
	}
	return "WASD/arrows move, " + aim + ", P pause, Q quit"
}

func (f *Frontend) drawHUD() {
	f.drawText(0, 0, hudLine(f.world), styleHUD)
	if level, progress, ok := f.world.CheatProgress(); ok {
		f.drawText(0, hudRows, fmt.Sprintf("Skip to Level %d: %.0f%%", level, progress*100), styleCheat)
	}
}

func (f *Frontend) drawFooter() {
	f.drawText(0, f.view.Rows-1, footerLine(f.world, f.mouseAim), styleHUD)
}

func (f *Frontend) drawText(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		if col >= f.view.Cols {
			return
		}
		f.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (f *Frontend) drawCentered(s string, style tcell.Style) {
	col := (f.view.Cols - len(s)) / 2
	if col < 0 {
		col = 0
	}
	f.drawText(col, f.view.Rows/2, s, style)
}
