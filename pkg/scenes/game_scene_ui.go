package scenes

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/entities"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/types"
	"github.com/decker502/zombieshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调色板
var (
	colorBackground = color.RGBA{18, 18, 24, 255}
	colorBlack      = color.RGBA{0, 0, 0, 255}
	colorWhite      = color.RGBA{255, 255, 255, 255}
	colorRed        = color.RGBA{255, 0, 0, 255}
	colorDarkRed    = color.RGBA{150, 0, 0, 255}
	colorGreen      = color.RGBA{0, 255, 0, 255}
	colorOrbRing    = color.RGBA{0, 150, 0, 255}
	colorYellow     = color.RGBA{255, 255, 0, 255}
	colorGray       = color.RGBA{128, 128, 128, 255}
	colorOrange     = color.RGBA{255, 165, 0, 255}
	colorGold       = color.RGBA{255, 215, 0, 255}
	colorShade      = color.RGBA{0, 0, 0, 160}
)

// 字号
const (
	fontSizeSmall  = 14.0
	fontSizeNormal = 18.0
	fontSizeLarge  = 24.0
	fontSizeTitle  = 48.0
)

const (
	// hurtFlashDuration 玩家受伤后身体泛红的时长
	hurtFlashDuration = 300 * time.Millisecond
	// auraPeriod Boss 光环呼吸周期
	auraPeriod = 1200 * time.Millisecond
)

// Draw 绘制场景
// 暂停与结束时仍绘制场地，再叠加遮罩
func (s *GameScene) Draw(screen *ebiten.Image) {
	w := s.world
	screen.Fill(colorBackground)

	for _, o := range w.Orbs {
		drawOrb(screen, o)
	}
	for _, p := range w.Projectiles {
		drawProjectile(screen, p)
	}
	for _, z := range w.Zombies {
		drawZombie(screen, z)
	}
	if w.Boss != nil {
		s.drawBoss(screen, w.Boss)
	}
	if w.FinalBoss != nil {
		s.drawBoss(screen, w.FinalBoss)
	}
	s.drawPlayer(screen)

	s.drawHUD(screen)
	if s.mobile {
		s.drawJoystick(screen)
	}

	switch w.State {
	case game.StatePaused:
		s.drawPauseOverlay(screen)
	case game.StateGameOver:
		s.drawGameOver(screen)
	}

	if s.settingsManager != nil && s.settingsManager.GetSettings().ShowFPS {
		s.text(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), fontSizeSmall, w.Bounds.Width-80, 10, colorWhite)
	}
}

// ============================================================================
// 实体
// ============================================================================

func fillCircle(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), clr, true)
}

func strokeCircle(dst *ebiten.Image, x, y, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(x), float32(y), float32(r), float32(width), clr, true)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

// withAlpha 返回指定透明度的颜色（预乘）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

func drawOrb(screen *ebiten.Image, o *entities.Orb) {
	fillCircle(screen, o.X, o.Y, o.Size, colorGreen)
	strokeCircle(screen, o.X, o.Y, o.Size+2, 1, colorOrbRing)
}

// projectileColor 子弹颜色：玩家黄/红，黑色僵尸红，Boss 红，最终 Boss 金
func projectileColor(kind types.ProjectileKind) color.RGBA {
	switch kind {
	case types.ProjectilePlayer:
		return colorYellow
	case types.ProjectileFinalBoss:
		return colorGold
	default:
		return colorRed
	}
}

func drawProjectile(screen *ebiten.Image, p *entities.Projectile) {
	clr := projectileColor(p.Kind)
	fillCircle(screen, p.X, p.Y, p.Size, clr)

	// 大子弹带光晕
	switch p.Kind {
	case types.ProjectileBoss:
		for i := 0; i < 3; i++ {
			strokeCircle(screen, p.X, p.Y, p.Size+float64(i*4), 2, withAlpha(clr, float64(80-i*25)/255))
		}
	case types.ProjectileFinalBoss:
		for i := 0; i < 2; i++ {
			strokeCircle(screen, p.X, p.Y, p.Size+float64(i*3), 2, withAlpha(clr, float64(120-i*40)/255))
		}
	}
}

// zombieColor 僵尸颜色；普通僵尸受伤后变暗
func zombieColor(z *entities.Enemy) color.RGBA {
	switch z.Kind {
	case types.EnemyBlack:
		return colorBlack
	case types.EnemyGreen:
		return colorGreen
	case types.EnemyBuff:
		return colorOrange
	}
	if z.Health < z.MaxHealth {
		return colorDarkRed
	}
	return colorRed
}

// zombieBarSize 僵尸血条尺寸
func zombieBarSize(kind types.EnemyKind) (w, h float64) {
	switch kind {
	case types.EnemyBlack:
		return 50, 8
	case types.EnemyGreen:
		return 40, 8
	case types.EnemyBuff:
		return 30, 6
	}
	return 20, 4
}

func drawZombie(screen *ebiten.Image, z *entities.Enemy) {
	fillCircle(screen, z.X, z.Y, z.Size, zombieColor(z))
	if z.Kind == types.EnemyBlack {
		// 黑底上的轮廓
		strokeCircle(screen, z.X, z.Y, z.Size+2, 2, colorDarkRed)
	}

	if z.Health < z.MaxHealth {
		bw, bh := zombieBarSize(z.Kind)
		bx := z.X - bw/2
		by := z.Y - z.Size - 10
		fillRect(screen, bx, by, bw, bh, colorBlack)
		fillRect(screen, bx, by, barFill(z.Health, z.MaxHealth, bw), bh, colorGreen)
	}
}

func (s *GameScene) drawBoss(screen *ebiten.Image, b *entities.Enemy) {
	pulse := utils.Pulse(s.world.Now, auraPeriod)

	if b.Kind == types.EnemyFinalBoss {
		fillCircle(screen, b.X, b.Y, b.Size, colorGold)
		for i := 0; i < 4; i++ {
			alpha := float64(80-i*20) / 255 * (0.6 + 0.4*pulse)
			strokeCircle(screen, b.X, b.Y, b.Size+float64(i*10), 4, withAlpha(colorRed, alpha))
		}
		return
	}

	fillCircle(screen, b.X, b.Y, b.Size, colorBlack)
	for i := 0; i < 3; i++ {
		alpha := float64(100-i*30) / 255 * (0.6 + 0.4*pulse)
		strokeCircle(screen, b.X, b.Y, b.Size+float64(i*8), 3, withAlpha(colorDarkRed, alpha))
	}
}

func (s *GameScene) drawPlayer(screen *ebiten.Image) {
	p := s.world.Player
	body := colorWhite
	if since, ok := p.SinceLastHurt(s.world.Now); ok {
		if f := utils.FadeOut(since, hurtFlashDuration); f > 0 {
			body = lerpColor(colorWhite, colorRed, f)
		}
	}
	fillCircle(screen, p.X, p.Y, p.Size, body)

	bw, bh := config.PlayerHealthBarWidth, config.PlayerHealthBarHeight
	bx := p.X - bw/2
	by := p.Y - p.Size - 15
	fillRect(screen, bx, by, bw, bh, colorBlack)
	fillRect(screen, bx, by, barFill(p.Health, p.MaxHealth, bw), bh, healthColor(p.Health, p.MaxHealth))
}

// healthColor 玩家血条颜色：高于 60% 绿色，高于 30% 橙色，否则红色
func healthColor(health, maxHealth float64) color.RGBA {
	if maxHealth <= 0 {
		return colorRed
	}
	ratio := health / maxHealth
	switch {
	case ratio > 0.6:
		return colorGreen
	case ratio > 0.3:
		return colorOrange
	default:
		return colorRed
	}
}

// barFill 按比例计算进度条填充宽度，限制在 [0, width]
func barFill(value, maxValue, width float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	return utils.Clamp(value/maxValue, 0, 1) * width
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(utils.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(utils.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(utils.Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(utils.Lerp(float64(a.A), float64(b.A), t)),
	}
}

// ============================================================================
// HUD
// ============================================================================

// font 获取指定字号的字体，失败时返回 nil（文字不绘制）
func (s *GameScene) font(size float64) *text.GoTextFace {
	if s.resourceManager == nil {
		return nil
	}
	face, err := s.resourceManager.LoadFont(size)
	if err != nil {
		log.Printf("[GameScene] Warning: Failed to load font %.0f: %v", size, err)
		return nil
	}
	return face
}

func (s *GameScene) text(screen *ebiten.Image, str string, size, x, y float64, clr color.Color) {
	utils.DrawText(screen, str, s.font(size), x, y, clr)
}

func (s *GameScene) textCentered(screen *ebiten.Image, str string, size, cx, cy float64, clr color.Color) {
	utils.DrawTextCentered(screen, str, s.font(size), cx, cy, clr)
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	w := s.world
	p := w.Player

	s.text(screen, fmt.Sprintf("Score: %d", w.Score), fontSizeLarge, 10, 10, colorWhite)
	s.text(screen, fmt.Sprintf("Health: %s/%s", game.FormatHealth(p.Health), game.FormatHealth(p.MaxHealth)), fontSizeNormal, 10, 40, colorWhite)

	s.drawOrbBar(screen)
	if boss := w.ActiveBoss(); boss != nil {
		s.drawBossBar(screen, boss)
	}
	s.drawCheatProgress(screen)

	if w.State == game.StateRunning {
		lines := utils.WrapText(s.instructions(), s.font(fontSizeSmall), w.Bounds.Width-20)
		for i, line := range lines {
			s.text(screen, line, fontSizeSmall, 10, instructionLineY(w.Bounds.Height, i, len(lines)), colorWhite)
		}
	}
}

// instructionLineY 第 i 行提示的 Y 坐标（共 n 行）
// 最后一行贴近底部，前面的行依次向上，保持阅读顺序
func instructionLineY(height float64, i, n int) float64 {
	return height - 24 - float64(n-1-i)*18
}

// instructions 底部操作提示
func (s *GameScene) instructions() string {
	if s.mobile {
		return "Left side: move, right side: aim"
	}
	msg := "WASD to move, aim with mouse, P to pause"
	if s.world.Debug {
		msg += ", Hold 1+T or T+2 to skip"
	}
	return msg
}

func (s *GameScene) drawOrbBar(screen *ebiten.Image) {
	w := s.world
	x, y := config.OrbBarX, config.OrbBarY
	bw, bh := config.OrbBarWidth, config.OrbBarHeight

	fillRect(screen, x, y, bw, bh, colorGray)
	fillRect(screen, x, y, barFill(float64(w.OrbsCollected), float64(w.OrbsNeeded), bw), bh, colorGreen)
	strokeRect(screen, x, y, bw, bh, 2, colorBlack)

	s.text(screen, fmt.Sprintf("Lv.%d", w.Level), fontSizeNormal, x-50, y-2, colorWhite)
	s.text(screen, fmt.Sprintf("%d/%d", w.OrbsCollected, w.OrbsNeeded), fontSizeSmall, x+bw+10, y-1, colorWhite)
}

func (s *GameScene) drawBossBar(screen *ebiten.Image, boss *entities.Enemy) {
	b := s.world.Bounds
	x := config.BossBarMargin
	bw := b.Width - 2*config.BossBarMargin
	bh := config.BossBarHeight
	y := b.Height - config.BossBarBottomOffset

	barColor := colorRed
	if boss.Kind == types.EnemyFinalBoss {
		barColor = colorGold
	}

	fillRect(screen, x, y, bw, bh, colorGray)
	fillRect(screen, x, y, barFill(boss.Health, boss.MaxHealth, bw), bh, barColor)
	strokeRect(screen, x, y, bw, bh, 3, colorBlack)

	s.textCentered(screen, boss.Kind.BossTitle(), fontSizeLarge, b.Width/2, y-20, colorWhite)
	s.textCentered(screen, fmt.Sprintf("%s/%s", game.FormatHealth(boss.Health), game.FormatHealth(boss.MaxHealth)),
		fontSizeNormal, b.Width/2, y+bh/2, colorWhite)
}

func (s *GameScene) drawCheatProgress(screen *ebiten.Image) {
	level, progress, ok := s.world.CheatProgress()
	if !ok {
		return
	}
	s.textCentered(screen, fmt.Sprintf("Skip to Level %d: %.0f%%", level, progress*100), fontSizeLarge, s.world.Bounds.Width/2, 100, colorYellow)
}

func (s *GameScene) drawJoystick(screen *ebiten.Image) {
	st := s.stick
	strokeCircle(screen, st.AnchorX, st.AnchorY, st.Radius, 2, withAlpha(colorWhite, 0.5))
	kx, ky := st.Knob()
	fillCircle(screen, kx, ky, st.Radius/3, withAlpha(colorWhite, 0.6))

	if x, y, ok := st.Aim(); ok {
		strokeCircle(screen, x, y, 10, 2, withAlpha(colorYellow, 0.7))
	}
}

// ============================================================================
// 遮罩
// ============================================================================

func (s *GameScene) drawPauseOverlay(screen *ebiten.Image) {
	b := s.world.Bounds
	cx, cy := b.Width/2, b.Height/2

	face := s.font(fontSizeTitle)
	tw := utils.MeasureText("PAUSED", face)
	boxW, boxH := tw+40, fontSizeTitle+30
	fillRect(screen, cx-boxW/2, cy-boxH/2, boxW, boxH, colorBlack)
	strokeRect(screen, cx-boxW/2, cy-boxH/2, boxW, boxH, 3, colorWhite)
	s.textCentered(screen, "PAUSED", fontSizeTitle, cx, cy, colorWhite)
	s.textCentered(screen, "Press P to resume", fontSizeLarge, cx, cy+60, colorWhite)
}

func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	b := s.world.Bounds
	fillRect(screen, 0, 0, b.Width, b.Height, colorShade)

	cx, cy := b.Width/2, b.Height/2
	s.textCentered(screen, "GAME OVER", fontSizeTitle, cx, cy-50, colorRed)
	s.textCentered(screen, fmt.Sprintf("Final Score: %d", s.world.Score), fontSizeLarge, cx, cy, colorWhite)

	restart := "Press R to restart"
	if s.mobile {
		restart = "Tap to restart"
	}
	s.textCentered(screen, restart, fontSizeNormal, cx, cy+50, colorWhite)
}
