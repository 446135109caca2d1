package scenes

import (
	"log"

	"github.com/decker502/zombieshooter/pkg/config"
	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/systems"
	"github.com/decker502/zombieshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 游戏主场景
// 采集输入、推进模拟、播放音效，并以矢量图形绘制整个场地
type GameScene struct {
	sim             *systems.Simulation
	world           *game.World
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager

	keys    keySource
	mobile  bool
	stick   *utils.TwinStick
	touches []utils.TouchPoint
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - world: 本局的 World（由 App 根据配置创建）
//   - rm: 资源管理器（字体）
//   - settings: 设置管理器，可为 nil
//   - audio: 音频管理器，可为 nil
func NewGameScene(world *game.World, rm *game.ResourceManager, settings *game.SettingsManager, audio *game.AudioManager) *GameScene {
	b := world.Bounds
	s := &GameScene{
		sim:             systems.NewSimulation(world),
		world:           world,
		resourceManager: rm,
		settingsManager: settings,
		audioManager:    audio,
		keys:            ebitenKeys{},
		mobile:          utils.IsMobile(),
		stick: utils.NewTwinStick(
			config.JoystickAnchorX, b.Height-(config.GameWindowHeight-config.JoystickAnchorY),
			config.JoystickRadius, config.JoystickDeadZone, b.Width/2),
	}
	log.Printf("[GameScene] Created (mobile=%v, debug=%v)", s.mobile, world.Debug)
	return s
}

// Update 每帧更新
func (s *GameScene) Update(deltaTime float64) {
	s.handleToggles()
	s.step(s.readInput())
}

// readInput 采集本帧输入
func (s *GameScene) readInput() game.Input {
	in := keyboardInput(s.keys)

	if s.mobile {
		s.touches = utils.ActiveTouches(s.touches)
		s.stick.Update(s.touches)
		applyTwinStick(&in, s.stick)

		// 结束画面点击任意位置重新开始
		if s.world.State == game.StateGameOver {
			if tapped, _, _ := utils.IsJustTouchedOrClicked(); tapped {
				in.Restart = true
			}
		}
		return in
	}

	x, y := ebiten.CursorPosition()
	in.AimX, in.AimY, in.HasAim = float64(x), float64(y), true
	return in
}

// step 推进一帧并处理本帧事件
func (s *GameScene) step(in game.Input) {
	wasOver := s.world.State == game.StateGameOver
	s.sim.Step(in)

	// 重新开始后瞄准点作废，移动端需要重新触摸右半屏
	if wasOver && s.world.State == game.StateRunning {
		s.stick.Reset()
	}

	if s.audioManager != nil {
		s.audioManager.PlayEvents(s.world.Events)
	}
}

// handleToggles 处理设置类快捷键
//   - F3: 显示/隐藏 FPS
//   - M: 音效开关
func (s *GameScene) handleToggles() {
	if s.settingsManager == nil {
		return
	}
	settings := s.settingsManager.GetSettings()
	changed := false

	if s.keys.IsJustPressed(ebiten.KeyF3) {
		s.settingsManager.SetShowFPS(!settings.ShowFPS)
		changed = true
	}
	if s.keys.IsJustPressed(ebiten.KeyM) {
		s.settingsManager.SetSoundEnabled(!settings.SoundEnabled)
		changed = true
	}

	if changed {
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
		}
	}
}

// World 返回场景的 World
func (s *GameScene) World() *game.World {
	return s.world
}

// Close 保存设置并记录本局结果
func (s *GameScene) Close() {
	if s.settingsManager != nil {
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
		}
	}
	log.Printf("[GameScene] Closed (level=%d, score=%d, state=%s)", s.world.Level, s.world.Score, s.world.State)
}
