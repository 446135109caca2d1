package game

import (
	"log"

	"github.com/decker502/zombieshooter/pkg/sfx"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 预先合成所有音效为 PCM 数据
//   - 根据世界事件播放对应音效
//   - 音效开关和音量从 SettingsManager 读取
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	clips           map[sfx.Sound][]byte // 音效 -> float32 PCM
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局音频上下文（可为 nil，此时所有播放调用静默返回）
//   - sm: 设置管理器（可为 nil，使用默认音量）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
		clips:           make(map[sfx.Sound][]byte),
	}
	if ctx == nil {
		return am
	}

	sr := beep.SampleRate(ctx.SampleRate())
	for _, s := range sfx.AllSounds() {
		samples, err := sfx.Render(s, sr, 1)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to render sound %s: %v", s, err)
			continue
		}
		am.clips[s] = sfx.EncodeFloat32LE(samples)
	}
	log.Printf("[AudioManager] Preloaded %d sounds at %d Hz", len(am.clips), ctx.SampleRate())
	return am
}

// PlaySound 播放音效
// 每次播放创建新的播放器，允许同一音效重叠
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(s sfx.Sound) bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	pcm, ok := am.clips[s]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", s)
		return false
	}

	player := am.context.NewPlayerF32FromBytes(pcm)
	player.SetVolume(am.GetSoundVolume())
	player.Play()
	return true
}

// PlayEvents 播放本帧事件对应的音效
// 同一帧内相同音效只播放一次
func (am *AudioManager) PlayEvents(events []Event) {
	played := make(map[sfx.Sound]bool)
	for _, ev := range events {
		s, ok := SoundForEvent(ev)
		if !ok || played[s] {
			continue
		}
		played[s] = true
		am.PlaySound(s)
	}
}

// SetSoundVolume 设置音效音量，影响后续播放
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

// SoundForEvent 事件到音效的映射
func SoundForEvent(ev Event) (sfx.Sound, bool) {
	switch ev.Kind {
	case EventEnemyKilled:
		if ev.Enemy.IsBoss() {
			return sfx.SoundBossKill, true
		}
		return sfx.SoundKill, true
	case EventPlayerHit:
		return sfx.SoundHit, true
	case EventLevelUp:
		return sfx.SoundLevelUp, true
	case EventGameOver:
		return sfx.SoundGameOver, true
	}
	return 0, false
}
