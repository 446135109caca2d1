package tui

import (
	"log"
	"sync"
	"time"

	"github.com/decker502/zombieshooter/pkg/game"
	"github.com/decker502/zombieshooter/pkg/sfx"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound 终端前端的音效播放
// 扬声器初始化失败时静默降级，游戏照常运行
type Sound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	settings    *game.SettingsManager
	initialized bool
}

// NewSound 创建音效播放器，settings 可为 nil
func NewSound(settings *game.SettingsManager) *Sound {
	return &Sound{
		mixer:    &beep.Mixer{},
		settings: settings,
	}
}

// Initialize 初始化扬声器
func (s *Sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// enabled 是否应当发声
func (s *Sound) enabled() bool {
	if !s.initialized {
		return false
	}
	return s.settings == nil || s.settings.GetSettings().SoundEnabled
}

func (s *Sound) volume() float64 {
	if s.settings == nil {
		return game.DefaultSettings().SoundVolume
	}
	return s.settings.GetSettings().SoundVolume
}

// Play 播放一个音效
func (s *Sound) Play(snd sfx.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled() {
		return
	}
	streamer, err := sfx.NewStreamer(snd, sampleRate, s.volume())
	if err != nil {
		log.Printf("[Sound] %v", err)
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayEvents 播放本帧事件对应的音效，同一音效每帧最多一次
func (s *Sound) PlayEvents(events []game.Event) {
	played := make(map[sfx.Sound]bool)
	for _, ev := range events {
		snd, ok := game.SoundForEvent(ev)
		if !ok || played[snd] {
			continue
		}
		played[snd] = true
		s.Play(snd)
	}
}

// Cleanup 停止所有音效并关闭扬声器
func (s *Sound) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
