// Package sfx 合成游戏音效
// 所有音效都由正弦波加衰减包络生成，不依赖音频文件
package sfx

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound 音效类型
type Sound int

const (
	SoundKill     Sound = iota // 击杀普通僵尸
	SoundBossKill              // 击败 Boss
	SoundHit                   // 玩家受伤
	SoundLevelUp               // 升级
	SoundGameOver              // 死亡
)

// AllSounds 返回全部音效，用于预加载
func AllSounds() []Sound {
	return []Sound{SoundKill, SoundBossKill, SoundHit, SoundLevelUp, SoundGameOver}
}

// String 返回音效名
func (s Sound) String() string {
	switch s {
	case SoundKill:
		return "kill"
	case SoundBossKill:
		return "boss_kill"
	case SoundHit:
		return "hit"
	case SoundLevelUp:
		return "level_up"
	case SoundGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("sound(%d)", int(s))
	}
}

// tone 单个音符
type tone struct {
	freq     float64
	duration time.Duration
}

// tones 每个音效由若干音符顺序组成
var tones = map[Sound][]tone{
	SoundKill:     {{880, 60 * time.Millisecond}},
	SoundBossKill: {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 240 * time.Millisecond}},
	SoundHit:      {{220, 90 * time.Millisecond}},
	SoundLevelUp:  {{660, 80 * time.Millisecond}, {990, 120 * time.Millisecond}},
	SoundGameOver: {{392, 200 * time.Millisecond}, {262, 400 * time.Millisecond}},
}

// Duration 返回音效总时长
func Duration(s Sound) time.Duration {
	var d time.Duration
	for _, t := range tones[s] {
		d += t.duration
	}
	return d
}

// NewStreamer 创建音效的 beep 流
// volume 取值 0~1，0 为静音
func NewStreamer(s Sound, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := tones[s]
	if !ok {
		return nil, fmt.Errorf("unknown sound %d", int(s))
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sound %s: %w", s, err)
		}
		samples := sr.N(n.duration)
		parts = append(parts, newDecay(beep.Take(samples, sine), samples))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// Render 把音效完整渲染为立体声采样
func Render(s Sound, sr beep.SampleRate, volume float64) ([][2]float64, error) {
	streamer, err := NewStreamer(s, sr, volume)
	if err != nil {
		return nil, err
	}

	out := make([][2]float64, 0, sr.N(Duration(s)))
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return out, nil
}

// EncodeFloat32LE 编码为小端 float32 交错立体声 PCM
// ebiten 的 F32 播放器使用该格式
func EncodeFloat32LE(samples [][2]float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(float32(s[0])))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(float32(s[1])))
	}
	return buf
}

// decay 线性衰减包络，避免音符结尾的爆音
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, total int) beep.Streamer {
	return &decay{streamer: s, total: total}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// withVolume 以 2 为底的音量效果；volume 为 0 时静音
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	if volume > 1 {
		volume = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume), Silent: false}
}
