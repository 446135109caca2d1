package sfx

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func TestRenderLengthAndRange(t *testing.T) {
	sr := beep.SampleRate(44100)

	for _, s := range AllSounds() {
		t.Run(s.String(), func(t *testing.T) {
			samples, err := Render(s, sr, 1)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}

			// 每个音符单独取整，总长与逐个相加一致
			want := 0
			for _, n := range tones[s] {
				want += sr.N(n.duration)
			}
			if len(samples) != want {
				t.Errorf("expected %d samples, got %d", want, len(samples))
			}

			for i, v := range samples {
				if v[0] < -1 || v[0] > 1 || v[0] != v[1] {
					t.Fatalf("sample %d out of range or not mono: %v", i, v)
				}
			}
		})
	}
}

func TestRenderSilent(t *testing.T) {
	samples, err := Render(SoundKill, beep.SampleRate(22050), 0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i, v := range samples {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("sample %d should be silent, got %v", i, v)
		}
	}
}

func TestUnknownSound(t *testing.T) {
	if _, err := NewStreamer(Sound(99), beep.SampleRate(44100), 1); err == nil {
		t.Error("expected error for unknown sound")
	}
}

func TestEncodeFloat32LE(t *testing.T) {
	buf := EncodeFloat32LE([][2]float64{{0.5, -0.25}})
	if len(buf) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(buf))
	}
	left := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:]))
	right := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:]))
	if left != 0.5 || right != -0.25 {
		t.Errorf("decoded (%v, %v)", left, right)
	}
}
