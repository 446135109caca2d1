package game

import (
	"testing"

	"github.com/decker502/zombieshooter/pkg/sfx"
	"github.com/decker502/zombieshooter/pkg/types"
)

func TestSoundForEvent(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		want   sfx.Sound
		wantOK bool
	}{
		{"普通击杀", Event{Kind: EventEnemyKilled, Enemy: types.EnemyNormal}, sfx.SoundKill, true},
		{"Boss 击杀", Event{Kind: EventEnemyKilled, Enemy: types.EnemyBoss}, sfx.SoundBossKill, true},
		{"最终 Boss 击杀", Event{Kind: EventEnemyKilled, Enemy: types.EnemyFinalBoss}, sfx.SoundBossKill, true},
		{"受伤", Event{Kind: EventPlayerHit}, sfx.SoundHit, true},
		{"升级", Event{Kind: EventLevelUp}, sfx.SoundLevelUp, true},
		{"死亡", Event{Kind: EventGameOver}, sfx.SoundGameOver, true},
		{"Boss 登场无音效", Event{Kind: EventBossSpawned}, 0, false},
		{"作弊无音效", Event{Kind: EventCheat}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SoundForEvent(tt.event)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("SoundForEvent(%+v) = (%v, %v), want (%v, %v)", tt.event, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAudioManagerWithoutContext(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager: %v", err)
	}
	am := NewAudioManager(nil, sm)

	if am.PlaySound(sfx.SoundKill) {
		t.Error("无音频上下文时不应播放")
	}
	// 不应 panic
	am.PlayEvents([]Event{{Kind: EventEnemyKilled}, {Kind: EventGameOver}})

	am.SetSoundVolume(2)
	if got := am.GetSoundVolume(); got != 1 {
		t.Errorf("音量应被限制为 1，实际 %v", got)
	}
}

func TestAudioManagerDefaultVolume(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if got := am.GetSoundVolume(); got != DefaultSettings().SoundVolume {
		t.Errorf("默认音量 %v，实际 %v", DefaultSettings().SoundVolume, got)
	}
}
