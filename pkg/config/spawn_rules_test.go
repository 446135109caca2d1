package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadSpawnRules(t *testing.T) {
	t.Run("仓库内置配置与默认值一致", func(t *testing.T) {
		rules, err := LoadSpawnRules(filepath.Join("..", "..", "data", SpawnRulesFileName))
		if err != nil {
			t.Fatalf("LoadSpawnRules failed: %v", err)
		}
		if !reflect.DeepEqual(rules, DefaultSpawnRules()) {
			t.Errorf("data/spawn_rules.yaml drifted from DefaultSpawnRules():\n got %+v\nwant %+v", rules, DefaultSpawnRules())
		}
	})

	t.Run("乱序等级段会被排序", func(t *testing.T) {
		content := `
spawnDelay: {initialMs: 1000, minMs: 100, stepMs: 10}
edgeOffset: 20
bands:
  - {minLevel: 8, every: 3, special: black, regular: green}
  - {minLevel: 1, every: 2, special: buff, regular: normal}
boss: {level: 10, edgeOffset: 60}
finalBoss: {level: 20}
`
		path := filepath.Join(t.TempDir(), "rules.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		rules, err := LoadSpawnRules(path)
		if err != nil {
			t.Fatalf("LoadSpawnRules failed: %v", err)
		}
		if rules.Bands[0].MinLevel != 1 || rules.Bands[1].MinLevel != 8 {
			t.Errorf("bands not sorted: %+v", rules.Bands)
		}
	})
}

func TestValidateSpawnRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SpawnRulesConfig)
	}{
		{"最小间隔大于初始间隔", func(c *SpawnRulesConfig) { c.SpawnDelay.MinMs = 5000 }},
		{"空等级段", func(c *SpawnRulesConfig) { c.Bands = nil }},
		{"缺少1级段", func(c *SpawnRulesConfig) { c.Bands = c.Bands[1:] }},
		{"周期为0", func(c *SpawnRulesConfig) { c.Bands[0].Every = 0 }},
		{"计时器生成Boss", func(c *SpawnRulesConfig) { c.Bands[2].Special = "boss" }},
		{"最终Boss等级过低", func(c *SpawnRulesConfig) { c.FinalBoss.Level = 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultSpawnRules()
			tt.mutate(c)
			if err := validateSpawnRules(c); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBandForLevel(t *testing.T) {
	rules := DefaultSpawnRules()
	tests := []struct {
		level   int
		idx     int
		special string
		regular string
	}{
		{1, 0, "buff", "normal"},
		{4, 0, "buff", "normal"},
		{5, 1, "green", "buff"},
		{9, 1, "green", "buff"},
		{10, 2, "black", "green"},
		{30, 2, "black", "green"},
	}
	for _, tt := range tests {
		idx, band := rules.BandForLevel(tt.level)
		if idx != tt.idx || band.Special != tt.special || band.Regular != tt.regular {
			t.Errorf("level %d: got idx=%d band=%+v, want idx=%d %s/%s", tt.level, idx, band, tt.idx, tt.special, tt.regular)
		}
	}
}

func TestNextDelay(t *testing.T) {
	rules := DefaultSpawnRules()
	delay := rules.InitialDelay()
	if delay != 2000*time.Millisecond {
		t.Fatalf("initial delay: got %v", delay)
	}
	for i := 0; i < 100; i++ {
		next := rules.NextDelay(delay)
		if next > delay {
			t.Fatalf("delay increased: %v -> %v", delay, next)
		}
		delay = next
	}
	if delay != 500*time.Millisecond {
		t.Errorf("delay should floor at 500ms, got %v", delay)
	}
	if got := rules.NextDelay(2000 * time.Millisecond); got != 1950*time.Millisecond {
		t.Errorf("one step: got %v, want 1950ms", got)
	}
}
