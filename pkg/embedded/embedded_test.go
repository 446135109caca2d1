package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"zombie_stats.yaml": {Data: []byte("zombies: {}\n")},
		"spawn_rules.yaml":  {Data: []byte("spawnDelay: {}\n")},
	}
}

func TestReadFileBeforeInit(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Fatal("Init(nil) should leave package uninitialized")
	}
	if _, err := ReadFile("data/zombie_stats.yaml"); err == nil {
		t.Error("expected error before Init")
	}
	if Exists("data/zombie_stats.yaml") {
		t.Error("Exists should be false before Init")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/zombie_stats.yaml", false},
		{"带 ./ 前缀", "./data/spawn_rules.yaml", false},
		{"未知前缀", "assets/zombie_stats.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/spawn_rules.yaml") {
		t.Error("spawn_rules.yaml should exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("nope.yaml should not exist")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Glob matched %d files, want 2: %v", len(matches), matches)
	}
	for _, m := range matches {
		if !IsEmbeddedPath(m) {
			t.Errorf("Glob result %q lacks data/ prefix", m)
		}
	}
}
