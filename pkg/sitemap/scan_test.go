package sitemap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScanLines(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		ok     bool
		col    int
		entity string
	}{
		{"无 &", "<p>hello</p>", false, 0, ""},
		{"命名实体", "Tom &amp; Jerry", false, 0, ""},
		{"数字实体", "&#169; 2026 &#x00A9;", false, 0, ""},
		{"裸 & 无分号", "a && b", true, 3, ""},
		{"裸 & 后有分号", "x = a & b;", true, 7, " b"},
		{"查询串", `<a href="/play?level=1&mode=hard">`, true, 23, ""},
		{"先合法后非法", "&lt; & ok;", true, 6, " ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := ScanLines(strings.NewReader(tt.line), "x.html")
			if err != nil {
				t.Fatal(err)
			}
			if !tt.ok {
				if len(issues) != 0 {
					t.Errorf("unexpected issues %v", issues)
				}
				return
			}
			if len(issues) != 1 {
				t.Fatalf("issues = %v, want 1", issues)
			}
			if issues[0].Col != tt.col || issues[0].Entity != tt.entity {
				t.Errorf("issue = %+v, want col %d entity %q", issues[0], tt.col, tt.entity)
			}
		})
	}
}

func TestScanLinesOnePerLine(t *testing.T) {
	text := "ok line\r\n  a & b & c  \nfine &amp;\n"
	issues, err := ScanLines(strings.NewReader(text), "page.xml")
	if err != nil {
		t.Fatal(err)
	}
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want 1", issues)
	}
	got := issues[0].String()
	if got != "page.xml:2:5  -> a & b & c" {
		t.Errorf("String() = %q", got)
	}
}

func TestScanTree(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"index.html":               "<a href='?a=1&b=2'>",
		"clean.svg":                "<svg>&amp;</svg>",
		"notes.txt":                "a & b",
		"sub/feed.XML":             "<title>R&D</title>",
		"node_modules/lib/x.html":  "a & b",
		".git/description.html":    "a & b",
		"sub/node_modules_x/y.htm": "& alone",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	issues, err := ScanTree(root)
	if err != nil {
		t.Fatalf("ScanTree: %v", err)
	}
	var paths []string
	for _, i := range issues {
		paths = append(paths, i.Path)
	}
	want := "index.html,sub/feed.XML,sub/node_modules_x/y.htm"
	if strings.Join(paths, ",") != want {
		t.Errorf("paths = %v, want %s", paths, want)
	}
}
