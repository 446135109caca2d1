package sitemap

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ScanExtensions 可能按 XML 解析的文件类型
var ScanExtensions = []string{".html", ".htm", ".xml", ".xhtml", ".svg"}

// skipDirs 扫描时跳过的目录
var skipDirs = map[string]bool{"node_modules": true, ".git": true}

// entityName &name; 或 &#123; 中分号前的部分
var entityName = regexp.MustCompile(`^#?\w+$`)

// Issue 一处可疑的裸 &
type Issue struct {
	Path    string // 相对扫描根目录
	Line    int    // 从 1 开始
	Col     int    // 从 1 开始（字节）
	Snippet string // 去掉首尾空白的整行
	Entity  string // 分号前的内容；找不到分号时为空
}

func (i Issue) String() string {
	s := fmt.Sprintf("%s:%d:%d  -> %s", i.Path, i.Line, i.Col, i.Snippet)
	if i.Entity != "" {
		s += fmt.Sprintf("  [entity: %s]", i.Entity)
	}
	return s
}

// ScanLines 扫描文本中的裸 &，每行最多报告一处
func ScanLines(r io.Reader, path string) ([]Issue, error) {
	var issues []Issue
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if issue, ok := scanLine(line); ok {
			issue.Path, issue.Line = path, n
			issues = append(issues, issue)
		}
	}
	if err := sc.Err(); err != nil {
		return issues, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return issues, nil
}

func scanLine(line string) (Issue, bool) {
	for idx := strings.IndexByte(line, '&'); idx != -1; {
		rest := line[idx+1:]
		semi := strings.IndexByte(rest, ';')
		if semi == -1 {
			return Issue{Col: idx + 1, Snippet: strings.TrimSpace(line)}, true
		}
		if name := rest[:semi]; !entityName.MatchString(name) {
			return Issue{Col: idx + 1, Snippet: strings.TrimSpace(line), Entity: name}, true
		}
		next := strings.IndexByte(rest, '&')
		if next == -1 {
			break
		}
		idx += next + 1
	}
	return Issue{}, false
}

// ScanTree 遍历 root 下所有可能按 XML 解析的文件
// 无法读取的文件跳过
func ScanTree(root string) ([]Issue, error) {
	var issues []Issue
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasScanExtension(d.Name()) {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return nil
		}
		defer f.Close()

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		found, err := ScanLines(f, filepath.ToSlash(rel))
		if err != nil {
			return nil
		}
		issues = append(issues, found...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return issues, nil
}

func hasScanExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ScanExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
