package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Namespace sitemap 协议命名空间
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet <urlset> 根元素
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL 一个 <url> 条目
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// CollectPages 递归查找 dir 下的 .html 文件（扩展名不区分大小写）
// 返回相对 dir 的 posix 路径，按路径分段排序，使目录内的文件排在同名前缀的兄弟文件之前
func CollectPages(dir string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		pages = append(pages, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	sort.Slice(pages, func(i, j int) bool {
		return lessPath(pages[i], pages[j])
	})
	return pages, nil
}

// lessPath 按分段比较 posix 路径
func lessPath(a, b string) bool {
	pa, pb := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return len(pa) < len(pb)
}

// Build 组装 URLSet：根地址在前，随后每个页面一条
func Build(cfg Config, pages []string, today time.Time) *URLSet {
	base := strings.TrimRight(cfg.BaseURL, "/")
	lastMod := today.Format("2006-01-02")

	set := &URLSet{Xmlns: Namespace}
	set.URLs = append(set.URLs, URL{
		Loc:        base + "/",
		LastMod:    lastMod,
		ChangeFreq: cfg.ChangeFreq,
		Priority:   formatPriority(cfg.RootPriority),
	})
	for _, page := range pages {
		set.URLs = append(set.URLs, URL{
			Loc:        base + "/" + page,
			LastMod:    lastMod,
			ChangeFreq: cfg.ChangeFreq,
			Priority:   formatPriority(cfg.PagePriority),
		})
	}
	return set
}

func formatPriority(p float64) string {
	return fmt.Sprintf("%.1f", p)
}

// Encode 写出带 XML 声明的 sitemap，两空格缩进
func Encode(w io.Writer, set *URLSet) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return enc.Close()
}

// Generate 扫描页面目录并写出 sitemap 文件，返回页面数
func Generate(cfg Config, today time.Time) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	pages, err := CollectPages(cfg.PagesDir)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(cfg.OutPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", cfg.OutPath, err)
	}
	if err := Encode(f, Build(cfg, pages, today)); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", cfg.OutPath, err)
	}

	log.Printf("[Sitemap] %d pages from %s -> %s", len(pages), cfg.PagesDir, cfg.OutPath)
	return len(pages), nil
}
