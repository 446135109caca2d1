// Package sitemap 为静态站点生成 sitemap.xml，并扫描会破坏 XML 解析的裸 & 字符
package sitemap

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config 生成器配置
// 所有字段都可以在 YAML 文件中覆盖，未给出的字段保留默认值
type Config struct {
	PagesDir     string  `yaml:"pagesDir"`     // 扫描的页面目录
	BaseURL      string  `yaml:"baseURL"`      // 站点根地址，不带末尾斜杠
	OutPath      string  `yaml:"outPath"`      // 输出文件
	ChangeFreq   string  `yaml:"changeFreq"`   // <changefreq>
	RootPriority float64 `yaml:"rootPriority"` // 根地址优先级
	PagePriority float64 `yaml:"pagePriority"` // 页面优先级
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		PagesDir:     "games-HTML5",
		BaseURL:      "https://javasnake.com",
		OutPath:      "sitemap.xml",
		ChangeFreq:   "weekly",
		RootPriority: 1.0,
		PagePriority: 0.8,
	}
}

// changeFreqs sitemaps.org 允许的 changefreq 取值
var changeFreqs = map[string]bool{
	"always": true, "hourly": true, "daily": true, "weekly": true,
	"monthly": true, "yearly": true, "never": true,
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.PagesDir == "" {
		return fmt.Errorf("pagesDir must not be empty")
	}
	if c.OutPath == "" {
		return fmt.Errorf("outPath must not be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("baseURL %q must start with http:// or https://", c.BaseURL)
	}
	if !changeFreqs[c.ChangeFreq] {
		return fmt.Errorf("changeFreq %q is not a sitemap change frequency", c.ChangeFreq)
	}
	for name, p := range map[string]float64{"rootPriority": c.RootPriority, "pagePriority": c.PagePriority} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s %.2f out of range [0, 1]", name, p)
		}
	}
	return nil
}

// LoadConfig 读取 YAML 配置并叠加到默认值上
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid sitemap config %s: %w", path, err)
	}
	return cfg, nil
}
