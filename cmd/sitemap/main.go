// sitemap 扫描页面目录生成 sitemap.xml
//
// 使用方法:
//
//	go run ./cmd/sitemap [-dir games-HTML5] [-out sitemap.xml] [-base https://javasnake.com] [-config sitemap.yaml]
//
// 所有参数都是可选的：不带任何参数运行时扫描 ./games-HTML5，以 https://javasnake.com 为根地址写出 ./sitemap.xml，
// 与原来无参数的生成脚本输出相同。命令行参数优先于配置文件。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/decker502/zombieshooter/pkg/sitemap"
)

var (
	dir        = flag.String("dir", "", "页面目录（默认 games-HTML5）")
	out        = flag.String("out", "", "输出文件（默认 sitemap.xml）")
	base       = flag.String("base", "", "站点根地址（默认 https://javasnake.com）")
	configPath = flag.String("config", "", "YAML 配置文件")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

// usage 打印用法，说明不带参数时的默认行为
func usage(w io.Writer) {
	def := sitemap.DefaultConfig()
	fmt.Fprintf(w, "Usage: sitemap [flags]\n\n")
	fmt.Fprintf(w, "All flags are optional. With no flags it scans ./%s, uses %s as the base URL\n", def.PagesDir, def.BaseURL)
	fmt.Fprintf(w, "and writes ./%s, the same output as the flagless generator.\n\n", def.OutPath)
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = func() { usage(os.Stderr) }
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := sitemap.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sitemap.LoadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *dir != "" {
		cfg.PagesDir = *dir
	}
	if *out != "" {
		cfg.OutPath = *out
	}
	if *base != "" {
		cfg.BaseURL = strings.TrimRight(*base, "/")
	}

	n, err := sitemap.Generate(cfg, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote sitemap to %s (%d pages)\n", cfg.OutPath, n)
}
