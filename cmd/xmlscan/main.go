// xmlscan 查找 HTML/XML/SVG 文件中会破坏 XML 解析的裸 & 字符
//
// 使用方法:
//
//	go run ./cmd/xmlscan [-root .]
//
// 发现问题时退出码为 1
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/zombieshooter/pkg/sitemap"
)

var root = flag.String("root", ".", "扫描的根目录")

func main() {
	flag.Parse()

	issues, err := sitemap.ScanTree(*root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if len(issues) == 0 {
		fmt.Println("No likely XML-unsafe ampersands found in HTML/XML/SVG files.")
		return
	}

	fmt.Println("Potential XML-unsafe ampersands found:")
	for _, issue := range issues {
		fmt.Println(issue)
	}
	os.Exit(1)
}
