// Package data 嵌入游戏数值配置文件
//
// 桌面端与移动端都通过 embedded.Init(data.FS) 使用同一份配置
package data

import "embed"

// FS 以 data 目录为根的嵌入文件系统
//
//go:embed *.yaml
var FS embed.FS
