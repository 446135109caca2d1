//go:build !mobile

// Package mobile 是 ebitenmobile 的绑定入口，游戏只在 -tags mobile 构建时注册（见 mobile.go）
package mobile

// Dummy 让普通构建下的包仍有导出符号
func Dummy() {}
