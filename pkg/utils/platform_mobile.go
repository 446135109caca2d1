//go:build mobile

package utils

// IsMobile ebitenmobile 构建总是使用触屏操作
func IsMobile() bool { return true }
