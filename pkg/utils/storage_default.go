//go:build !android

package utils

// EnsureStorageDir 桌面与 iOS 上 gdata 自行创建目录
func EnsureStorageDir() error { return nil }

// GetStoragePath 仅 Android 有意义
func GetStoragePath() string { return "" }
