//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 打开前创建 Android 应用私有目录下的 saves 子目录
// gdata 使用 /data/data/{package}/ 但不会自己创建子目录，设置写入会失败
func EnsureStorageDir() error {
	dir, err := androidSavesDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回设置文件所在目录，无法识别包名时返回空串
func GetStoragePath() string {
	dir, err := androidSavesDir()
	if err != nil {
		return ""
	}
	return filepath.Dir(dir)
}

// androidSavesDir 根据进程名（即应用包名）拼出 saves 目录
func androidSavesDir() (string, error) {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", fmt.Errorf("failed to read process name: %w", err)
	}
	// cmdline 以 NUL 分隔参数，包名是第一个参数
	if i := bytes.IndexByte(cmdline, 0); i >= 0 {
		cmdline = cmdline[:i]
	}
	pkg := string(bytes.TrimSpace(cmdline))
	if pkg == "" {
		return "", fmt.Errorf("empty process name")
	}
	return filepath.Join("/data/data", pkg, "saves"), nil
}
