package config

import (
	"fmt"
	"os"

	"github.com/decker502/zombieshooter/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// readConfigFile 读取配置文件
// "data/" 开头的路径从嵌入资源读取，其余路径从磁盘读取（用于 -config 覆盖）
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsEmbeddedPath(path) && embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// readYAML 读取并解析 YAML 文件到 out
func readYAML(path string, out interface{}) error {
	data, err := readConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	return nil
}
