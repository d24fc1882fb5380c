package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
	Watch    WatchConfig    `toml:"watch"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// BusinessConfig 业务配置
type BusinessConfig struct {
	SalesWeight   float64 `toml:"sales_weight"`   // 进步值的销售权重
	PaymentWeight float64 `toml:"payment_weight"` // 进步值的回款权重
}

// WatchConfig 统计文件自动检测配置
type WatchConfig struct {
	Dir     string `toml:"dir"`     // 监视目录，空表示程序工作目录
	Pattern string `toml:"pattern"` // 文件命名模式
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20372,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Business: BusinessConfig{
			SalesWeight:   0.6,
			PaymentWeight: 0.4,
		},
		Watch: WatchConfig{
			Dir:     "",
			Pattern: "员工销售回款统计_*.xlsx",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从可执行文件同目录的 config.toml 加载配置
// 文件不存在时返回默认配置
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := os.ReadFile(filepath.Join(exeDir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// 环境变量覆盖（用于 E2E / 本地运行）
	if v := os.Getenv("SALEBOARD_WATCH_DIR"); v != "" {
		config.Watch.Dir = v
	}

	return config, nil
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir 确保数据目录及上传/导出子目录存在
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	for _, dir := range []string{dataDir, filepath.Join(dataDir, "uploads"), filepath.Join(dataDir, "exports")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
