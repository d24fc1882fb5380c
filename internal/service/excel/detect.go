package excel

import (
	"os"
	"path/filepath"
)

// DefaultWatchPattern 积分系统导出文件的默认命名模式
const DefaultWatchPattern = "员工销售回款统计_*.xlsx"

// DetectLatestFile 在 dir 下查找符合命名模式的最新文件（按修改时间）
// 找不到返回空串，不算错误
func DetectLatestFile(dir, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultWatchPattern
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", err
	}

	latest := ""
	var latestMod int64
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest = path
			latestMod = mod
		}
	}

	return latest, nil
}
