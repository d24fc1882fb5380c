package excel

import (
	"path/filepath"
	"regexp"
	"strings"

	"saleboard/internal/model"
)

var periodRe = regexp.MustCompile(`(\d{4})年(\d{1,2})月`)

// PeriodKeySource 周期键的来源
type PeriodKeySource string

const (
	PeriodFromFilename  PeriodKeySource = "filename"  // 文件名中的 YYYY年M月
	PeriodFromColumn    PeriodKeySource = "column"    // 统计月份列的唯一取值
	PeriodFromRawName   PeriodKeySource = "raw"       // 兜底：原始文件名
	PeriodAmbiguousNote PeriodKeySource = "ambiguous" // 统计月份列取值不唯一，已回退文件名
)

// ExtractPeriodKey 为一次导入提取周期键
// 顺序：文件名中的 "YYYY年M月" → 销售表/主表统计月份列的唯一非空值 → 原始文件名。
// 统计月份列出现多个不同取值时视为歧义，回退文件名（非致命）。
func ExtractPeriodKey(filename string, data *model.WorkbookData) (string, PeriodKeySource) {
	if m := periodRe.FindString(filename); m != "" {
		return m, PeriodFromFilename
	}

	ambiguous := false
	if data != nil {
		candidates := []*model.Dataset{data.Secondary(model.SheetRoleSales), data.Primary}
		for _, ds := range candidates {
			if ds == nil {
				continue
			}
			idx := ds.ColumnIndex(model.ColStatPeriod)
			if idx < 0 {
				continue
			}
			values := distinctColumnValues(ds, idx)
			if len(values) == 1 {
				return values[0], PeriodFromColumn
			}
			if len(values) > 1 {
				ambiguous = true
			}
		}
	}

	key := strings.TrimSpace(filepath.Base(filename))
	if ext := filepath.Ext(key); ext != "" {
		key = strings.TrimSuffix(key, ext)
	}
	if ambiguous {
		return key, PeriodAmbiguousNote
	}
	return key, PeriodFromRawName
}

func distinctColumnValues(ds *model.Dataset, idx int) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 1)
	for _, row := range ds.Rows {
		v := ds.Cell(row, idx)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
