package history

import (
	"encoding/csv"
	"io"
	"strconv"

	"saleboard/internal/model"
)

// 导出列声明，列顺序即此顺序；数值为引擎原始单位
var overallHeader = []string{"统计月份", "总销售额", "总回款额", "超期欠款（未追回）"}

// WriteOverallCSV 导出整体序列：每个周期一行
func (a *Assembler) WriteOverallCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(overallHeader); err != nil {
		return err
	}

	for _, p := range a.OverallSeries().Points {
		record := []string{
			p.Key,
			formatAmount(p.Sales),
			formatAmount(p.Payment),
			formatAmount(p.Overdue),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSeriesCSV 导出一组实体序列：每个周期一行，每实体两列（销售/回款）
func WriteSeriesCSV(w io.Writer, series []model.Series) error {
	cw := csv.NewWriter(w)

	header := []string{"统计月份"}
	for _, s := range series {
		header = append(header, s.Entity+"销售额", s.Entity+"回款额")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	// 周期键的出现顺序以各序列的并集为准
	keys := make([]string, 0)
	seen := make(map[string]int)
	for _, s := range series {
		for _, p := range s.Points {
			if _, ok := seen[p.Key]; !ok {
				seen[p.Key] = len(keys)
				keys = append(keys, p.Key)
			}
		}
	}

	for _, key := range keys {
		record := []string{key}
		for _, s := range series {
			var sales, payment model.Amount
			for _, p := range s.Points {
				if p.Key == key {
					sales, payment = p.Sales, p.Payment
					break
				}
			}
			record = append(record, formatAmount(sales), formatAmount(payment))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatAmount 缺失值导出为空单元格
func formatAmount(a model.Amount) string {
	if !a.Valid {
		return ""
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}
