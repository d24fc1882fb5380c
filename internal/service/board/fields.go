package board

import (
	"fmt"
	"strconv"
	"strings"

	"saleboard/internal/model"
)

// 销售明细表参与合并的固定列（周数据与上月参考另按模式匹配）
var salesMergeColumns = []string{
	model.ColMonthSales,
	model.ColMonthPayment,
	model.ColMonthOnTimePayment,
	model.ColMonthOverduePayment,
	model.ColMonthOverdueUnrecovered,
	model.ColSalesTarget,
	model.ColPaymentTarget,
	model.ColStatPeriod,
}

// weekSalesAliases 第 week 周销售额的列名别名（新旧两代导出命名）
func weekSalesAliases(week int) []string {
	return []string{
		fmt.Sprintf("第%d周周销售额", week),
		fmt.Sprintf("第%d周销售额", week),
	}
}

// weekPaymentAliases 第 week 周回款额的列名别名
func weekPaymentAliases(week int) []string {
	return []string{
		fmt.Sprintf("第%d周周回款总额", week),
		fmt.Sprintf("第%d周回款总额", week),
	}
}

// findAliasCol 按别名顺序查列，找不到返回 -1
func findAliasCol(ds *model.Dataset, aliases []string) int {
	for _, name := range aliases {
		if idx := ds.ColumnIndex(name); idx >= 0 {
			return idx
		}
	}
	return -1
}

// findPrevRefCol 查找上月参考列：同时含 "上月"、"参考" 与指定关键字
func findPrevRefCol(ds *model.Dataset, keyword string) int {
	for i, h := range ds.Headers {
		if strings.Contains(h, "上月") && strings.Contains(h, "参考") && strings.Contains(h, keyword) {
			return i
		}
	}
	return -1
}

// parseAmount 将单元格文本解析为可缺失数值，空串视为缺失
func parseAmount(s string) model.Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Amount{}
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Amount{}
	}
	return model.NewAmount(f)
}
