package model

import "strings"

// SheetRole 工作簿中各 sheet 的角色
type SheetRole string

const (
	SheetRoleScore      SheetRole = "score"      // 员工积分数据（必需）
	SheetRoleSales      SheetRole = "sales"      // 销售回款明细（可选）
	SheetRoleDepartment SheetRole = "department" // 部门销售汇总（可选）
	SheetRoleRanking    SheetRole = "ranking"    // 排名明细（可选）
)

// Dataset 单个 sheet 的原始表格数据
// Headers 为首行表头，Rows 为其后的数据行（未做任何类型转换）
type Dataset struct {
	SheetName string
	Headers   []string
	Rows      [][]string
}

// ColumnIndex 按表头精确匹配列下标，找不到返回 -1
func (d *Dataset) ColumnIndex(name string) int {
	for i, h := range d.Headers {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// HasColumn 表头是否含有指定列
func (d *Dataset) HasColumn(name string) bool {
	return d.ColumnIndex(name) >= 0
}

// Cell 读取行内单元格并去除首尾空白，越界返回空串
func (d *Dataset) Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// WorkbookData 对账后的工作簿数据集合
type WorkbookData struct {
	Primary     *Dataset
	Secondaries map[SheetRole]*Dataset
}

// Secondary 取某角色的可选数据集，没有返回 nil
func (w *WorkbookData) Secondary(role SheetRole) *Dataset {
	if w == nil || w.Secondaries == nil {
		return nil
	}
	return w.Secondaries[role]
}
