package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"saleboard/internal/model"
)

// 各角色 sheet 的别名表，按声明顺序取第一个命中的
var sheetAliases = map[model.SheetRole][]string{
	model.SheetRoleScore:      {"员工积分数据"},
	model.SheetRoleSales:      {"销售回款数据统计", "销售回款数据"},
	model.SheetRoleDepartment: {"部门销售统计", "部门数据统计"},
	model.SheetRoleRanking:    {"销售排名明细", "排名数据"},
}

// 可选 sheet 角色的解析顺序
var secondaryRoles = []model.SheetRole{
	model.SheetRoleSales,
	model.SheetRoleDepartment,
	model.SheetRoleRanking,
}

// Reconciler 工作簿对账器：定位各角色 sheet 并校验主表
type Reconciler struct{}

// NewReconciler 创建对账器
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Open 读取工作簿，失败归类为 ErrSourceReadFailure
func Open(r io.Reader) (*excelize.File, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSourceReadFailure, err)
	}
	return wb, nil
}

// Reconcile 定位主表与各可选表
// 主表必须存在且含队名列，且至少一行队名非空；可选表缺失不算错误
func (rc *Reconciler) Reconcile(wb *excelize.File) (*model.WorkbookData, error) {
	if wb == nil {
		return nil, fmt.Errorf("%w: 工作簿为空", model.ErrSourceReadFailure)
	}

	primary := findSheet(wb, sheetAliases[model.SheetRoleScore])
	if primary == nil {
		return nil, fmt.Errorf("%w: 未找到'员工积分数据'表", model.ErrSourceReadFailure)
	}

	if !primary.HasColumn(model.ColTeamName) {
		return nil, model.ErrMissingRequiredColumn
	}

	teamIdx := primary.ColumnIndex(model.ColTeamName)
	hasTeam := false
	for _, row := range primary.Rows {
		if primary.Cell(row, teamIdx) != "" {
			hasTeam = true
			break
		}
	}
	if !hasTeam {
		return nil, model.ErrEmptyValidRowSet
	}

	secondaries := make(map[model.SheetRole]*model.Dataset)
	for _, role := range secondaryRoles {
		if ds := findSheet(wb, sheetAliases[role]); ds != nil {
			secondaries[role] = ds
		}
	}

	return &model.WorkbookData{
		Primary:     primary,
		Secondaries: secondaries,
	}, nil
}

// findSheet 按别名顺序查找 sheet，读出首个带表头的表格
func findSheet(wb *excelize.File, aliases []string) *model.Dataset {
	existing := make(map[string]string)
	for _, name := range wb.GetSheetList() {
		existing[strings.TrimSpace(name)] = name
	}

	for _, alias := range aliases {
		name, ok := existing[alias]
		if !ok {
			continue
		}
		ds := readDataset(wb, name)
		if ds != nil {
			return ds
		}
	}
	return nil
}

// readDataset 读取单个 sheet 为原始表格，空表返回 nil
func readDataset(wb *excelize.File, sheetName string) *model.Dataset {
	rows, err := wb.GetRows(sheetName)
	if err != nil || len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		data = append(data, row)
	}

	return &model.Dataset{
		SheetName: sheetName,
		Headers:   headers,
		Rows:      data,
	}
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
