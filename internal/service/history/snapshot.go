package history

import (
	"time"

	"saleboard/internal/model"
)

// BuildSnapshot 由当期合并数据构建周期快照
// 部门口径：有部门汇总表优先采用，否则按主表队名分组；
// 员工口径：仅收录姓名非空且至少有一项销售/回款数据的行。
func BuildSnapshot(key, fileID, fileName string, merged *model.MergedDataset, dept *model.Dataset) *model.PeriodSnapshot {
	snap := &model.PeriodSnapshot{
		Key:        key,
		FileID:     fileID,
		FileName:   fileName,
		IngestedAt: time.Now(),
	}

	if merged.HasField(model.ColMonthSales) {
		if sum, n := sumField(merged, func(r *model.EmployeeRecord) model.Amount { return r.MonthSales }); n > 0 {
			snap.TotalSales = model.NewAmount(sum)
		}
	}
	if merged.HasField(model.ColMonthPayment) {
		if sum, n := sumField(merged, func(r *model.EmployeeRecord) model.Amount { return r.MonthPayment }); n > 0 {
			snap.TotalPayment = model.NewAmount(sum)
		}
	}
	if merged.HasField(model.ColMonthOverdueUnrecovered) {
		if sum, n := sumField(merged, func(r *model.EmployeeRecord) model.Amount { return r.MonthOverdueUnrecovered }); n > 0 {
			snap.TotalOverdueUnrecovered = model.NewAmount(sum)
		}
	}

	if dept != nil {
		snap.Departments = departmentsFromSheet(dept)
	}
	if len(snap.Departments) == 0 {
		snap.Departments = departmentsFromMerged(merged)
	}

	snap.Employees = employeesFromMerged(merged)

	return snap
}

// departmentsFromSheet 采用部门汇总表的数据
func departmentsFromSheet(dept *model.Dataset) []model.DepartmentStat {
	nameIdx := dept.ColumnIndex(model.ColDepartmentName)
	if nameIdx < 0 {
		nameIdx = dept.ColumnIndex(model.ColTeamName)
	}
	if nameIdx < 0 {
		return nil
	}
	salesIdx := dept.ColumnIndex(model.ColMonthSales)
	paymentIdx := dept.ColumnIndex(model.ColMonthPayment)

	out := make([]model.DepartmentStat, 0, len(dept.Rows))
	for _, row := range dept.Rows {
		name := dept.Cell(row, nameIdx)
		if name == "" {
			continue
		}
		out = append(out, model.DepartmentStat{
			Name:    name,
			Sales:   parseCell(dept, row, salesIdx),
			Payment: parseCell(dept, row, paymentIdx),
		})
	}
	return out
}

// departmentsFromMerged 按主表队名分组汇总
func departmentsFromMerged(merged *model.MergedDataset) []model.DepartmentStat {
	if !merged.HasField(model.ColMonthSales) && !merged.HasField(model.ColMonthPayment) {
		return nil
	}

	index := make(map[string]int)
	out := make([]model.DepartmentStat, 0)
	for _, rec := range merged.Rows {
		if rec.Team == "" {
			continue
		}
		i, ok := index[rec.Team]
		if !ok {
			i = len(out)
			index[rec.Team] = i
			out = append(out, model.DepartmentStat{Name: rec.Team})
		}
		out[i].Members++
		if rec.MonthSales.Valid {
			out[i].Sales = model.NewAmount(out[i].Sales.Or(0) + rec.MonthSales.Value)
		}
		if rec.MonthPayment.Valid {
			out[i].Payment = model.NewAmount(out[i].Payment.Or(0) + rec.MonthPayment.Value)
		}
	}
	return out
}

func employeesFromMerged(merged *model.MergedDataset) []model.EmployeeStat {
	out := make([]model.EmployeeStat, 0, len(merged.Rows))
	for _, rec := range merged.Rows {
		if rec.Name == "" {
			continue
		}
		if !rec.MonthSales.Valid && !rec.MonthPayment.Valid {
			continue
		}
		out = append(out, model.EmployeeStat{
			Name:    rec.Name,
			Sales:   rec.MonthSales,
			Payment: rec.MonthPayment,
		})
	}
	return out
}

func sumField(d *model.MergedDataset, pick func(*model.EmployeeRecord) model.Amount) (float64, int) {
	sum := 0.0
	n := 0
	for _, rec := range d.Rows {
		if v := pick(rec); v.Valid {
			sum += v.Value
			n++
		}
	}
	return sum, n
}

func parseCell(ds *model.Dataset, row []string, idx int) model.Amount {
	if idx < 0 {
		return model.Amount{}
	}
	s := ds.Cell(row, idx)
	if s == "" {
		return model.Amount{}
	}
	var f float64
	var err error
	f, err = parseNumber(s)
	if err != nil {
		return model.Amount{}
	}
	return model.NewAmount(f)
}
