package history

import (
	"strconv"
	"strings"

	"saleboard/internal/model"
)

func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return strconv.ParseFloat(s, 64)
}

// OverallSeries 整体合计的时间序列
// 三个口径全部缺失的快照不产生取样点
func (a *Assembler) OverallSeries() model.Series {
	s := model.Series{Entity: "overall"}
	for _, snap := range a.Snapshots() {
		if !snap.TotalSales.Valid && !snap.TotalPayment.Valid && !snap.TotalOverdueUnrecovered.Valid {
			continue
		}
		s.Points = append(s.Points, model.SeriesPoint{
			Key:     snap.Key,
			Sales:   snap.TotalSales,
			Payment: snap.TotalPayment,
			Overdue: snap.TotalOverdueUnrecovered,
		})
	}
	return s
}

// DepartmentSeries 指定部门集合的时间序列
// 某快照中不存在的部门在该点直接缺席
func (a *Assembler) DepartmentSeries(names []string) []model.Series {
	out := make([]model.Series, 0, len(names))
	snaps := a.Snapshots()

	for _, name := range names {
		s := model.Series{Entity: name}
		for _, snap := range snaps {
			for _, d := range snap.Departments {
				if d.Name != name {
					continue
				}
				s.Points = append(s.Points, model.SeriesPoint{
					Key:     snap.Key,
					Sales:   d.Sales,
					Payment: d.Payment,
				})
				break
			}
		}
		out = append(out, s)
	}
	return out
}

// EmployeeSeries 指定员工集合的时间序列
func (a *Assembler) EmployeeSeries(names []string) []model.Series {
	out := make([]model.Series, 0, len(names))
	snaps := a.Snapshots()

	for _, name := range names {
		s := model.Series{Entity: name}
		for _, snap := range snaps {
			for _, e := range snap.Employees {
				if e.Name != name {
					continue
				}
				s.Points = append(s.Points, model.SeriesPoint{
					Key:     snap.Key,
					Sales:   e.Sales,
					Payment: e.Payment,
				})
				break
			}
		}
		out = append(out, s)
	}
	return out
}

// DepartmentNames 历史上出现过的全部部门名（按首次出现顺序）
func (a *Assembler) DepartmentNames() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, snap := range a.Snapshots() {
		for _, d := range snap.Departments {
			if _, ok := seen[d.Name]; ok {
				continue
			}
			seen[d.Name] = struct{}{}
			out = append(out, d.Name)
		}
	}
	return out
}

// EmployeeNames 历史上出现过的全部员工名（按首次出现顺序）
func (a *Assembler) EmployeeNames() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, snap := range a.Snapshots() {
		for _, e := range snap.Employees {
			if _, ok := seen[e.Name]; ok {
				continue
			}
			seen[e.Name] = struct{}{}
			out = append(out, e.Name)
		}
	}
	return out
}
