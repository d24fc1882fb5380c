package model

import "time"

// PeriodSnapshot 一个统计周期的汇总快照
// 以周期键去重：同键重新导入整体替换，历史序列中每个键至多一条
type PeriodSnapshot struct {
	Key        string    `json:"key"`      // 周期键，如 "2025年3月"
	FileID     string    `json:"fileId"`   // 来源文件标识
	FileName   string    `json:"fileName"` // 来源文件名
	IngestedAt time.Time `json:"ingestedAt"`

	TotalSales              Amount `json:"totalSales"`
	TotalPayment            Amount `json:"totalPayment"`
	TotalOverdueUnrecovered Amount `json:"totalOverdueUnrecovered"`

	Departments []DepartmentStat `json:"departments,omitempty"`
	Employees   []EmployeeStat   `json:"employees,omitempty"`
}

// DepartmentStat 快照内单个部门（队）的汇总
type DepartmentStat struct {
	Name    string `json:"name"`
	Sales   Amount `json:"sales"`
	Payment Amount `json:"payment"`
	Members int    `json:"members"`
}

// EmployeeStat 快照内单个员工的销售回款
type EmployeeStat struct {
	Name    string `json:"name"`
	Sales   Amount `json:"sales"`
	Payment Amount `json:"payment"`
}

// SeriesPoint 时间序列上的一个取样点
type SeriesPoint struct {
	Key     string `json:"key"`
	Sales   Amount `json:"sales"`
	Payment Amount `json:"payment"`
	Overdue Amount `json:"overdue"`
}

// Series 某个实体（整体/部门/员工）的按周期键排序序列
// 某周期缺少该实体时直接跳过该点，不补零不插值
type Series struct {
	Entity string        `json:"entity"`
	Points []SeriesPoint `json:"points"`
}
