package model

// TeamSummary 一个小组的排名摘要
// 排名按加权总分降序，1 起连续编号，同分按主表出现顺序
type TeamSummary struct {
	Name          string            `json:"name"`
	WeightedScore float64           `json:"weightedScore"`
	Rank          int               `json:"rank"`
	Members       []*EmployeeRecord `json:"members"`
}

// Cohorts 红黑榜分组结果
// 不足 4 个小组时红黑榜可能重叠，Overlap 如实透出，不做去重
type Cohorts struct {
	RedTeams   []string          `json:"redTeams"`
	BlackTeams []string          `json:"blackTeams"`
	Red        []*EmployeeRecord `json:"red"`   // 个人总积分降序
	Black      []*EmployeeRecord `json:"black"` // 个人总积分升序（末位在前）
	Overlap    bool              `json:"overlap"`
}
