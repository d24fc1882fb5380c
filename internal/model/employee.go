package model

// EmployeeRecord 一名员工在当前统计周期内的合并记录
// 主表字段之外的内容全部可缺失，消费方须先经 MergedDataset.HasField 判断
type EmployeeRecord struct {
	Name string `json:"name"`
	Team string `json:"team"`

	TotalScore        Amount `json:"totalScore"`        // 个人总积分
	WeightedTeamScore Amount `json:"weightedTeamScore"` // 加权小组总分

	// 积分构成
	SalesTargetScore     Amount `json:"salesTargetScore"`     // 销售额目标分
	PaymentTargetScore   Amount `json:"paymentTargetScore"`   // 回款额目标分
	OverdueRecoveryScore Amount `json:"overdueRecoveryScore"` // 超期账款追回分
	SalesRankScore       Amount `json:"salesRankScore"`       // 销售排名分
	PaymentRankScore     Amount `json:"paymentRankScore"`     // 回款排名分
	SalesProgressScore   Amount `json:"salesProgressScore"`   // 销售进步分
	PaymentProgressScore Amount `json:"paymentProgressScore"` // 回款进步分
	BaseScore            Amount `json:"baseScore"`            // 基础分
	TeamBonusScore       Amount `json:"teamBonusScore"`       // 小组加分

	// 月度销售回款（来自销售明细表）
	MonthSales              Amount `json:"monthSales"`
	MonthPayment            Amount `json:"monthPayment"`
	MonthOnTimePayment      Amount `json:"monthOnTimePayment"`
	MonthOverduePayment     Amount `json:"monthOverduePayment"`
	MonthOverdueUnrecovered Amount `json:"monthOverdueUnrecovered"`

	// 周数据，下标 0 对应第 1 周
	WeekSales   [MaxWeeks]Amount `json:"weekSales"`
	WeekPayment [MaxWeeks]Amount `json:"weekPayment"`

	// 上月参考与目标
	PrevSalesRef   Amount `json:"prevSalesRef"`
	PrevPaymentRef Amount `json:"prevPaymentRef"`
	SalesTarget    Amount `json:"salesTarget"`
	PaymentTarget  Amount `json:"paymentTarget"`

	// 排名明细表
	SalesRank   Amount `json:"salesRank"`
	PaymentRank Amount `json:"paymentRank"`

	StatPeriod string `json:"statPeriod"`

	// 衍生指标
	Contribution      Amount `json:"contribution"`      // 个人贡献率
	Improvement       Amount `json:"improvement"`       // 进步值
	SalesCompletion   Amount `json:"salesCompletion"`   // 销售完成率
	PaymentCompletion Amount `json:"paymentCompletion"` // 回款完成率
}

// MergedDataset 主表与各可选表按员工姓名合并后的当期数据
type MergedDataset struct {
	Rows []*EmployeeRecord `json:"rows"`

	// 合并后实际可用的列集合（规范名），决定各衍生指标与成就规则是否适用
	Columns map[string]bool `json:"columns"`

	// 主表中重复出现的员工姓名（取首行，其余行保留但不参与二次查找）
	DuplicateNames []string `json:"duplicateNames,omitempty"`
}

// HasField 合并数据中是否存在指定规范列
func (d *MergedDataset) HasField(name string) bool {
	if d == nil {
		return false
	}
	return d.Columns[name]
}

// Find 按姓名查找员工记录（首次出现优先），找不到返回 nil
func (d *MergedDataset) Find(name string) *EmployeeRecord {
	if d == nil || name == "" {
		return nil
	}
	for _, r := range d.Rows {
		if r.Name == name {
			return r
		}
	}
	return nil
}
