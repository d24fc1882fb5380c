package board

import (
	"sort"

	"saleboard/internal/model"
)

// achievementRule 成就规则：可用性前提 + 取最大值的指标
type achievementRule struct {
	Name   string
	Icon   string
	Needs  []string                                // 前提列（全部存在才参评）
	Metric func(*model.EmployeeRecord) model.Amount // 参评指标，无效值不参评
}

// catalogue 成就目录，结果顺序 = 声明顺序
var catalogue = []achievementRule{
	{
		Name:   "销售之星",
		Icon:   "💰",
		Needs:  []string{model.ColMonthSales},
		Metric: func(r *model.EmployeeRecord) model.Amount { return r.MonthSales },
	},
	{
		Name:   "回款之王",
		Icon:   "💸",
		Needs:  []string{model.ColMonthPayment},
		Metric: func(r *model.EmployeeRecord) model.Amount { return r.MonthPayment },
	},
	{
		Name:   "进步最快",
		Icon:   "🚀",
		Needs:  []string{model.ColImprovement},
		Metric: func(r *model.EmployeeRecord) model.Amount { return r.Improvement },
	},
	{
		Name:   "追款能手",
		Icon:   "🕵️",
		Needs:  []string{model.ColMonthOverduePayment},
		Metric: func(r *model.EmployeeRecord) model.Amount { return r.MonthOverduePayment },
	},
	{
		Name:   "团队核心",
		Icon:   "🤝",
		Needs:  []string{model.ColTeamName, model.ColContribution},
		Metric: func(r *model.EmployeeRecord) model.Amount { return r.Contribution },
	},
	{
		Name:   "全能冠军",
		Icon:   "🏆",
		Needs:  []string{model.ColTotalScore},
		Metric: func(r *model.EmployeeRecord) model.Amount { return r.TotalScore },
	},
}

// Evaluate 按目录顺序评定成就
// 前提列缺失或没有任何有效取值的规则直接略过（不算错误）；
// 并列取首个出现的员工。结果可能为空，由调用方提示"暂无可评定成就"。
func Evaluate(d *model.MergedDataset) []model.Achievement {
	out := make([]model.Achievement, 0, len(catalogue))

	for _, rule := range catalogue {
		if !ruleAvailable(d, rule) {
			continue
		}

		var best *model.EmployeeRecord
		var bestValue float64
		for _, rec := range d.Rows {
			v := rule.Metric(rec)
			if !v.Valid || rec.Name == "" {
				continue
			}
			if best == nil || v.Value > bestValue {
				best = rec
				bestValue = v.Value
			}
		}
		if best == nil {
			continue
		}

		out = append(out, model.Achievement{
			Name:      rule.Name,
			Icon:      rule.Icon,
			Recipient: best.Name,
		})
	}

	return out
}

func ruleAvailable(d *model.MergedDataset, rule achievementRule) bool {
	for _, col := range rule.Needs {
		if !d.HasField(col) {
			return false
		}
	}
	return true
}

// TallyByTeam 按得主所在队统计成就数量
// 得主无法回溯到非空队名时只从统计中剔除，成就本身保留。
// 结果按数量降序，同数按队名首次得奖顺序。
func TallyByTeam(d *model.MergedDataset, achievements []model.Achievement) []model.TeamAchievementCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, a := range achievements {
		rec := d.Find(a.Recipient)
		if rec == nil || rec.Team == "" {
			continue
		}
		if _, ok := counts[rec.Team]; !ok {
			order = append(order, rec.Team)
		}
		counts[rec.Team]++
	}

	out := make([]model.TeamAchievementCount, 0, len(order))
	for _, team := range order {
		out = append(out, model.TeamAchievementCount{Team: team, Count: counts[team]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
