package board

import "saleboard/internal/model"

// Weights 进步值的销售/回款权重
type Weights struct {
	Sales   float64
	Payment float64
}

// DefaultWeights 默认 0.6 销售 / 0.4 回款
func DefaultWeights() Weights {
	return Weights{Sales: 0.6, Payment: 0.4}
}

// Derive 计算全部衍生指标
// 每项指标都先判断来源列是否在合并数据中存在，输入缺失的指标不计算也不补零；
// 计算成功的指标名记入列集合，供成就规则做能力判断。
func Derive(d *model.MergedDataset, w Weights) {
	deriveContribution(d)
	deriveImprovement(d, w)
	deriveCompletion(d)
}

// deriveContribution 个人贡献率 = 个人总积分 / 加权小组总分
// 加权小组总分为 0 时该行保持未定义，不报错
func deriveContribution(d *model.MergedDataset) {
	if !d.HasField(model.ColTotalScore) || !d.HasField(model.ColWeightedTeamScore) {
		return
	}

	for _, rec := range d.Rows {
		if !rec.TotalScore.Valid || !rec.WeightedTeamScore.Valid {
			continue
		}
		if rec.WeightedTeamScore.Value == 0 {
			continue
		}
		rec.Contribution = model.NewAmount(rec.TotalScore.Value / rec.WeightedTeamScore.Value)
	}
	d.Columns[model.ColContribution] = true
}

// deriveImprovement 进步值 = w.Sales×(本月销售额−上月销售额参考) + w.Payment×(本月回款总额−上月回款额参考)
// 要求两个本月字段存在；上月参考缺失按 0 处理
func deriveImprovement(d *model.MergedDataset, w Weights) {
	if !d.HasField(model.ColMonthSales) || !d.HasField(model.ColMonthPayment) {
		return
	}

	for _, rec := range d.Rows {
		if !rec.MonthSales.Valid || !rec.MonthPayment.Valid {
			continue
		}
		v := w.Sales*(rec.MonthSales.Value-rec.PrevSalesRef.Or(0)) +
			w.Payment*(rec.MonthPayment.Value-rec.PrevPaymentRef.Or(0))
		rec.Improvement = model.NewAmount(v)
	}
	d.Columns[model.ColImprovement] = true
}

// deriveCompletion 任务完成率 = 本月实际 / 本月目标，目标为 0 时未定义
func deriveCompletion(d *model.MergedDataset) {
	if d.HasField(model.ColMonthSales) && d.HasField(model.ColSalesTarget) {
		for _, rec := range d.Rows {
			if rec.MonthSales.Valid && rec.SalesTarget.Valid && rec.SalesTarget.Value != 0 {
				rec.SalesCompletion = model.NewAmount(rec.MonthSales.Value / rec.SalesTarget.Value)
			}
		}
		d.Columns[model.ColSalesCompletion] = true
	}

	if d.HasField(model.ColMonthPayment) && d.HasField(model.ColPaymentTarget) {
		for _, rec := range d.Rows {
			if rec.MonthPayment.Valid && rec.PaymentTarget.Valid && rec.PaymentTarget.Value != 0 {
				rec.PaymentCompletion = model.NewAmount(rec.MonthPayment.Value / rec.PaymentTarget.Value)
			}
		}
		d.Columns[model.ColPaymentCompletion] = true
	}
}
