package board

import "saleboard/internal/model"

// Overview 当期销售回款概览（原始单位，展示层自行换算万元）
type Overview struct {
	TotalSales   model.Amount `json:"totalSales"`
	TotalPayment model.Amount `json:"totalPayment"`
	AvgSales     model.Amount `json:"avgSales"`
	AvgPayment   model.Amount `json:"avgPayment"`
	Teams        []TeamSales  `json:"teams"`
}

// TeamSales 单队销售回款合计
type TeamSales struct {
	Team    string  `json:"team"`
	Sales   float64 `json:"sales"`
	Payment float64 `json:"payment"`
	Members int     `json:"members"`
}

// SalesOverview 汇总当期销售回款
// 销售明细列缺失时对应合计保持无效，不以 0 充数
func SalesOverview(d *model.MergedDataset) *Overview {
	o := &Overview{}

	if d.HasField(model.ColMonthSales) {
		sum, n := sumValid(d, func(r *model.EmployeeRecord) model.Amount { return r.MonthSales })
		if n > 0 {
			o.TotalSales = model.NewAmount(sum)
			o.AvgSales = model.NewAmount(sum / float64(n))
		}
	}
	if d.HasField(model.ColMonthPayment) {
		sum, n := sumValid(d, func(r *model.EmployeeRecord) model.Amount { return r.MonthPayment })
		if n > 0 {
			o.TotalPayment = model.NewAmount(sum)
			o.AvgPayment = model.NewAmount(sum / float64(n))
		}
	}

	o.Teams = teamSales(d)
	return o
}

// teamSales 按队汇总，保持队名首次出现顺序
func teamSales(d *model.MergedDataset) []TeamSales {
	if !d.HasField(model.ColMonthSales) && !d.HasField(model.ColMonthPayment) {
		return nil
	}

	index := make(map[string]int)
	out := make([]TeamSales, 0)
	for _, rec := range d.Rows {
		if rec.Team == "" {
			continue
		}
		i, ok := index[rec.Team]
		if !ok {
			i = len(out)
			index[rec.Team] = i
			out = append(out, TeamSales{Team: rec.Team})
		}
		out[i].Members++
		out[i].Sales += rec.MonthSales.Or(0)
		out[i].Payment += rec.MonthPayment.Or(0)
	}
	return out
}

// WeekTotal 单周全员合计
type WeekTotal struct {
	Week    int          `json:"week"`
	Sales   model.Amount `json:"sales"`
	Payment model.Amount `json:"payment"`
}

// WeeklyTotals 各周销售/回款合计，两个口径都无数据的周直接省略
func WeeklyTotals(d *model.MergedDataset) []WeekTotal {
	out := make([]WeekTotal, 0, model.MaxWeeks)

	for w := 0; w < model.MaxWeeks; w++ {
		week := w
		salesSum, salesN := sumValid(d, func(r *model.EmployeeRecord) model.Amount { return r.WeekSales[week] })
		paySum, payN := sumValid(d, func(r *model.EmployeeRecord) model.Amount { return r.WeekPayment[week] })
		if salesN == 0 && payN == 0 {
			continue
		}

		wt := WeekTotal{Week: w + 1}
		if salesN > 0 {
			wt.Sales = model.NewAmount(salesSum)
		}
		if payN > 0 {
			wt.Payment = model.NewAmount(paySum)
		}
		out = append(out, wt)
	}

	return out
}

func sumValid(d *model.MergedDataset, pick func(*model.EmployeeRecord) model.Amount) (float64, int) {
	sum := 0.0
	n := 0
	for _, rec := range d.Rows {
		v := pick(rec)
		if !v.Valid {
			continue
		}
		sum += v.Value
		n++
	}
	return sum, n
}
