package board

import (
	"saleboard/internal/model"
)

// Merge 以员工姓名为键把可选表左连接到主表上
// 主表行集始终原样保留：不丢行、不增行，缺失的可选字段保持无效值。
// 可选表若带队名列，一律丢弃，以主表队名为准。
// 主表姓名重复时取首行，重复名单记录在结果上由调用方决定如何提示。
func Merge(primary *model.Dataset, secondaries map[model.SheetRole]*model.Dataset) *model.MergedDataset {
	merged := &model.MergedDataset{
		Columns: make(map[string]bool),
	}

	nameIdx := primary.ColumnIndex(model.ColEmployeeName)
	teamIdx := primary.ColumnIndex(model.ColTeamName)

	primaryCols := []string{
		model.ColEmployeeName,
		model.ColTeamName,
		model.ColTotalScore,
		model.ColWeightedTeamScore,
		model.ColSalesTargetScore,
		model.ColPaymentTargetScore,
		model.ColOverdueRecoveryScore,
		model.ColSalesRankScore,
		model.ColPaymentRankScore,
		model.ColSalesProgressScore,
		model.ColPaymentProgressScore,
		model.ColBaseScore,
		model.ColTeamBonusScore,
		model.ColStatPeriod,
	}
	for _, col := range primaryCols {
		if primary.HasColumn(col) {
			merged.Columns[col] = true
		}
	}

	seen := make(map[string]struct{}, len(primary.Rows))
	for _, row := range primary.Rows {
		rec := &model.EmployeeRecord{
			Name: primary.Cell(row, nameIdx),
			Team: primary.Cell(row, teamIdx),
		}
		fillScores(rec, primary, row)

		if rec.Name != "" {
			if _, dup := seen[rec.Name]; dup {
				merged.DuplicateNames = append(merged.DuplicateNames, rec.Name)
			} else {
				seen[rec.Name] = struct{}{}
			}
		}

		merged.Rows = append(merged.Rows, rec)
	}

	if sales := secondaries[model.SheetRoleSales]; sales != nil {
		mergeSales(merged, sales)
	}
	if ranking := secondaries[model.SheetRoleRanking]; ranking != nil {
		mergeRanking(merged, ranking)
	}

	return merged
}

// fillScores 读取主表的积分字段
func fillScores(rec *model.EmployeeRecord, ds *model.Dataset, row []string) {
	get := func(col string) model.Amount {
		return parseAmount(ds.Cell(row, ds.ColumnIndex(col)))
	}

	rec.TotalScore = get(model.ColTotalScore)
	rec.WeightedTeamScore = get(model.ColWeightedTeamScore)
	rec.SalesTargetScore = get(model.ColSalesTargetScore)
	rec.PaymentTargetScore = get(model.ColPaymentTargetScore)
	rec.OverdueRecoveryScore = get(model.ColOverdueRecoveryScore)
	rec.SalesRankScore = get(model.ColSalesRankScore)
	rec.PaymentRankScore = get(model.ColPaymentRankScore)
	rec.SalesProgressScore = get(model.ColSalesProgressScore)
	rec.PaymentProgressScore = get(model.ColPaymentProgressScore)
	rec.BaseScore = get(model.ColBaseScore)
	rec.TeamBonusScore = get(model.ColTeamBonusScore)
	rec.StatPeriod = ds.Cell(row, ds.ColumnIndex(model.ColStatPeriod))
}

// mergeSales 左连接销售明细表：固定列 + 周数据模式列 + 上月参考列
func mergeSales(merged *model.MergedDataset, sales *model.Dataset) {
	nameIdx := sales.ColumnIndex(model.ColEmployeeName)
	if nameIdx < 0 {
		return
	}

	// 姓名 → 行，首次出现优先
	byName := make(map[string][]string, len(sales.Rows))
	for _, row := range sales.Rows {
		name := sales.Cell(row, nameIdx)
		if name == "" {
			continue
		}
		if _, ok := byName[name]; !ok {
			byName[name] = row
		}
	}

	fixed := make(map[string]int, len(salesMergeColumns))
	for _, col := range salesMergeColumns {
		if idx := sales.ColumnIndex(col); idx >= 0 {
			fixed[col] = idx
			merged.Columns[col] = true
		}
	}

	weekSalesIdx := make([]int, model.MaxWeeks)
	weekPaymentIdx := make([]int, model.MaxWeeks)
	for w := 1; w <= model.MaxWeeks; w++ {
		weekSalesIdx[w-1] = findAliasCol(sales, weekSalesAliases(w))
		weekPaymentIdx[w-1] = findAliasCol(sales, weekPaymentAliases(w))
	}

	prevSalesIdx := findPrevRefCol(sales, "销售")
	prevPaymentIdx := findPrevRefCol(sales, "回款")
	if prevSalesIdx >= 0 {
		merged.Columns[model.ColPrevSalesRef] = true
	}
	if prevPaymentIdx >= 0 {
		merged.Columns[model.ColPrevPaymentRef] = true
	}

	for _, rec := range merged.Rows {
		row, ok := byName[rec.Name]
		if !ok {
			continue
		}

		get := func(col string) model.Amount {
			idx, ok := fixed[col]
			if !ok {
				return model.Amount{}
			}
			return parseAmount(sales.Cell(row, idx))
		}

		rec.MonthSales = get(model.ColMonthSales)
		rec.MonthPayment = get(model.ColMonthPayment)
		rec.MonthOnTimePayment = get(model.ColMonthOnTimePayment)
		rec.MonthOverduePayment = get(model.ColMonthOverduePayment)
		rec.MonthOverdueUnrecovered = get(model.ColMonthOverdueUnrecovered)
		rec.SalesTarget = get(model.ColSalesTarget)
		rec.PaymentTarget = get(model.ColPaymentTarget)

		if rec.StatPeriod == "" {
			if idx, ok := fixed[model.ColStatPeriod]; ok {
				rec.StatPeriod = sales.Cell(row, idx)
			}
		}

		for w := 0; w < model.MaxWeeks; w++ {
			if weekSalesIdx[w] >= 0 {
				rec.WeekSales[w] = parseAmount(sales.Cell(row, weekSalesIdx[w]))
			}
			if weekPaymentIdx[w] >= 0 {
				rec.WeekPayment[w] = parseAmount(sales.Cell(row, weekPaymentIdx[w]))
			}
		}

		if prevSalesIdx >= 0 {
			rec.PrevSalesRef = parseAmount(sales.Cell(row, prevSalesIdx))
		}
		if prevPaymentIdx >= 0 {
			rec.PrevPaymentRef = parseAmount(sales.Cell(row, prevPaymentIdx))
		}
	}
}

// mergeRanking 左连接排名明细表
func mergeRanking(merged *model.MergedDataset, ranking *model.Dataset) {
	nameIdx := ranking.ColumnIndex(model.ColEmployeeName)
	if nameIdx < 0 {
		return
	}

	byName := make(map[string][]string, len(ranking.Rows))
	for _, row := range ranking.Rows {
		name := ranking.Cell(row, nameIdx)
		if name == "" {
			continue
		}
		if _, ok := byName[name]; !ok {
			byName[name] = row
		}
	}

	salesIdx := ranking.ColumnIndex(model.ColSalesRank)
	paymentIdx := ranking.ColumnIndex(model.ColPaymentRank)
	if salesIdx >= 0 {
		merged.Columns[model.ColSalesRank] = true
	}
	if paymentIdx >= 0 {
		merged.Columns[model.ColPaymentRank] = true
	}

	for _, rec := range merged.Rows {
		row, ok := byName[rec.Name]
		if !ok {
			continue
		}
		if salesIdx >= 0 {
			rec.SalesRank = parseAmount(ranking.Cell(row, salesIdx))
		}
		if paymentIdx >= 0 {
			rec.PaymentRank = parseAmount(ranking.Cell(row, paymentIdx))
		}
	}
}
