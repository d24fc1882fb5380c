package board

import (
	"math"
	"testing"

	"saleboard/internal/model"
)

func mergedWith(columns []string, rows ...*model.EmployeeRecord) *model.MergedDataset {
	d := &model.MergedDataset{Columns: make(map[string]bool)}
	for _, col := range columns {
		d.Columns[col] = true
	}
	d.Rows = rows
	return d
}

func amount(v float64) model.Amount { return model.NewAmount(v) }

func TestDerive_Contribution(t *testing.T) {
	t.Parallel()

	d := mergedWith(
		[]string{model.ColTotalScore, model.ColWeightedTeamScore},
		&model.EmployeeRecord{Name: "张三", TotalScore: amount(90), WeightedTeamScore: amount(180)},
		&model.EmployeeRecord{Name: "李四", TotalScore: amount(50), WeightedTeamScore: amount(0)},
		&model.EmployeeRecord{Name: "王五", TotalScore: amount(60)},
	)

	Derive(d, DefaultWeights())

	if !d.HasField(model.ColContribution) {
		t.Fatalf("contribution column not marked")
	}
	if got := d.Rows[0].Contribution; !got.Valid || got.Value != 0.5 {
		t.Fatalf("张三 contribution: got=%+v want=0.5", got)
	}
	// 分母为 0 或输入缺失的行保持未定义
	if d.Rows[1].Contribution.Valid {
		t.Fatalf("zero denominator should stay undefined")
	}
	if d.Rows[2].Contribution.Valid {
		t.Fatalf("missing weighted score should stay undefined")
	}
}

func TestDerive_ImprovementPriorOptional(t *testing.T) {
	t.Parallel()

	d := mergedWith(
		[]string{model.ColMonthSales, model.ColMonthPayment},
		&model.EmployeeRecord{
			Name:           "张三",
			MonthSales:     amount(120000),
			MonthPayment:   amount(90000),
			PrevSalesRef:   amount(100000),
			PrevPaymentRef: amount(80000),
		},
		&model.EmployeeRecord{
			Name:         "李四",
			MonthSales:   amount(50000),
			MonthPayment: amount(40000),
			// 上月参考缺失，按 0 处理
		},
	)

	Derive(d, Weights{Sales: 0.6, Payment: 0.4})

	want := 0.6*20000 + 0.4*10000
	if got := d.Rows[0].Improvement; !got.Valid || math.Abs(got.Value-want) > 1e-9 {
		t.Fatalf("张三 improvement: got=%+v want=%v", got, want)
	}
	want = 0.6*50000 + 0.4*40000
	if got := d.Rows[1].Improvement; !got.Valid || math.Abs(got.Value-want) > 1e-9 {
		t.Fatalf("李四 improvement: got=%+v want=%v", got, want)
	}
}

func TestDerive_ImprovementNeedsCurrentColumns(t *testing.T) {
	t.Parallel()

	d := mergedWith(
		[]string{model.ColMonthSales},
		&model.EmployeeRecord{Name: "张三", MonthSales: amount(120000)},
	)

	Derive(d, DefaultWeights())

	if d.HasField(model.ColImprovement) {
		t.Fatalf("improvement should be unavailable without 本月回款总额")
	}
	if d.Rows[0].Improvement.Valid {
		t.Fatalf("improvement value should stay undefined")
	}
}

func TestDerive_Completion(t *testing.T) {
	t.Parallel()

	d := mergedWith(
		[]string{model.ColMonthSales, model.ColSalesTarget},
		&model.EmployeeRecord{Name: "张三", MonthSales: amount(90000), SalesTarget: amount(100000)},
		&model.EmployeeRecord{Name: "李四", MonthSales: amount(50000), SalesTarget: amount(0)},
	)

	Derive(d, DefaultWeights())

	if got := d.Rows[0].SalesCompletion; !got.Valid || got.Value != 0.9 {
		t.Fatalf("sales completion: got=%+v want=0.9", got)
	}
	if d.Rows[1].SalesCompletion.Valid {
		t.Fatalf("zero target should stay undefined")
	}
	if d.HasField(model.ColPaymentCompletion) {
		t.Fatalf("payment completion should be unavailable without 回款目标列")
	}
}
