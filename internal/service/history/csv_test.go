package history

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"saleboard/internal/model"
)

func TestWriteOverallCSV(t *testing.T) {
	t.Parallel()

	a := NewAssembler()
	s := snap("2025年1月", 100.5, 80)
	s.TotalOverdueUnrecovered = model.NewAmount(3000)
	a.Put(s)
	a.Put(snap("2025年2月", 200, 160))

	var buf bytes.Buffer
	if err := a.WriteOverallCSV(&buf); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv back: %v", err)
	}
	if !reflect.DeepEqual(records[0], []string{"统计月份", "总销售额", "总回款额", "超期欠款（未追回）"}) {
		t.Fatalf("header: %v", records[0])
	}
	if !reflect.DeepEqual(records[1], []string{"2025年1月", "100.5", "80", "3000"}) {
		t.Fatalf("row 1: %v", records[1])
	}
	// 缺失口径导出为空单元格
	if !reflect.DeepEqual(records[2], []string{"2025年2月", "200", "160", ""}) {
		t.Fatalf("row 2: %v", records[2])
	}
}

func TestWriteSeriesCSV(t *testing.T) {
	t.Parallel()

	series := []model.Series{
		{
			Entity: "一部",
			Points: []model.SeriesPoint{
				{Key: "2025年1月", Sales: model.NewAmount(60), Payment: model.NewAmount(50)},
				{Key: "2025年2月", Sales: model.NewAmount(90), Payment: model.NewAmount(70)},
			},
		},
		{
			Entity: "二部",
			Points: []model.SeriesPoint{
				{Key: "2025年2月", Sales: model.NewAmount(110), Payment: model.NewAmount(95)},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteSeriesCSV(&buf, series); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv back: %v", err)
	}
	if !reflect.DeepEqual(records[0], []string{"统计月份", "一部销售额", "一部回款额", "二部销售额", "二部回款额"}) {
		t.Fatalf("header: %v", records[0])
	}
	if !reflect.DeepEqual(records[1], []string{"2025年1月", "60", "50", "", ""}) {
		t.Fatalf("row 1: %v", records[1])
	}
	if !reflect.DeepEqual(records[2], []string{"2025年2月", "90", "70", "110", "95"}) {
		t.Fatalf("row 2: %v", records[2])
	}
}
