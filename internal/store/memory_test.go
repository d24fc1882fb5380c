package store

import (
	"testing"

	"saleboard/internal/model"
	"saleboard/internal/service/history"
)

func TestSession_ReplaceAndReset(t *testing.T) {
	t.Parallel()

	s := NewSession()
	if s.Loaded() {
		t.Fatalf("fresh session should not be loaded")
	}

	cp := &CurrentPeriod{FileID: "f1", PeriodKey: "2025年3月"}
	if replaced := s.Replace(cp, &model.PeriodSnapshot{Key: "2025年3月"}); replaced {
		t.Fatalf("first replace should not report replacement")
	}
	if !s.Loaded() || s.Current().FileID != "f1" {
		t.Fatalf("current not installed: %+v", s.Current())
	}
	if got := s.SnapshotCount(); got != 1 {
		t.Fatalf("snapshot count: got=%d want=1", got)
	}

	// 同周期键重新导入：当前状态与快照都整体替换
	cp2 := &CurrentPeriod{FileID: "f2", PeriodKey: "2025年3月"}
	if replaced := s.Replace(cp2, &model.PeriodSnapshot{Key: "2025年3月"}); !replaced {
		t.Fatalf("same-key replace should report replacement")
	}
	if got := s.SnapshotCount(); got != 1 {
		t.Fatalf("snapshot count after replace: got=%d want=1", got)
	}
	if s.Current().FileID != "f2" {
		t.Fatalf("current not replaced: %+v", s.Current())
	}

	s.Reset()
	if s.Loaded() || s.SnapshotCount() != 0 {
		t.Fatalf("reset should clear session")
	}
}

func TestSession_DeleteSnapshot(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.Replace(&CurrentPeriod{PeriodKey: "2025年3月"}, &model.PeriodSnapshot{Key: "2025年3月"})

	if !s.DeleteSnapshot("2025年3月") {
		t.Fatalf("delete existing key should report true")
	}
	if s.DeleteSnapshot("2025年3月") {
		t.Fatalf("delete absent key should report false")
	}
	// 删除历史不影响当前周期
	if !s.Loaded() {
		t.Fatalf("current period should survive snapshot deletion")
	}
}

func TestSession_HistoryReadAccess(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.Replace(&CurrentPeriod{PeriodKey: "2025年3月"}, &model.PeriodSnapshot{
		Key:        "2025年3月",
		TotalSales: model.NewAmount(100),
	})

	var points int
	s.History(func(a *history.Assembler) {
		points = len(a.OverallSeries().Points)
	})
	if points != 1 {
		t.Fatalf("series points: got=%d want=1", points)
	}
}
