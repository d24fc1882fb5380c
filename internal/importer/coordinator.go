package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"saleboard/internal/model"
	"saleboard/internal/service/board"
	"saleboard/internal/service/excel"
	"saleboard/internal/service/history"
	"saleboard/internal/store"
)

// Coordinator 导入协调器
// 串起 对账 → 合并 → 衍生指标 → 排名 → 成就 → 快照 的完整链路，
// 任何致命错误都在写入会话之前返回，已有状态不受影响
type Coordinator struct {
	session    *store.Session
	reconciler *excel.Reconciler
	weights    board.Weights
}

// NewCoordinator 创建导入协调器
func NewCoordinator(session *store.Session, weights board.Weights) *Coordinator {
	return &Coordinator{
		session:    session,
		reconciler: excel.NewReconciler(),
		weights:    weights,
	}
}

// IngestReport 一次导入的结果摘要
type IngestReport struct {
	FileID          string   `json:"fileId"`
	FileName        string   `json:"fileName"`
	PeriodKey       string   `json:"periodKey"`
	PeriodKeySource string   `json:"periodKeySource"`
	Rows            int      `json:"rows"`
	Teams           int      `json:"teams"`
	Achievements    int      `json:"achievements"`
	MissingSheets   []string `json:"missingSheets,omitempty"`
	DuplicateNames  []string `json:"duplicateNames,omitempty"`
	Replaced        bool     `json:"replaced"` // 同周期键的旧快照被替换
}

// Ingest 导入一份工作簿并替换当前周期
func (c *Coordinator) Ingest(r io.Reader, filename string) (*IngestReport, error) {
	wb, err := excel.Open(r)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	data, err := c.reconciler.Reconcile(wb)
	if err != nil {
		return nil, err
	}

	merged := board.Merge(data.Primary, data.Secondaries)
	board.Derive(merged, c.weights)

	teams := board.RankTeams(merged)
	cohorts := board.Partition(teams, merged)
	achievements := board.Evaluate(merged)
	tally := board.TallyByTeam(merged, achievements)

	key, source := excel.ExtractPeriodKey(filename, data)
	fileID := uuid.New().String()
	snap := history.BuildSnapshot(key, fileID, filename, merged, data.Secondary(model.SheetRoleDepartment))

	cp := &store.CurrentPeriod{
		FileID:       fileID,
		FileName:     filename,
		PeriodKey:    key,
		LoadedAt:     time.Now(),
		Merged:       merged,
		Teams:        teams,
		Cohorts:      cohorts,
		Achievements: achievements,
		Tally:        tally,
	}
	replaced := c.session.Replace(cp, snap)

	return &IngestReport{
		FileID:          fileID,
		FileName:        filename,
		PeriodKey:       key,
		PeriodKeySource: string(source),
		Rows:            len(merged.Rows),
		Teams:           len(teams),
		Achievements:    len(achievements),
		MissingSheets:   missingSheets(data),
		DuplicateNames:  merged.DuplicateNames,
		Replaced:        replaced,
	}, nil
}

// IngestFile 从磁盘导入（启动自动检测链路使用）
func (c *Coordinator) IngestFile(path string) (*IngestReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSourceReadFailure, err)
	}
	defer f.Close()

	return c.Ingest(f, filepath.Base(path))
}

func missingSheets(data *model.WorkbookData) []string {
	roles := []model.SheetRole{
		model.SheetRoleSales,
		model.SheetRoleDepartment,
		model.SheetRoleRanking,
	}
	out := make([]string, 0)
	for _, role := range roles {
		if data.Secondary(role) == nil {
			out = append(out, string(role))
		}
	}
	return out
}
