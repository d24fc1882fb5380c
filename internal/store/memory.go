package store

import (
	"sync"
	"time"

	"saleboard/internal/model"
	"saleboard/internal/service/history"
)

// CurrentPeriod 当前载入周期的全部计算结果
// 每次成功导入整体替换，导入失败不触碰
type CurrentPeriod struct {
	FileID    string
	FileName  string
	PeriodKey string
	LoadedAt  time.Time

	Merged       *model.MergedDataset
	Teams        []*model.TeamSummary
	Cohorts      *model.Cohorts
	Achievements []model.Achievement
	Tally        []model.TeamAchievementCount
}

// Session 一次交互会话的内存状态：当前周期 + 历史快照集合
// 只有载入新文件 / 删除快照 / 重置这三类动作会写状态
type Session struct {
	mu      sync.RWMutex
	current *CurrentPeriod
	history *history.Assembler
}

// NewSession 创建空会话
func NewSession() *Session {
	return &Session{
		history: history.NewAssembler(),
	}
}

// Loaded 是否已载入当前周期数据
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Current 当前周期（未载入返回 nil）
func (s *Session) Current() *CurrentPeriod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace 用新周期结果整体替换当前状态并登记快照
// 返回快照是否替换了同键旧条目
func (s *Session) Replace(cp *CurrentPeriod, snap *model.PeriodSnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = cp
	return s.history.Put(snap)
}

// Reset 清空会话（当前周期与全部历史快照）
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.history = history.NewAssembler()
}

// Snapshots 历史快照（排序后）
func (s *Session) Snapshots() []*model.PeriodSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Snapshots()
}

// SnapshotCount 历史快照数量
func (s *Session) SnapshotCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Len()
}

// DeleteSnapshot 删除一个周期键
func (s *Session) DeleteSnapshot(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Delete(key)
}

// History 在读锁内对历史集合执行只读操作
func (s *Session) History(fn func(a *history.Assembler)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.history)
}
