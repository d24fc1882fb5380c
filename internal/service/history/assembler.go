package history

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"saleboard/internal/model"
)

var sortKeyRe = regexp.MustCompile(`^(\d{4})年(\d{1,2})月$`)

// SortKey 把周期键解析为可比较的 "YYYYMM" 数字串
// 形如 "2025年3月" 的键返回 ("202503", true)；其余键不可排序
func SortKey(key string) (string, bool) {
	m := sortKeyRe.FindStringSubmatch(key)
	if m == nil {
		return "", false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return "", false
	}
	return fmt.Sprintf("%04d%02d", year, month), true
}

// Assembler 历史快照集合
// 每个周期键至多保留一条快照，同键重新导入整体替换（保留原插入位置）
type Assembler struct {
	keys      []string // 插入顺序
	snapshots map[string]*model.PeriodSnapshot
}

// NewAssembler 创建空集合
func NewAssembler() *Assembler {
	return &Assembler{
		snapshots: make(map[string]*model.PeriodSnapshot),
	}
}

// Put 放入快照，同键替换并返回 true
func (a *Assembler) Put(s *model.PeriodSnapshot) (replaced bool) {
	if s == nil || s.Key == "" {
		return false
	}
	_, replaced = a.snapshots[s.Key]
	if !replaced {
		a.keys = append(a.keys, s.Key)
	}
	a.snapshots[s.Key] = s
	return replaced
}

// Delete 删除一个周期键，存在返回 true
func (a *Assembler) Delete(key string) bool {
	if _, ok := a.snapshots[key]; !ok {
		return false
	}
	delete(a.snapshots, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len 当前保留的快照数
func (a *Assembler) Len() int {
	return len(a.snapshots)
}

// Get 按键取快照
func (a *Assembler) Get(key string) *model.PeriodSnapshot {
	return a.snapshots[key]
}

// Snapshots 按排序键返回全部快照
// 可解析键按年月升序在前，不可解析键按插入顺序排在其后
func (a *Assembler) Snapshots() []*model.PeriodSnapshot {
	type entry struct {
		snap     *model.PeriodSnapshot
		sortKey  string
		sortable bool
		order    int
	}

	entries := make([]entry, 0, len(a.keys))
	for i, key := range a.keys {
		sk, ok := SortKey(key)
		entries = append(entries, entry{
			snap:     a.snapshots[key],
			sortKey:  sk,
			sortable: ok,
			order:    i,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].sortable != entries[j].sortable {
			return entries[i].sortable
		}
		if entries[i].sortable {
			if entries[i].sortKey != entries[j].sortKey {
				return entries[i].sortKey < entries[j].sortKey
			}
		}
		return entries[i].order < entries[j].order
	})

	out := make([]*model.PeriodSnapshot, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.snap)
	}
	return out
}
