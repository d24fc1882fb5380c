package board

import (
	"sort"

	"saleboard/internal/model"
)

// CohortTeams 红榜/黑榜各取的小组数
const CohortTeams = 2

// RankTeams 按加权总分给小组排名
// 以 (队名, 加权总分) 去重；降序排列，同分保持主表出现顺序；名次 1..N 连续。
// 队名为空的行不参与。
func RankTeams(d *model.MergedDataset) []*model.TeamSummary {
	type entry struct {
		name  string
		score float64
		order int
	}

	seen := make(map[string]map[float64]struct{})
	entries := make([]entry, 0)
	for i, rec := range d.Rows {
		if rec.Team == "" {
			continue
		}
		score := rec.WeightedTeamScore.Or(0)
		if scores, ok := seen[rec.Team]; ok {
			if _, dup := scores[score]; dup {
				continue
			}
			scores[score] = struct{}{}
		} else {
			seen[rec.Team] = map[float64]struct{}{score: {}}
		}
		entries = append(entries, entry{name: rec.Team, score: score, order: i})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].order < entries[j].order
	})

	out := make([]*model.TeamSummary, 0, len(entries))
	for i, e := range entries {
		out = append(out, &model.TeamSummary{
			Name:          e.name,
			WeightedScore: e.score,
			Rank:          i + 1,
			Members:       teamMembers(d, e.name, false),
		})
	}
	return out
}

// Partition 依据排名切出红黑榜
// 红榜 = 前 2 名小组成员（个人总积分降序），黑榜 = 后 2 名小组成员（升序）。
// 小组不足 4 个时允许重叠，如实透出。
func Partition(ranked []*model.TeamSummary, d *model.MergedDataset) *model.Cohorts {
	c := &model.Cohorts{}
	if len(ranked) == 0 {
		return c
	}

	redN := CohortTeams
	if redN > len(ranked) {
		redN = len(ranked)
	}
	for _, t := range ranked[:redN] {
		c.RedTeams = append(c.RedTeams, t.Name)
	}

	blackStart := len(ranked) - CohortTeams
	if blackStart < 0 {
		blackStart = 0
	}
	for _, t := range ranked[blackStart:] {
		c.BlackTeams = append(c.BlackTeams, t.Name)
	}

	redSet := make(map[string]struct{}, len(c.RedTeams))
	for _, name := range c.RedTeams {
		redSet[name] = struct{}{}
		c.Red = append(c.Red, teamMembers(d, name, false)...)
	}
	for _, name := range c.BlackTeams {
		if _, ok := redSet[name]; ok {
			c.Overlap = true
		}
		c.Black = append(c.Black, teamMembers(d, name, true)...)
	}

	sort.SliceStable(c.Red, func(i, j int) bool {
		return c.Red[i].TotalScore.Or(0) > c.Red[j].TotalScore.Or(0)
	})
	sort.SliceStable(c.Black, func(i, j int) bool {
		return c.Black[i].TotalScore.Or(0) < c.Black[j].TotalScore.Or(0)
	})

	return c
}

// teamMembers 某队全部成员，ascending 控制按个人总积分升/降序
func teamMembers(d *model.MergedDataset, team string, ascending bool) []*model.EmployeeRecord {
	members := make([]*model.EmployeeRecord, 0)
	for _, rec := range d.Rows {
		if rec.Team == team {
			members = append(members, rec)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		if ascending {
			return members[i].TotalScore.Or(0) < members[j].TotalScore.Or(0)
		}
		return members[i].TotalScore.Or(0) > members[j].TotalScore.Or(0)
	})
	return members
}
