package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saleboard/internal/model"
)

// LeaderboardEntry 红黑榜条目
type LeaderboardEntry struct {
	Name  string  `json:"name"`
	Team  string  `json:"team"`
	Score float64 `json:"score"`
}

// LeaderboardResponse 红黑榜响应
type LeaderboardResponse struct {
	PeriodKey  string             `json:"periodKey"`
	RedTeams   []string           `json:"redTeams"`
	BlackTeams []string           `json:"blackTeams"`
	Red        []LeaderboardEntry `json:"red"`
	Black      []LeaderboardEntry `json:"black"`
	Overlap    bool               `json:"overlap"` // 小组不足 4 个，红黑榜存在重叠
}

// GetLeaderboard 获取红黑榜
// GET /api/leaderboard
func (h *Handler) GetLeaderboard(c *gin.Context) {
	cp := h.session.Current()
	if cp == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "请先上传数据文件"})
		return
	}

	c.JSON(http.StatusOK, LeaderboardResponse{
		PeriodKey:  cp.PeriodKey,
		RedTeams:   cp.Cohorts.RedTeams,
		BlackTeams: cp.Cohorts.BlackTeams,
		Red:        toEntries(cp.Cohorts.Red),
		Black:      toEntries(cp.Cohorts.Black),
		Overlap:    cp.Cohorts.Overlap,
	})
}

func toEntries(records []*model.EmployeeRecord) []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(records))
	for _, r := range records {
		out = append(out, LeaderboardEntry{
			Name:  r.Name,
			Team:  r.Team,
			Score: r.TotalScore.Or(0),
		})
	}
	return out
}

// TeamResponse 小组排名条目
type TeamResponse struct {
	Name          string   `json:"name"`
	WeightedScore float64  `json:"weightedScore"`
	Rank          int      `json:"rank"`
	Members       []string `json:"members"`
}

// ListTeams 小组加权积分排名
// GET /api/teams
func (h *Handler) ListTeams(c *gin.Context) {
	cp := h.session.Current()
	if cp == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "请先上传数据文件"})
		return
	}

	out := make([]TeamResponse, 0, len(cp.Teams))
	for _, t := range cp.Teams {
		members := make([]string, 0, len(t.Members))
		for _, m := range t.Members {
			members = append(members, m.Name)
		}
		out = append(out, TeamResponse{
			Name:          t.Name,
			WeightedScore: t.WeightedScore,
			Rank:          t.Rank,
			Members:       members,
		})
	}

	c.JSON(http.StatusOK, gin.H{"periodKey": cp.PeriodKey, "teams": out})
}
