package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saleboard/internal/model"
)

// AchievementsResponse 成就徽章响应
type AchievementsResponse struct {
	PeriodKey    string                       `json:"periodKey"`    // 统计月份
	Achievements []model.Achievement          `json:"achievements"` // 成就徽章列表
	Tally        []model.TeamAchievementCount `json:"tally"`        // 各队获得数统计
	Message      string                       `json:"message,omitempty"`
}

// GetAchievements 当期成就徽章及各队统计
// GET /api/achievements
func (h *Handler) GetAchievements(c *gin.Context) {
	cp := h.session.Current()
	if cp == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "请先上传数据文件"})
		return
	}

	resp := AchievementsResponse{
		PeriodKey:    cp.PeriodKey,
		Achievements: cp.Achievements,
		Tally:        cp.Tally,
	}
	if len(cp.Achievements) == 0 {
		resp.Message = "没有可用的数据来评定成就徽章"
	}

	c.JSON(http.StatusOK, resp)
}
