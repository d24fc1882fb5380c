package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Loaded    bool   `json:"loaded"`              // 是否已载入当前周期
	FileName  string `json:"fileName,omitempty"`  // 当前文件名
	PeriodKey string `json:"periodKey,omitempty"` // 当前周期键
	Employees int    `json:"employees"`           // 当前员工数
	Teams     int    `json:"teams"`               // 当前小组数
	Snapshots int    `json:"snapshots"`           // 历史快照数
	LoadedAt  string `json:"loadedAt,omitempty"`  // 载入时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		Snapshots: h.session.SnapshotCount(),
	}

	if cp := h.session.Current(); cp != nil {
		resp.Loaded = true
		resp.FileName = cp.FileName
		resp.PeriodKey = cp.PeriodKey
		resp.Employees = len(cp.Merged.Rows)
		resp.Teams = len(cp.Teams)
		resp.LoadedAt = cp.LoadedAt.Format("2006-01-02 15:04:05")
	}

	c.JSON(http.StatusOK, resp)
}

// Reset 清空会话状态
// POST /api/reset
func (h *Handler) Reset(c *gin.Context) {
	h.session.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "会话已重置"})
}
