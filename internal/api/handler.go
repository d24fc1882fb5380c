package api

import (
	"github.com/gin-gonic/gin"

	"saleboard/internal/importer"
	"saleboard/internal/store"
)

// Handler API 处理器
type Handler struct {
	session     *store.Session
	coordinator *importer.Coordinator
}

// NewHandler 创建 API 处理器
func NewHandler(session *store.Session, coordinator *importer.Coordinator) *Handler {
	return &Handler{
		session:     session,
		coordinator: coordinator,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态与会话
	router.GET("/status", h.GetStatus)
	router.POST("/import", h.Import)
	router.POST("/reset", h.Reset)

	// 红黑榜与小组排名
	router.GET("/leaderboard", h.GetLeaderboard)
	router.GET("/teams", h.ListTeams)

	// 员工明细
	router.GET("/employees", h.ListEmployees)
	router.GET("/employees/:name", h.GetEmployee)

	// 销售回款
	router.GET("/sales/overview", h.GetSalesOverview)
	router.GET("/sales/weekly", h.GetWeeklyTotals)

	// 成就徽章
	router.GET("/achievements", h.GetAchievements)

	// 历史趋势
	router.GET("/history", h.ListSnapshots)
	router.GET("/history/series", h.GetSeries)
	router.GET("/history/export", h.ExportHistoryCSV)
	router.DELETE("/history/:key", h.DeleteSnapshot)
}
