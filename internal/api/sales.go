package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saleboard/internal/service/board"
)

// GetSalesOverview 当期销售回款概览
// GET /api/sales/overview
func (h *Handler) GetSalesOverview(c *gin.Context) {
	cp := h.session.Current()
	if cp == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "请先上传数据文件"})
		return
	}

	c.JSON(http.StatusOK, board.SalesOverview(cp.Merged))
}

// GetWeeklyTotals 各周销售回款合计
// GET /api/sales/weekly
func (h *Handler) GetWeeklyTotals(c *gin.Context) {
	cp := h.session.Current()
	if cp == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "请先上传数据文件"})
		return
	}

	weeks := board.WeeklyTotals(cp.Merged)
	if len(weeks) == 0 {
		c.JSON(http.StatusOK, gin.H{"weeks": weeks, "message": "当前数据中没有周数据信息"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}
