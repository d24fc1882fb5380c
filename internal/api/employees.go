package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saleboard/internal/model"
)

// ListEmployees 员工姓名列表（主表顺序，重复名单一并透出）
// GET /api/employees
func (h *Handler) ListEmployees(c *gin.Context) {
	cp := h.session.Current()
	if cp == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "请先上传数据文件"})
		return
	}

	names := make([]string, 0, len(cp.Merged.Rows))
	seen := make(map[string]struct{}, len(cp.Merged.Rows))
	for _, r := range cp.Merged.Rows {
		if r.Name == "" {
			continue
		}
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"names":          names,
		"duplicateNames": cp.Merged.DuplicateNames,
	})
}

// ScoreComponent 积分构成条目
type ScoreComponent struct {
	Name  string       `json:"name"`
	Score model.Amount `json:"score"`
}

// EmployeeDetailResponse 员工明细响应
type EmployeeDetailResponse struct {
	Record     *model.EmployeeRecord `json:"record"`
	Components []ScoreComponent      `json:"components"`
}

// GetEmployee 单个员工的积分构成与销售回款明细
// GET /api/employees/:name
func (h *Handler) GetEmployee(c *gin.Context) {
	cp := h.session.Current()
	if cp == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "请先上传数据文件"})
		return
	}

	rec := cp.Merged.Find(c.Param("name"))
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "未找到该员工数据"})
		return
	}

	components := []ScoreComponent{
		{Name: model.ColSalesTargetScore, Score: rec.SalesTargetScore},
		{Name: model.ColPaymentTargetScore, Score: rec.PaymentTargetScore},
		{Name: model.ColOverdueRecoveryScore, Score: rec.OverdueRecoveryScore},
		{Name: model.ColSalesRankScore, Score: rec.SalesRankScore},
		{Name: model.ColPaymentRankScore, Score: rec.PaymentRankScore},
		{Name: model.ColSalesProgressScore, Score: rec.SalesProgressScore},
		{Name: model.ColPaymentProgressScore, Score: rec.PaymentProgressScore},
		{Name: model.ColBaseScore, Score: rec.BaseScore},
		{Name: model.ColTeamBonusScore, Score: rec.TeamBonusScore},
	}

	c.JSON(http.StatusOK, EmployeeDetailResponse{
		Record:     rec,
		Components: components,
	})
}
