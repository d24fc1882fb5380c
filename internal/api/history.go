package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"saleboard/internal/model"
	"saleboard/internal/service/history"
)

// SnapshotSummary 历史快照摘要
type SnapshotSummary struct {
	Key          string       `json:"key"`          // 周期键
	FileName     string       `json:"fileName"`     // 来源文件名
	IngestedAt   time.Time    `json:"ingestedAt"`   // 载入时间
	TotalSales   model.Amount `json:"totalSales"`   // 总销售额
	TotalPayment model.Amount `json:"totalPayment"` // 总回款额
	Departments  int          `json:"departments"`  // 部门数
	Employees    int          `json:"employees"`    // 员工数
}

// ListSnapshots 历史快照列表（按周期排序）
// GET /api/history
func (h *Handler) ListSnapshots(c *gin.Context) {
	snaps := h.session.Snapshots()

	out := make([]SnapshotSummary, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, SnapshotSummary{
			Key:          s.Key,
			FileName:     s.FileName,
			IngestedAt:   s.IngestedAt,
			TotalSales:   s.TotalSales,
			TotalPayment: s.TotalPayment,
			Departments:  len(s.Departments),
			Employees:    len(s.Employees),
		})
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": out})
}

// GetSeries 历史时间序列
// GET /api/history/series?scope=overall|department|employee&names=甲,乙
func (h *Handler) GetSeries(c *gin.Context) {
	scope := c.DefaultQuery("scope", "overall")
	names := splitNames(c.Query("names"))

	var series []model.Series
	h.session.History(func(a *history.Assembler) {
		switch scope {
		case "overall":
			series = []model.Series{a.OverallSeries()}
		case "department":
			if len(names) == 0 {
				names = a.DepartmentNames()
			}
			series = a.DepartmentSeries(names)
		case "employee":
			if len(names) == 0 {
				names = a.EmployeeNames()
			}
			series = a.EmployeeSeries(names)
		}
	})
	if series == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "不支持的序列口径: " + scope})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scope": scope, "series": series})
}

// ExportHistoryCSV 导出历史序列 CSV 附件
// GET /api/history/export?scope=overall|department|employee&names=甲,乙
func (h *Handler) ExportHistoryCSV(c *gin.Context) {
	scope := c.DefaultQuery("scope", "overall")
	names := splitNames(c.Query("names"))

	var buf bytes.Buffer
	var err error
	known := true
	h.session.History(func(a *history.Assembler) {
		switch scope {
		case "overall":
			err = a.WriteOverallCSV(&buf)
		case "department":
			if len(names) == 0 {
				names = a.DepartmentNames()
			}
			err = history.WriteSeriesCSV(&buf, a.DepartmentSeries(names))
		case "employee":
			if len(names) == 0 {
				names = a.EmployeeNames()
			}
			err = history.WriteSeriesCSV(&buf, a.EmployeeSeries(names))
		default:
			known = false
		}
	})
	if !known {
		c.JSON(http.StatusBadRequest, gin.H{"error": "不支持的序列口径: " + scope})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("历史趋势_%s_%s.csv", scope, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// DeleteSnapshot 删除一个历史周期
// DELETE /api/history/:key
func (h *Handler) DeleteSnapshot(c *gin.Context) {
	key := c.Param("key")
	if !h.session.DeleteSnapshot(key) {
		c.JSON(http.StatusNotFound, gin.H{"error": "未找到该周期的历史数据"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": key})
}

func splitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
