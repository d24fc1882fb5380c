package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"saleboard/internal/model"
)

// Import 导入 Excel 数据（同步，返回导入摘要或结构化错误）
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法读取上传文件"})
		return
	}
	defer f.Close()

	report, err := h.coordinator.Ingest(f, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"kind":  errorKind(err),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// errorKind 把导入错误归类为稳定的错误码
func errorKind(err error) string {
	switch {
	case errors.Is(err, model.ErrMissingRequiredColumn):
		return "missing_required_column"
	case errors.Is(err, model.ErrEmptyValidRowSet):
		return "empty_valid_row_set"
	case errors.Is(err, model.ErrSourceReadFailure):
		return "source_read_failure"
	default:
		return "internal"
	}
}
