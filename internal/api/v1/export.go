package v1

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shu-creator/ShiftSumma/internal/analytics"
	"github.com/shu-creator/ShiftSumma/internal/config"
	"github.com/shu-creator/ShiftSumma/internal/exporter"
)

type exportRequest struct {
	Table   string `json:"table"` // records/weekly_employee/weekly_team/weekday_slot/weekday_na
	Month   string `json:"month"` // YYYY-MM，空为全部
	Working bool   `json:"working"`
}

// Export 生成 CSV 并返回下载地址
// POST /api/v1/export
func (h *Handler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	records, err := h.store.ListRecords(req.Month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var data []byte
	switch exporter.TableName(req.Table) {
	case exporter.TableRecords:
		data, err = exporter.RecordsCSV(records)
	case exporter.TableWeeklyEmployee:
		data, err = exporter.WeeklyEmployeeCSV(analytics.WeeklyEmployee(records))
	case exporter.TableWeeklyTeam:
		data, err = exporter.WeeklyTeamCSV(analytics.WeeklyTeam(records))
	case exporter.TableWeekdaySlot:
		if req.Working {
			data, err = exporter.WeekdaySlotCSV(analytics.WeekdaySlotWorking(records))
		} else {
			data, err = exporter.WeekdaySlotCSV(analytics.WeekdaySlot(records))
		}
	case exporter.TableWeekdayNA:
		data, err = exporter.WeekdayNACSV(analytics.WeekdayNACounts(records))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知的导出表: " + req.Table})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", req.Table, time.Now().Format("20060102_150405"))
	filePath := config.GetDataPath(h.appConfig, "exports", filename)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入导出文件失败"})
		return
	}

	token := h.downloads.put(exportDownload{
		filePath: filePath,
		filename: filename,
		table:    req.Table,
		month:    req.Month,
	}, 10*time.Minute)

	c.JSON(http.StatusOK, gin.H{
		"downloadUrl": "/api/v1/export/download/" + token,
		"filename":    filename,
		"rows":        len(records),
	})
}

// DownloadExport 下载导出的 CSV
// GET /api/v1/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载已过期或不存在"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.File(item.filePath)
}
