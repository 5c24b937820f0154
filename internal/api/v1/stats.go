package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shu-creator/ShiftSumma/internal/analytics"
	"github.com/shu-creator/ShiftSumma/internal/model"
)

// loadRecords 读取统计对象记录；month 为空时取全部
func (h *Handler) loadRecords(c *gin.Context) ([]model.ShiftRecord, bool) {
	records, err := h.store.ListRecords(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return records, true
}

// WeeklyEmployeeStats 社员×周统计
// GET /api/v1/stats/weekly-employee?month=YYYY-MM
func (h *Handler) WeeklyEmployeeStats(c *gin.Context) {
	records, ok := h.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": analytics.WeeklyEmployee(records)})
}

// WeeklyTeamStats 周次团队合计
// GET /api/v1/stats/weekly-team?month=YYYY-MM
func (h *Handler) WeeklyTeamStats(c *gin.Context) {
	records, ok := h.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": analytics.WeeklyTeam(records)})
}

// WeekdaySlotStats 星期×时段统计
// GET /api/v1/stats/weekday-slot?month=YYYY-MM&working=true
// working=true 时只看勤务あり，且 5×3 全量 0 填充
func (h *Handler) WeekdaySlotStats(c *gin.Context) {
	records, ok := h.loadRecords(c)
	if !ok {
		return
	}

	var items []model.WeekdaySlotStats
	if c.Query("working") == "true" {
		items = analytics.WeekdaySlotWorking(records)
	} else {
		items = analytics.WeekdaySlot(records)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// WeekdayNAStats 平日 NA 件数
// GET /api/v1/stats/weekday-na?month=YYYY-MM
func (h *Handler) WeekdayNAStats(c *gin.Context) {
	records, ok := h.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": analytics.WeekdayNACounts(records)})
}
