package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shu-creator/ShiftSumma/internal/analytics"
	"github.com/shu-creator/ShiftSumma/internal/model"
)

// recordView 勤务记录的 API 表现形式（日期转成字符串）
type recordView struct {
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"`
	Weekday    string     `json:"weekday"`
	WeekIndex  int        `json:"weekIndex"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	Minutes    int        `json:"minutes"`
	Slot       model.Slot `json:"slot"`
	IsHalf     bool       `json:"isHalf"`
	IsWeekday  bool       `json:"isWeekday"`
	RawStatus  string     `json:"rawStatus"`
}

// ListRecords 查询勤务记录
// GET /api/v1/records?month=YYYY-MM
func (h *Handler) ListRecords(c *gin.Context) {
	month := c.Query("month")

	records, err := h.store.ListRecords(month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]recordView, 0, len(records))
	for _, r := range records {
		items = append(items, recordView{
			EmployeeID: r.EmployeeID,
			Date:       r.Date.Format("2006-01-02"),
			Weekday:    r.Weekday,
			WeekIndex:  r.WeekIndex,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			Minutes:    r.Minutes,
			Slot:       r.Slot,
			IsHalf:     r.IsHalf,
			IsWeekday:  r.IsWeekday,
			RawStatus:  r.RawStatus,
		})
	}

	warning := analytics.FormatWarning(analytics.ComputeWarning(records))

	c.JSON(http.StatusOK, gin.H{
		"items":   items,
		"total":   len(items),
		"warning": warning,
	})
}

// GenerateSample 生成演示数据并入库
// POST /api/v1/sample  {"targetMonth": "YYYY-MM"}
func (h *Handler) GenerateSample(c *gin.Context) {
	var req struct {
		TargetMonth string `json:"targetMonth"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.TargetMonth == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请指定对象年月 (YYYY-MM)"})
		return
	}

	defFull, defHalf := h.appConfig.ShiftThresholds()
	full, half := h.store.GetThresholds(defFull, defHalf)

	records, err := analytics.SampleRecords(req.TargetMonth, model.ShiftParseConfig{
		FullThresholdMinutes: full,
		HalfMinMinutes:       half,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpsertRecords(records, "sample"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stored": len(records)})
}
