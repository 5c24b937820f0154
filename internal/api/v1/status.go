package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized  bool   `json:"initialized"`  // 是否已有数据
	TotalRecords int    `json:"totalRecords"` // 勤务记录总数
	LatestMonth  string `json:"latestMonth"`  // 最近的数据月份
	MonthCount   int    `json:"monthCount"`   // 有数据的月份数
}

// GetStatus 获取系统状态
// GET /api/v1/status
func (h *Handler) GetStatus(c *gin.Context) {
	total, err := h.store.CountRecords("")
	if err != nil {
		c.JSON(http.StatusOK, StatusResponse{Initialized: false})
		return
	}

	months, err := h.store.ListAvailableMonths()
	if err != nil {
		months = nil
	}

	latest := ""
	if len(months) > 0 {
		latest = months[0].Month
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:  total > 0,
		TotalRecords: total,
		LatestMonth:  latest,
		MonthCount:   len(months),
	})
}
