package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shu-creator/ShiftSumma/internal/store"
)

type monthsResponse struct {
	Items []store.MonthStat `json:"items"`
}

// ListMonths 获取存在数据的月份列表
// GET /api/v1/months
func (h *Handler) ListMonths(c *gin.Context) {
	items, err := h.store.ListAvailableMonths()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if items == nil {
		items = []store.MonthStat{}
	}
	c.JSON(http.StatusOK, monthsResponse{Items: items})
}
