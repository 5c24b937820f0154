package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfigResponse 阈值配置响应
type ConfigResponse struct {
	FullThresholdMinutes int `json:"fullThresholdMinutes"`
	HalfMinMinutes       int `json:"halfMinMinutes"`
}

// GetConfig 获取当前阈值
// GET /api/v1/config
func (h *Handler) GetConfig(c *gin.Context) {
	defFull, defHalf := h.appConfig.ShiftThresholds()
	full, half := h.store.GetThresholds(defFull, defHalf)

	c.JSON(http.StatusOK, ConfigResponse{
		FullThresholdMinutes: full,
		HalfMinMinutes:       half,
	})
}

type updateConfigRequest struct {
	FullThresholdMinutes *int `json:"fullThresholdMinutes"`
	HalfMinMinutes       *int `json:"halfMinMinutes"`
}

// UpdateConfig 更新阈值
// PATCH /api/v1/config
// half ≤ full 的约束不在此强制，分类按既定分支顺序工作
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req updateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	defFull, defHalf := h.appConfig.ShiftThresholds()
	full, half := h.store.GetThresholds(defFull, defHalf)

	if req.FullThresholdMinutes != nil {
		if *req.FullThresholdMinutes <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "阈值必须为正数"})
			return
		}
		full = *req.FullThresholdMinutes
	}
	if req.HalfMinMinutes != nil {
		if *req.HalfMinMinutes <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "阈值必须为正数"})
			return
		}
		half = *req.HalfMinMinutes
	}

	if err := h.store.SetThresholds(full, half); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ConfigResponse{
		FullThresholdMinutes: full,
		HalfMinMinutes:       half,
	})
}
