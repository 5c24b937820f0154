package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/shu-creator/ShiftSumma/internal/config"
	"github.com/shu-creator/ShiftSumma/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store     *store.Store
	appConfig *config.AppConfig
	downloads *exportDownloadStore
}

// NewHandler 创建 V1 API 处理器
func NewHandler(st *store.Store, appConfig *config.AppConfig) *Handler {
	return &Handler{
		store:     st,
		appConfig: appConfig,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 可用月份
	router.GET("/months", h.ListMonths)

	// 阈值配置
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 数据导入
	router.POST("/import", h.Import)
	router.GET("/imports", h.ListImports)
	// 演示数据
	router.POST("/sample", h.GenerateSample)

	// 勤务记录查询
	router.GET("/records", h.ListRecords)

	// 统计
	router.GET("/stats/weekly-employee", h.WeeklyEmployeeStats)
	router.GET("/stats/weekly-team", h.WeeklyTeamStats)
	router.GET("/stats/weekday-slot", h.WeekdaySlotStats)
	router.GET("/stats/weekday-na", h.WeekdayNAStats)

	// 数据导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
