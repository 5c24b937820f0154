package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shu-creator/ShiftSumma/internal/importer"
	"github.com/shu-creator/ShiftSumma/internal/model"
)

// Import 导入勤务表 (SSE 流式响应)
// POST /api/v1/import
// 表单字段: file, targetMonth (PDF 必需), excludeIds (逗号分隔), clearMonth
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	uploadedFile := files[0]

	// 保存到临时目录
	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fmt.Sprintf("shiftsumma_import_%d_%s", time.Now().Unix(), uploadedFile.Filename))

	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}

	// 清理临时文件
	defer os.Remove(tempFilePath)

	targetMonth := c.PostForm("targetMonth")
	clearMonth := c.DefaultPostForm("clearMonth", "true") == "true"

	excludeIDs := []string{}
	for _, id := range strings.Split(c.PostForm("excludeIds"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			excludeIDs = append(excludeIDs, id)
		}
	}

	defFull, defHalf := h.appConfig.ShiftThresholds()
	full, half := h.store.GetThresholds(defFull, defHalf)

	// 设置 SSE 响应头
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	coordinator := importer.NewCoordinator(h.store, h.appConfig.Extract)

	progressChan := coordinator.Import(importer.ImportOptions{
		FilePath:    tempFilePath,
		Filename:    uploadedFile.Filename,
		TargetMonth: targetMonth,
		Config: model.ShiftParseConfig{
			FullThresholdMinutes: full,
			HalfMinMinutes:       half,
		},
		ExcludeIDs: excludeIDs,
		ClearMonth: clearMonth,
	})

	// 流式发送进度事件
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	for event := range progressChan {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}

		// SSE 格式: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}

// ListImports 最近的导入日志
// GET /api/v1/imports
func (h *Handler) ListImports(c *gin.Context) {
	logs, err := h.store.ListImportLogs(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": logs})
}
