package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shu-creator/ShiftSumma/internal/analytics"
	"github.com/shu-creator/ShiftSumma/internal/config"
	"github.com/shu-creator/ShiftSumma/internal/model"
	"github.com/shu-creator/ShiftSumma/internal/parser"
	"github.com/shu-creator/ShiftSumma/internal/store"
)

// Coordinator 导入协调器：按扩展名分派解析、过滤、入库
type Coordinator struct {
	store   *store.Store
	extract config.ExtractConfig
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.Store, extract config.ExtractConfig) *Coordinator {
	return &Coordinator{store: st, extract: extract}
}

// ImportOptions 导入选项
type ImportOptions struct {
	FilePath    string
	Filename    string
	TargetMonth string                 // PDF 必需，"YYYY-MM"
	Config      model.ShiftParseConfig // 分类阈值
	ExcludeIDs  []string               // 排除的社员ID
	ClearMonth  bool                   // 入库前是否清空目标月
}

// Import 执行导入，返回进度通道
func (c *Coordinator) Import(opts ImportOptions) <-chan model.ProgressEvent {
	progressChan := make(chan model.ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

func (c *Coordinator) sendProgress(ch chan model.ProgressEvent, event model.ProgressEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case ch <- event:
	default:
		// 通道已满时丢弃进度事件，不阻塞导入
	}
}

// doImport 执行导入逻辑
func (c *Coordinator) doImport(opts ImportOptions, progressChan chan model.ProgressEvent) {
	startTime := time.Now()

	c.sendProgress(progressChan, model.ProgressEvent{
		Type:    "start",
		Message: "开始导入勤务表",
		Data: map[string]string{
			"filename":    opts.Filename,
			"targetMonth": opts.TargetMonth,
		},
	})

	records, advisory, err := c.parseFile(opts)
	if err != nil {
		c.sendProgress(progressChan, model.ProgressEvent{
			Type:    "error",
			Message: fmt.Sprintf("解析文件失败: %v", err),
		})
		return
	}
	if advisory != "" {
		// 不支持的扩展名：给出提示并以空结果结束，不算错误
		c.sendProgress(progressChan, model.ProgressEvent{
			Type:    "warning",
			Message: advisory,
		})
	}

	c.sendProgress(progressChan, model.ProgressEvent{
		Type:    "parsed",
		Message: fmt.Sprintf("解析得到 %d 条勤务记录", len(records)),
		Data:    map[string]int{"records": len(records)},
	})

	total := len(records)
	records = applyExclusions(records, opts.ExcludeIDs)
	excluded := total - len(records)
	if excluded > 0 {
		c.sendProgress(progressChan, model.ProgressEvent{
			Type:    "info",
			Message: fmt.Sprintf("按社员ID排除 %d 条记录", excluded),
		})
	}

	warning := analytics.FormatWarning(analytics.ComputeWarning(records))
	c.sendProgress(progressChan, model.ProgressEvent{
		Type:    "warning",
		Message: warning,
	})

	if opts.ClearMonth && opts.TargetMonth != "" {
		if err := c.store.ClearMonth(opts.TargetMonth); err != nil {
			c.sendProgress(progressChan, model.ProgressEvent{
				Type:    "error",
				Message: fmt.Sprintf("清空目标月失败: %v", err),
			})
			return
		}
	}

	if err := c.store.UpsertRecords(records, opts.Filename); err != nil {
		c.sendProgress(progressChan, model.ProgressEvent{
			Type:    "error",
			Message: fmt.Sprintf("写入数据库失败: %v", err),
		})
		return
	}

	report := model.ImportReport{
		Filename:     opts.Filename,
		TargetMonth:  opts.TargetMonth,
		TotalRecords: total,
		Excluded:     excluded,
		Stored:       len(records),
		Warning:      warning,
		Duration:     time.Since(startTime),
	}
	if err := c.store.AppendImportLog(uuid.New().String(), report); err != nil {
		// 日志失败不影响导入结果
		c.sendProgress(progressChan, model.ProgressEvent{
			Type:    "info",
			Message: fmt.Sprintf("导入日志写入失败: %v", err),
		})
	}

	c.sendProgress(progressChan, model.ProgressEvent{
		Type:    "done",
		Message: "导入完成",
		Data:    report,
	})
}

// parseFile 按扩展名分派解析
// 返回的 advisory 非空表示不支持的格式提示（空结果，不是错误）
func (c *Coordinator) parseFile(opts ImportOptions) (records []model.ShiftRecord, advisory string, err error) {
	ext := strings.ToLower(filepath.Ext(opts.Filename))
	switch ext {
	case ".pdf":
		if opts.TargetMonth == "" {
			return nil, "", fmt.Errorf("pdf import requires target month")
		}
		p := parser.NewPDFShiftParser(opts.Config, c.extract)
		records, err = p.Read(opts.FilePath, opts.TargetMonth)
		return records, "", err
	case ".xlsx", ".xls":
		f, openErr := os.Open(opts.FilePath)
		if openErr != nil {
			return nil, "", fmt.Errorf("open upload: %w", openErr)
		}
		defer f.Close()

		p := parser.NewExcelShiftParser(opts.Config)
		records, err = p.Read(f)
		return records, "", err
	default:
		return []model.ShiftRecord{}, "请上传 PDF 或 Excel 格式的勤务表", nil
	}
}

// applyExclusions 删除指定社员ID的记录
func applyExclusions(records []model.ShiftRecord, excludeIDs []string) []model.ShiftRecord {
	if len(excludeIDs) == 0 {
		return records
	}

	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			excluded[id] = struct{}{}
		}
	}

	out := make([]model.ShiftRecord, 0, len(records))
	for _, r := range records {
		if _, skip := excluded[r.EmployeeID]; skip {
			continue
		}
		out = append(out, r)
	}
	return out
}
