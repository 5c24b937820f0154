package parser

import (
	"fmt"

	"github.com/shu-creator/ShiftSumma/internal/analytics"
	"github.com/shu-creator/ShiftSumma/internal/config"
	"github.com/shu-creator/ShiftSumma/internal/model"
)

// PDFShiftParser 坐标驱动的勤务表提取器
// 从无序的定位文本块重建 社员×日 的入退刻表格
type PDFShiftParser struct {
	cfg     model.ShiftParseConfig
	extract config.ExtractConfig
}

// NewPDFShiftParser 创建提取器；阈值与容差在一次解析内不可变
func NewPDFShiftParser(cfg model.ShiftParseConfig, extract config.ExtractConfig) *PDFShiftParser {
	return &PDFShiftParser{cfg: cfg, extract: extract}
}

// Read 打开 PDF 并提取整份文档的勤务记录
func (p *PDFShiftParser) Read(path, targetMonth string) ([]model.ShiftRecord, error) {
	src, err := OpenPDF(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer src.Close()

	return p.ReadFrom(src, targetMonth)
}

// ReadFrom 按页提取并分类
// 页按文档顺序处理；单页/单带的失败只损失局部产出，不中断整体
func (p *PDFShiftParser) ReadFrom(src TokenSource, targetMonth string) ([]model.ShiftRecord, error) {
	rows := make([]model.ShiftRow, 0, 64)

	for i := 1; i <= src.PageCount(); i++ {
		tokens, pageHeight, err := src.Page(i)
		if err != nil {
			// 页级失败降级为空产出
			continue
		}
		rows = append(rows, p.extractPage(tokens, pageHeight, targetMonth)...)
	}

	rows = CorrectMisalignedRows(rows, p.cfg)
	return analytics.BuildShiftRecords(rows, p.cfg), nil
}

// extractPage 单页提取：日列 → 社员锚点 → 数据带 → 入退行 → 日次行
func (p *PDFShiftParser) extractPage(tokens []model.Token, pageHeight float64, targetMonth string) []model.ShiftRow {
	dayColumns := DetectDayColumns(tokens, p.extract)
	if len(dayColumns) == 0 {
		return nil
	}

	anchors := FindEmployeeAnchors(tokens, p.extract)

	rows := make([]model.ShiftRow, 0, len(anchors)*4)
	for idx, anchor := range anchors {
		bandTop := anchor.Top
		bandBottom := pageHeight
		if idx+1 < len(anchors) {
			bandBottom = anchors[idx+1].Top
		}

		band := SliceBand(tokens, bandTop, bandBottom)

		entryY, exitY, hasEntry, hasExit := ResolveLines(band)
		if !hasEntry && !hasExit {
			continue
		}

		startMap := map[int]LineValue{}
		if hasEntry {
			startMap = CollectLineValues(band, entryY, dayColumns, p.extract.LineTolerance)
		}
		endMap := map[int]LineValue{}
		if hasExit {
			endMap = CollectLineValues(band, exitY, dayColumns, p.extract.LineTolerance)
		}

		rows = append(rows, BuildShiftRows(anchor.EmployeeID, targetMonth, startMap, endMap)...)
	}

	return rows
}
