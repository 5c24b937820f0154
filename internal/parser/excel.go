package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shu-creator/ShiftSumma/internal/analytics"
	"github.com/shu-creator/ShiftSumma/internal/model"
)

// expectedColumns 期待的列名（小写匹配）到内部字段的映射
var expectedColumns = map[string]string{
	"employee_id": "employee_id",
	"date":        "date",
	"start_time":  "start_time",
	"end_time":    "end_time",
	"status":      "raw_status",
}

// ExcelShiftParser 表格版勤务表的读取器：列名重命名 + 类型整形，无结构推断
type ExcelShiftParser struct {
	cfg model.ShiftParseConfig
}

// NewExcelShiftParser 创建读取器
func NewExcelShiftParser(cfg model.ShiftParseConfig) *ExcelShiftParser {
	return &ExcelShiftParser{cfg: cfg}
}

// Read 读取第一个工作表并分类成勤务记录
// 未识别的列丢弃；坏行跳过；没有日期的行跳过
func (p *ExcelShiftParser) Read(r io.Reader) ([]model.ShiftRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) <= 1 {
		return []model.ShiftRecord{}, nil
	}

	// 列名小写匹配到内部字段
	colIndex := make(map[string]int)
	for i, col := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(col))
		if field, ok := expectedColumns[key]; ok {
			if _, dup := colIndex[field]; !dup {
				colIndex[field] = i
			}
		}
	}

	getValue := func(row []string, field string) string {
		if idx, ok := colIndex[field]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	shiftRows := make([]model.ShiftRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		date, ok := parseCellDate(getValue(row, "date"))
		if !ok {
			continue
		}
		shiftRows = append(shiftRows, model.ShiftRow{
			EmployeeID: getValue(row, "employee_id"),
			Date:       date,
			StartTime:  normalizeCellTime(getValue(row, "start_time")),
			EndTime:    normalizeCellTime(getValue(row, "end_time")),
			RawStatus:  getValue(row, "raw_status"),
		})
	}

	return analytics.BuildShiftRecords(shiftRows, p.cfg), nil
}

// excelEpoch 序列日期的起点（1900 日期系统）
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var cellDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-01-02 15:04:05",
	"01-02-06", // excelize 对日期单元格的默认显示格式
	"1/2/06",
}

// parseCellDate 把单元格内容整形成日期
// 接受 ISO/斜线写法、excelize 默认显示格式以及 Excel 序列数字
func parseCellDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range cellDateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	// Excel 序列日期
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		d := excelEpoch.AddDate(0, 0, int(serial))
		return d, true
	}

	return time.Time{}, false
}

// normalizeCellTime 时刻单元格整形："9:00:00" 去秒，序列小数换算成 H:MM
func normalizeCellTime(value string) string {
	if value == "" {
		return ""
	}

	parts := strings.Split(value, ":")
	if len(parts) == 3 {
		value = parts[0] + ":" + parts[1]
		parts = parts[:2]
	}
	if len(parts) == 2 {
		return value
	}

	// 一天的小数（Excel 时刻序列值）
	if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 && f < 1 {
		total := int(f*24*60 + 0.5)
		return fmt.Sprintf("%d:%02d", total/60, total%60)
	}

	return value
}
