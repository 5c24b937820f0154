package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

// ParseHHMMToMinutes 把 "H:MM"/"HH:MM" 换算成分钟数
// 解析失败返回 ok=false，调用方把缺失当作一等结果处理
func ParseHHMMToMinutes(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	return hour*60 + minute, true
}

// ShiftMinutes 由入退刻计算实动分钟数
// 两端齐全才计算；负值按跨零点班次加一天回绕
func ShiftMinutes(startTime, endTime string) int {
	startMinutes, okStart := ParseHHMMToMinutes(startTime)
	endMinutes, okEnd := ParseHHMMToMinutes(endTime)
	if !okStart || !okEnd {
		return 0
	}

	minutes := endMinutes - startMinutes
	if minutes < 0 {
		minutes += 24 * 60
	}
	return minutes
}

// isoWeekdayIndex 返回 ISO 星期索引，0=周一 .. 6=周日
func isoWeekdayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// weekStartOf 返回日期所在周的周一
func weekStartOf(d time.Time) time.Time {
	return d.AddDate(0, 0, -isoWeekdayIndex(d))
}

// ComputeWeekIndex 月曜始まり的当月周号（1〜）
// 基准是 1 号所在周的周一，因此跨月开头的第一个不完整周也记为 1
func ComputeWeekIndex(current time.Time) int {
	firstDay := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, current.Location())
	firstMonday := weekStartOf(firstDay)
	weekStart := weekStartOf(current)
	days := int(weekStart.Sub(firstMonday).Hours() / 24)
	return days/7 + 1
}

// WeekStartDate 日期所在周的周一（导出给统计层使用）
func WeekStartDate(d time.Time) time.Time {
	return weekStartOf(d)
}

// DetermineSlot 由实动分钟数判定时段分类
// 时刻比较沿用字符串比较语义，与历史输出保持一致
func DetermineSlot(minutes int, startTime, endTime string, cfg model.ShiftParseConfig) (model.Slot, bool) {
	if minutes <= 0 {
		return model.SlotNA, false
	}

	if minutes > cfg.FullThresholdMinutes {
		return model.SlotFull, false
	}

	if minutes >= cfg.HalfMinMinutes {
		// 半日候补
		if endTime != "" && endTime <= "14:30" {
			return model.SlotAMHalf, true
		}
		if startTime != "" && startTime >= "13:30" {
			return model.SlotPMHalf, true
		}
		return model.SlotPMHalf, true
	}

	// 阈值之下暂定按半日处理
	return model.SlotPMHalf, true
}

// BuildShiftRecord 把一条原始行分类成 ShiftRecord
func BuildShiftRecord(row model.ShiftRow, cfg model.ShiftParseConfig) model.ShiftRecord {
	minutes := ShiftMinutes(row.StartTime, row.EndTime)
	slot, isHalf := DetermineSlot(minutes, row.StartTime, row.EndTime, cfg)

	weekdayIndex := isoWeekdayIndex(row.Date)

	return model.ShiftRecord{
		EmployeeID: row.EmployeeID,
		Date:       row.Date,
		Weekday:    model.WeekdayLabels[weekdayIndex],
		WeekIndex:  ComputeWeekIndex(row.Date),
		StartTime:  row.StartTime,
		EndTime:    row.EndTime,
		Minutes:    minutes,
		Slot:       slot,
		IsHalf:     isHalf,
		IsWeekday:  weekdayIndex < 5,
		RawStatus:  row.RawStatus,
	}
}

// BuildShiftRecords 批量分类；无日期的行直接跳过
func BuildShiftRecords(rows []model.ShiftRow, cfg model.ShiftParseConfig) []model.ShiftRecord {
	records := make([]model.ShiftRecord, 0, len(rows))
	for _, row := range rows {
		if row.Date.IsZero() {
			continue
		}
		records = append(records, BuildShiftRecord(row, cfg))
	}
	return records
}
