package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

// utf8BOM 输出带 BOM，方便 Excel 直接打开
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const csvDateLayout = "2006-01-02"

// TableName 可导出的表名
type TableName string

const (
	TableRecords        TableName = "records"
	TableWeeklyEmployee TableName = "weekly_employee"
	TableWeeklyTeam     TableName = "weekly_team"
	TableWeekdaySlot    TableName = "weekday_slot"
	TableWeekdayNA      TableName = "weekday_na"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// RecordsCSV 勤务记录表
func RecordsCSV(records []model.ShiftRecord) ([]byte, error) {
	header := []string{
		"employee_id", "date", "weekday", "week_index",
		"start_time", "end_time", "minutes", "slot",
		"is_half", "is_weekday", "raw_status",
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.EmployeeID,
			r.Date.Format(csvDateLayout),
			r.Weekday,
			strconv.Itoa(r.WeekIndex),
			r.StartTime,
			r.EndTime,
			strconv.Itoa(r.Minutes),
			string(r.Slot),
			formatBool(r.IsHalf),
			formatBool(r.IsWeekday),
			r.RawStatus,
		})
	}
	return writeCSV(header, rows)
}

// WeeklyEmployeeCSV 社员×周统计表
func WeeklyEmployeeCSV(stats []model.WeeklyEmployeeStats) ([]byte, error) {
	header := []string{
		"employee_id", "week_index", "week_start_date",
		"week_minutes", "week_hours", "week_workdays",
		"week_half_days", "week_half_ratio",
	}

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.EmployeeID,
			strconv.Itoa(s.WeekIndex),
			s.WeekStartDate.Format(csvDateLayout),
			strconv.Itoa(s.WeekMinutes),
			formatFloat(s.WeekHours),
			strconv.Itoa(s.WeekWorkdays),
			strconv.Itoa(s.WeekHalfDays),
			formatFloat(s.WeekHalfRatio),
		})
	}
	return writeCSV(header, rows)
}

// WeeklyTeamCSV 周次团队合计表
func WeeklyTeamCSV(stats []model.WeeklyTeamStats) ([]byte, error) {
	header := []string{
		"week_index", "week_start_date", "total_minutes",
		"total_hours", "employee_count", "avg_hours_per_employee",
	}

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			strconv.Itoa(s.WeekIndex),
			s.WeekStartDate.Format(csvDateLayout),
			strconv.Itoa(s.TotalMinutes),
			formatFloat(s.TotalHours),
			strconv.Itoa(s.EmployeeCount),
			formatFloat(s.AvgHoursPerEmployee),
		})
	}
	return writeCSV(header, rows)
}

// WeekdaySlotCSV 星期×时段统计表
func WeekdaySlotCSV(stats []model.WeekdaySlotStats) ([]byte, error) {
	header := []string{"weekday", "slot", "count", "ratio_in_day"}

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Weekday,
			string(s.Slot),
			strconv.Itoa(s.Count),
			formatFloat(s.RatioInDay),
		})
	}
	return writeCSV(header, rows)
}

// WeekdayNACSV 平日 NA 件数表
func WeekdayNACSV(counts []model.WeekdayNACount) ([]byte, error) {
	header := []string{"weekday", "count"}

	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Weekday, strconv.Itoa(c.Count)})
	}
	return writeCSV(header, rows)
}
