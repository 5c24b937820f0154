package analytics

import (
	"fmt"
	"time"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

var sampleEmployees = []string{"101", "102", "201"}

// SampleRecords 生成演示用的当月勤务数据
// 仅平日排班：偶数星期索引 09:00-18:00，奇数 13:30-17:00
func SampleRecords(targetMonth string, cfg model.ShiftParseConfig) ([]model.ShiftRecord, error) {
	first, err := time.Parse("2006-01", targetMonth)
	if err != nil {
		return nil, fmt.Errorf("invalid target month %q: %w", targetMonth, err)
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()

	rows := make([]model.ShiftRow, 0, len(sampleEmployees)*daysInMonth)
	for _, emp := range sampleEmployees {
		for day := 1; day <= daysInMonth; day++ {
			d := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
			wd := isoWeekdayIndex(d)
			if wd >= 5 {
				continue
			}
			start, end := "09:00", "18:00"
			if wd%2 == 1 {
				start, end = "13:30", "17:00"
			}
			rows = append(rows, model.ShiftRow{
				EmployeeID: emp,
				Date:       d,
				StartTime:  start,
				EndTime:    end,
			})
		}
	}

	return BuildShiftRecords(rows, cfg), nil
}
