package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

// DaysInMonth 目标月 "YYYY-MM" 的天数；解析失败按 31 天兜底
func DaysInMonth(targetMonth string) int {
	parts := strings.SplitN(targetMonth, "-", 2)
	if len(parts) != 2 {
		return 31
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		return 31
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// BuildShiftRows 把入/退两行的取值合并成日次原始行
// 状态取入行，缺失时回退到退行；三个字段全空的日子跳过
// 日期构造失败只丢该行，不影响整页
func BuildShiftRows(employeeID, targetMonth string, startMap, endMap map[int]LineValue) []model.ShiftRow {
	maxDays := DaysInMonth(targetMonth)

	rows := make([]model.ShiftRow, 0, maxDays)
	for day := 1; day <= maxDays; day++ {
		startInfo := startMap[day]
		endInfo := endMap[day]

		startTime := startInfo.Time
		endTime := endInfo.Time
		rawStatus := startInfo.Status
		if rawStatus == "" {
			rawStatus = endInfo.Status
		}

		if startTime == "" && endTime == "" && rawStatus == "" {
			continue
		}

		workDate, err := time.Parse("2006-01-02", fmt.Sprintf("%s-%02d", targetMonth, day))
		if err != nil {
			continue
		}

		rows = append(rows, model.ShiftRow{
			EmployeeID: employeeID,
			Date:       workDate,
			StartTime:  startTime,
			EndTime:    endTime,
			RawStatus:  rawStatus,
		})
	}
	return rows
}
