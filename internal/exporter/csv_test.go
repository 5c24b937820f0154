package exporter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()

	if !bytes.HasPrefix(data, utf8BOM) {
		t.Fatalf("output must start with UTF-8 BOM")
	}
	rows, err := csv.NewReader(bytes.NewReader(data[len(utf8BOM):])).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return rows
}

func TestRecordsCSV(t *testing.T) {
	t.Parallel()

	records := []model.ShiftRecord{
		{
			EmployeeID: "234198",
			Date:       time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			Weekday:    "月",
			WeekIndex:  1,
			StartTime:  "14:00",
			EndTime:    "18:00",
			Minutes:    240,
			Slot:       model.SlotPMHalf,
			IsHalf:     true,
			IsWeekday:  true,
		},
		{
			EmployeeID: "234198",
			Date:       time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC),
			Weekday:    "木",
			WeekIndex:  1,
			Minutes:    0,
			Slot:       model.SlotNA,
			IsWeekday:  true,
			RawStatus:  "休",
		},
	}

	data, err := RecordsCSV(records)
	if err != nil {
		t.Fatalf("records csv: %v", err)
	}
	rows := parseCSV(t, data)
	if len(rows) != 3 {
		t.Fatalf("want header + 2 rows got %d", len(rows))
	}

	wantHeader := "employee_id,date,weekday,week_index,start_time,end_time,minutes,slot,is_half,is_weekday,raw_status"
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Fatalf("header want=%q got=%q", wantHeader, got)
	}
	if got := strings.Join(rows[1], ","); got != "234198,2025-12-01,月,1,14:00,18:00,240,PM半日,true,true," {
		t.Fatalf("row1 unexpected: %q", got)
	}
	if got := strings.Join(rows[2], ","); got != "234198,2025-12-04,木,1,,,0,NA,false,true,休" {
		t.Fatalf("row2 unexpected: %q", got)
	}
}

func TestWeeklyEmployeeCSV(t *testing.T) {
	t.Parallel()

	data, err := WeeklyEmployeeCSV([]model.WeeklyEmployeeStats{
		{
			EmployeeID:    "101",
			WeekIndex:     1,
			WeekStartDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			WeekMinutes:   780,
			WeekHours:     13,
			WeekWorkdays:  2,
			WeekHalfDays:  1,
			WeekHalfRatio: 0.5,
		},
	})
	if err != nil {
		t.Fatalf("weekly employee csv: %v", err)
	}
	rows := parseCSV(t, data)
	if got := strings.Join(rows[1], ","); got != "101,1,2025-12-01,780,13,2,1,0.5" {
		t.Fatalf("row unexpected: %q", got)
	}
}

func TestWeeklyTeamCSV(t *testing.T) {
	t.Parallel()

	data, err := WeeklyTeamCSV([]model.WeeklyTeamStats{
		{
			WeekIndex:           1,
			WeekStartDate:       time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			TotalMinutes:        1560,
			TotalHours:          26,
			EmployeeCount:       3,
			AvgHoursPerEmployee: 26.0 / 3.0,
		},
	})
	if err != nil {
		t.Fatalf("weekly team csv: %v", err)
	}
	rows := parseCSV(t, data)
	if rows[1][0] != "1" || rows[1][2] != "1560" || rows[1][4] != "3" {
		t.Fatalf("row unexpected: %v", rows[1])
	}
}

func TestWeekdaySlotCSV(t *testing.T) {
	t.Parallel()

	data, err := WeekdaySlotCSV([]model.WeekdaySlotStats{
		{Weekday: "月", Slot: model.SlotFull, Count: 2, RatioInDay: 1},
	})
	if err != nil {
		t.Fatalf("weekday slot csv: %v", err)
	}
	rows := parseCSV(t, data)
	if got := strings.Join(rows[1], ","); got != "月,Full,2,1" {
		t.Fatalf("row unexpected: %q", got)
	}
}

func TestWeekdayNACSV_Empty(t *testing.T) {
	t.Parallel()

	data, err := WeekdayNACSV(nil)
	if err != nil {
		t.Fatalf("weekday na csv: %v", err)
	}
	rows := parseCSV(t, data)
	if len(rows) != 1 {
		t.Fatalf("empty input should still emit the header, got %d rows", len(rows))
	}
	if got := strings.Join(rows[0], ","); got != "weekday,count" {
		t.Fatalf("header unexpected: %q", got)
	}
}
