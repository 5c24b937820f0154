package parser

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestExcelShiftParser_Read(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{
		{"Employee_ID", "Date", "Start_Time", "End_Time", "Status"},
		{"234198", "2025-12-01", "14:00", "18:00", ""},
		{"234198", "2025-12-03", "9:00:00", "16:30:00", ""}, // 带秒的时刻
		{"234198", "2025-12-04", "", "", "休"},
		{"243458", "2025/12/01", "10:00", "14:00", ""}, // 斜线日期
		{"999999", "not a date", "9:00", "18:00", ""},  // 坏行跳过
	})

	p := NewExcelShiftParser(model.DefaultShiftParseConfig())
	records, err := p.Read(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("want 4 records got %d: %+v", len(records), records)
	}

	if records[0].EmployeeID != "234198" || records[0].Minutes != 240 || records[0].Slot != model.SlotPMHalf {
		t.Fatalf("row1 unexpected: %+v", records[0])
	}
	if records[1].Minutes != 450 || records[1].Slot != model.SlotFull {
		t.Fatalf("row2 unexpected: %+v", records[1])
	}
	if records[2].Slot != model.SlotNA || records[2].RawStatus != "休" {
		t.Fatalf("row3 unexpected: %+v", records[2])
	}
	if records[3].EmployeeID != "243458" || records[3].Slot != model.SlotAMHalf {
		t.Fatalf("row4 unexpected: %+v", records[3])
	}
}

func TestExcelShiftParser_HeaderOnly(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{
		{"employee_id", "date", "start_time", "end_time", "status"},
	})

	p := NewExcelShiftParser(model.DefaultShiftParseConfig())
	records, err := p.Read(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("header-only sheet want 0 records got %d", len(records))
	}
}

func TestExcelShiftParser_UnknownColumnsIgnored(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{
		{"memo", "employee_id", "date", "start_time", "end_time"},
		{"备考", "234198", "2025-12-01", "9:00", "18:00"},
	})

	p := NewExcelShiftParser(model.DefaultShiftParseConfig())
	records, err := p.Read(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 1 || records[0].Minutes != 540 {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestParseCellDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2025-12-01", "2025-12-01", true},
		{"2025/12/01", "2025-12-01", true},
		{"2025/1/2", "2025-01-02", true},
		{"12-01-25", "2025-12-01", true},
		{"45992", "2025-12-01", true}, // Excel 序列日期
		{"", "", false},
		{"garbage", "", false},
	}
	for _, c := range cases {
		got, ok := parseCellDate(c.in)
		if ok != c.ok {
			t.Fatalf("%q ok want=%v got=%v", c.in, c.ok, ok)
		}
		if ok && got.Format("2006-01-02") != c.want {
			t.Fatalf("%q want=%s got=%s", c.in, c.want, got.Format("2006-01-02"))
		}
	}
}

func TestNormalizeCellTime(t *testing.T) {
	t.Parallel()

	if got := normalizeCellTime("9:00:00"); got != "9:00" {
		t.Fatalf("seconds want stripped, got %q", got)
	}
	if got := normalizeCellTime("18:30"); got != "18:30" {
		t.Fatalf("plain time should pass through, got %q", got)
	}
	// 0.375 天 = 9:00
	if got := normalizeCellTime("0.375"); got != "9:00" {
		t.Fatalf("serial time want=9:00 got=%q", got)
	}
	if got := normalizeCellTime(""); got != "" {
		t.Fatalf("empty should stay empty, got %q", got)
	}
}
