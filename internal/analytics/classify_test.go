package analytics

import (
	"testing"
	"time"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseHHMMToMinutes(t *testing.T) {
	t.Parallel()

	if got, ok := ParseHHMMToMinutes("9:00"); !ok || got != 540 {
		t.Fatalf("9:00 want=540 got=%d ok=%v", got, ok)
	}
	if got, ok := ParseHHMMToMinutes("18:30"); !ok || got != 1110 {
		t.Fatalf("18:30 want=1110 got=%d ok=%v", got, ok)
	}
	if _, ok := ParseHHMMToMinutes(""); ok {
		t.Fatalf("empty should not parse")
	}
	if _, ok := ParseHHMMToMinutes("休"); ok {
		t.Fatalf("status text should not parse")
	}
	if _, ok := ParseHHMMToMinutes("9:00:00"); ok {
		t.Fatalf("three-part time should not parse")
	}
}

func TestShiftMinutes(t *testing.T) {
	t.Parallel()

	if got := ShiftMinutes("9:00", "18:00"); got != 540 {
		t.Fatalf("9:00-18:00 want=540 got=%d", got)
	}
	// 跨零点班次
	if got := ShiftMinutes("22:00", "6:00"); got != 480 {
		t.Fatalf("22:00-6:00 want=480 got=%d", got)
	}
	// 任一端缺失则为 0
	if got := ShiftMinutes("", "18:00"); got != 0 {
		t.Fatalf("missing start want=0 got=%d", got)
	}
	if got := ShiftMinutes("9:00", ""); got != 0 {
		t.Fatalf("missing end want=0 got=%d", got)
	}
}

func TestComputeWeekIndex_FirstPartialWeekIsOne(t *testing.T) {
	t.Parallel()

	// 2025-12-01 是周一
	if got := ComputeWeekIndex(date(2025, 12, 1)); got != 1 {
		t.Fatalf("2025-12-01 want=1 got=%d", got)
	}
	if got := ComputeWeekIndex(date(2025, 12, 7)); got != 1 {
		t.Fatalf("2025-12-07 want=1 got=%d", got)
	}
	if got := ComputeWeekIndex(date(2025, 12, 8)); got != 2 {
		t.Fatalf("2025-12-08 want=2 got=%d", got)
	}

	// 2025-11-01 是周六：月初的不完整周也是第 1 周
	if got := ComputeWeekIndex(date(2025, 11, 1)); got != 1 {
		t.Fatalf("2025-11-01 want=1 got=%d", got)
	}
	if got := ComputeWeekIndex(date(2025, 11, 3)); got != 2 {
		t.Fatalf("2025-11-03 want=2 got=%d", got)
	}
}

func TestComputeWeekIndex_Monotonic(t *testing.T) {
	t.Parallel()

	prev := 0
	for day := 1; day <= 31; day++ {
		idx := ComputeWeekIndex(date(2025, 12, day))
		if idx < prev {
			t.Fatalf("week index decreased at day %d: %d -> %d", day, prev, idx)
		}
		prev = idx
	}
}

func TestWeekStartDate(t *testing.T) {
	t.Parallel()

	// 2025-12-03 是周三，所在周的周一是 12-01
	got := WeekStartDate(date(2025, 12, 3))
	if !got.Equal(date(2025, 12, 1)) {
		t.Fatalf("want=2025-12-01 got=%s", got.Format("2006-01-02"))
	}
}

func TestDetermineSlot(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultShiftParseConfig()

	slot, isHalf := DetermineSlot(0, "", "", cfg)
	if slot != model.SlotNA || isHalf {
		t.Fatalf("0min want=NA got=%s half=%v", slot, isHalf)
	}

	slot, isHalf = DetermineSlot(540, "9:00", "18:00", cfg)
	if slot != model.SlotFull || isHalf {
		t.Fatalf("540min want=Full got=%s half=%v", slot, isHalf)
	}

	// 半日候补：退刻早 → AM
	slot, isHalf = DetermineSlot(240, "10:00", "14:00", cfg)
	if slot != model.SlotAMHalf || !isHalf {
		t.Fatalf("10:00-14:00 want=AM半日 got=%s half=%v", slot, isHalf)
	}

	// 半日候补：入刻晚 → PM
	slot, isHalf = DetermineSlot(240, "14:00", "18:00", cfg)
	if slot != model.SlotPMHalf || !isHalf {
		t.Fatalf("14:00-18:00 want=PM半日 got=%s half=%v", slot, isHalf)
	}

	// 两个时刻条件都不命中时默认 PM
	slot, isHalf = DetermineSlot(240, "11:00", "15:00", cfg)
	if slot != model.SlotPMHalf || !isHalf {
		t.Fatalf("11:00-15:00 want=PM半日 got=%s half=%v", slot, isHalf)
	}

	// 半日下限之下也暂定半日
	slot, isHalf = DetermineSlot(120, "9:00", "11:00", cfg)
	if slot != model.SlotPMHalf || !isHalf {
		t.Fatalf("120min want=PM半日 got=%s half=%v", slot, isHalf)
	}
}

func TestBuildShiftRecord_Scenarios(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultShiftParseConfig()

	cases := []struct {
		row         model.ShiftRow
		wantMinutes int
		wantSlot    model.Slot
	}{
		{model.ShiftRow{EmployeeID: "234198", Date: date(2025, 12, 1), StartTime: "14:00", EndTime: "18:00"}, 240, model.SlotPMHalf},
		{model.ShiftRow{EmployeeID: "234198", Date: date(2025, 12, 3), StartTime: "9:00", EndTime: "16:30"}, 450, model.SlotFull},
		{model.ShiftRow{EmployeeID: "234198", Date: date(2025, 12, 4), RawStatus: "休"}, 0, model.SlotNA},
		{model.ShiftRow{EmployeeID: "243458", Date: date(2025, 12, 1), StartTime: "10:00", EndTime: "14:00"}, 240, model.SlotAMHalf},
		{model.ShiftRow{EmployeeID: "253712", Date: date(2025, 12, 2), StartTime: "14:00", EndTime: "18:00"}, 240, model.SlotPMHalf},
		{model.ShiftRow{EmployeeID: "253712", Date: date(2025, 12, 4), StartTime: "9:00", EndTime: "17:00"}, 480, model.SlotFull},
	}

	for _, c := range cases {
		got := BuildShiftRecord(c.row, cfg)
		if got.Minutes != c.wantMinutes {
			t.Fatalf("%s %s minutes want=%d got=%d", c.row.EmployeeID, c.row.Date.Format("2006-01-02"), c.wantMinutes, got.Minutes)
		}
		if got.Slot != c.wantSlot {
			t.Fatalf("%s %s slot want=%s got=%s", c.row.EmployeeID, c.row.Date.Format("2006-01-02"), c.wantSlot, got.Slot)
		}
		if got.EmployeeID == "0" {
			t.Fatalf("unexpected employee id 0")
		}
	}
}

func TestBuildShiftRecord_WeekdayFields(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultShiftParseConfig()

	// 2025-12-06 是周六
	rec := BuildShiftRecord(model.ShiftRow{EmployeeID: "101", Date: date(2025, 12, 6), StartTime: "9:00", EndTime: "18:00"}, cfg)
	if rec.Weekday != "土" || rec.IsWeekday {
		t.Fatalf("saturday want=土/weekend got=%s/%v", rec.Weekday, rec.IsWeekday)
	}

	rec = BuildShiftRecord(model.ShiftRow{EmployeeID: "101", Date: date(2025, 12, 5), StartTime: "9:00", EndTime: "18:00"}, cfg)
	if rec.Weekday != "金" || !rec.IsWeekday {
		t.Fatalf("friday want=金/weekday got=%s/%v", rec.Weekday, rec.IsWeekday)
	}
}

func TestBuildShiftRecords_SkipsZeroDates(t *testing.T) {
	t.Parallel()

	cfg := model.DefaultShiftParseConfig()
	rows := []model.ShiftRow{
		{EmployeeID: "101", Date: date(2025, 12, 1), StartTime: "9:00", EndTime: "18:00"},
		{EmployeeID: "101"},
	}
	records := BuildShiftRecords(rows, cfg)
	if len(records) != 1 {
		t.Fatalf("want 1 record got %d", len(records))
	}
}
