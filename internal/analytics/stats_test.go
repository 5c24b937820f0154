package analytics

import (
	"testing"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

// decemberRecords 2025-12 第一周的三名社员
func decemberRecords(t *testing.T) []model.ShiftRecord {
	t.Helper()

	cfg := model.DefaultShiftParseConfig()
	rows := []model.ShiftRow{
		{EmployeeID: "101", Date: date(2025, 12, 1), StartTime: "9:00", EndTime: "18:00"},
		{EmployeeID: "101", Date: date(2025, 12, 2), StartTime: "14:00", EndTime: "18:00"},
		{EmployeeID: "101", Date: date(2025, 12, 3), RawStatus: "休"},
		{EmployeeID: "102", Date: date(2025, 12, 1), StartTime: "10:00", EndTime: "14:00"},
		{EmployeeID: "102", Date: date(2025, 12, 8), StartTime: "9:00", EndTime: "18:00"},
		{EmployeeID: "201", Date: date(2025, 12, 2), StartTime: "9:00", EndTime: "18:00"},
	}
	return BuildShiftRecords(rows, cfg)
}

func TestWeeklyEmployee(t *testing.T) {
	t.Parallel()

	stats := WeeklyEmployee(decemberRecords(t))
	if len(stats) != 4 {
		t.Fatalf("want 4 groups got %d", len(stats))
	}

	// 排序：employee_id 升序、week_index 升序
	first := stats[0]
	if first.EmployeeID != "101" || first.WeekIndex != 1 {
		t.Fatalf("unexpected first group: %s w%d", first.EmployeeID, first.WeekIndex)
	}
	// 540 + 240 + 0 = 780 分 = 13h
	if first.WeekMinutes != 780 || first.WeekHours != 13.0 {
		t.Fatalf("101 w1 want=780min/13h got=%dmin/%gh", first.WeekMinutes, first.WeekHours)
	}
	// 出勤 2 日，其中半日 1 日
	if first.WeekWorkdays != 2 || first.WeekHalfDays != 1 {
		t.Fatalf("101 w1 workdays/half want=2/1 got=%d/%d", first.WeekWorkdays, first.WeekHalfDays)
	}
	if first.WeekHalfRatio != 0.5 {
		t.Fatalf("101 w1 half ratio want=0.5 got=%g", first.WeekHalfRatio)
	}
	if !first.WeekStartDate.Equal(date(2025, 12, 1)) {
		t.Fatalf("101 w1 week start want=2025-12-01 got=%s", first.WeekStartDate.Format("2006-01-02"))
	}

	// 102 跨两周
	if stats[1].EmployeeID != "102" || stats[1].WeekIndex != 1 {
		t.Fatalf("unexpected second group: %s w%d", stats[1].EmployeeID, stats[1].WeekIndex)
	}
	if stats[2].EmployeeID != "102" || stats[2].WeekIndex != 2 {
		t.Fatalf("unexpected third group: %s w%d", stats[2].EmployeeID, stats[2].WeekIndex)
	}
}

func TestWeeklyTeam_TotalsMatchEmployeeSums(t *testing.T) {
	t.Parallel()

	records := decemberRecords(t)
	team := WeeklyTeam(records)
	if len(team) != 2 {
		t.Fatalf("want 2 weeks got %d", len(team))
	}

	// 周次合计 = 社员合计之和
	byWeek := make(map[int]int)
	for _, s := range WeeklyEmployee(records) {
		byWeek[s.WeekIndex] += s.WeekMinutes
	}
	for _, w := range team {
		if w.TotalMinutes != byWeek[w.WeekIndex] {
			t.Fatalf("w%d total want=%d got=%d", w.WeekIndex, byWeek[w.WeekIndex], w.TotalMinutes)
		}
	}

	w1 := team[0]
	if w1.WeekIndex != 1 || w1.EmployeeCount != 3 {
		t.Fatalf("w1 want 3 employees got w%d/%d", w1.WeekIndex, w1.EmployeeCount)
	}
	// 780 + 240 + 540 = 1560 分 = 26h, 一人当たり 26/3
	if w1.TotalMinutes != 1560 {
		t.Fatalf("w1 total want=1560 got=%d", w1.TotalMinutes)
	}
	wantAvg := 26.0 / 3.0
	if diff := w1.AvgHoursPerEmployee - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("w1 avg want=%g got=%g", wantAvg, w1.AvgHoursPerEmployee)
	}
}

func TestWeekdaySlot_LexicographicOrder(t *testing.T) {
	t.Parallel()

	stats := WeekdaySlot(decemberRecords(t))
	for i := 1; i < len(stats); i++ {
		a, b := stats[i-1], stats[i]
		if a.Weekday > b.Weekday || (a.Weekday == b.Weekday && a.Slot > b.Slot) {
			t.Fatalf("not sorted at %d: %s/%s > %s/%s", i, a.Weekday, a.Slot, b.Weekday, b.Slot)
		}
	}
}

func TestWeekdaySlot_RatiosSumToOnePerDay(t *testing.T) {
	t.Parallel()

	stats := WeekdaySlot(decemberRecords(t))
	sums := make(map[string]float64)
	for _, s := range stats {
		sums[s.Weekday] += s.RatioInDay
	}
	for weekday, sum := range sums {
		if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("%s ratio sum want=1 got=%g", weekday, sum)
		}
	}
}

func TestWeekdaySlotWorking_ZeroFilled(t *testing.T) {
	t.Parallel()

	stats := WeekdaySlotWorking(decemberRecords(t))
	if len(stats) != 15 {
		t.Fatalf("want 15 rows got %d", len(stats))
	}

	// 行序固定：月..金 × AM半日/Full/PM半日
	i := 0
	for _, weekday := range model.WeekdayLabels[:5] {
		for _, slot := range model.WorkingSlotsOrder {
			if stats[i].Weekday != weekday || stats[i].Slot != slot {
				t.Fatalf("row %d want=%s/%s got=%s/%s", i, weekday, slot, stats[i].Weekday, stats[i].Slot)
			}
			i++
		}
	}

	// NA（休）不计入
	for _, s := range stats {
		if s.Weekday == "水" && s.Count != 0 {
			t.Fatalf("水 should only have the rest-day record, got count %d for %s", s.Count, s.Slot)
		}
	}
}

func TestWeekdaySlotWorking_EmptyInput(t *testing.T) {
	t.Parallel()

	stats := WeekdaySlotWorking(nil)
	if len(stats) != 0 {
		t.Fatalf("empty input want 0 rows got %d", len(stats))
	}
}

func TestWeekdayNACounts(t *testing.T) {
	t.Parallel()

	counts := WeekdayNACounts(decemberRecords(t))
	if len(counts) != 5 {
		t.Fatalf("want 5 rows got %d", len(counts))
	}
	byDay := make(map[string]int)
	for _, c := range counts {
		byDay[c.Weekday] = c.Count
	}
	// 休 只出现在周三
	if byDay["水"] != 1 {
		t.Fatalf("水 want=1 got=%d", byDay["水"])
	}
	if byDay["月"] != 0 || byDay["金"] != 0 {
		t.Fatalf("no NA expected on 月/金: %v", byDay)
	}

	if got := WeekdayNACounts(nil); len(got) != 0 {
		t.Fatalf("empty input want 0 rows got %d", len(got))
	}
}

func TestComputeWarning(t *testing.T) {
	t.Parallel()

	records := decemberRecords(t)
	w := ComputeWarning(records)
	if w.MissingStart != 1 || w.MissingEnd != 1 || w.ZeroMinutes != 1 {
		t.Fatalf("unexpected warning: %+v", w)
	}

	text := FormatWarning(w)
	want := "入時刻欠損: 1件 / 退時刻欠損: 1件 / 実働0分: 1件"
	if text != want {
		t.Fatalf("warning text want=%q got=%q", want, text)
	}
}
