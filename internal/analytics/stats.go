package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WeeklyEmployee 社员×周 的实动统计
func WeeklyEmployee(records []model.ShiftRecord) []model.WeeklyEmployeeStats {
	type key struct {
		employeeID string
		weekIndex  int
	}

	type acc struct {
		minutes  int
		workdays int
		halfDays int
		minDate  time.Time
	}

	groups := make(map[key]*acc)
	for _, r := range records {
		k := key{employeeID: r.EmployeeID, weekIndex: r.WeekIndex}
		g, ok := groups[k]
		if !ok {
			g = &acc{minDate: r.Date}
			groups[k] = g
		}
		g.minutes += r.Minutes
		if r.Minutes > 0 {
			g.workdays++
		}
		if r.IsHalf {
			g.halfDays++
		}
		if r.Date.Before(g.minDate) {
			g.minDate = r.Date
		}
	}

	out := make([]model.WeeklyEmployeeStats, 0, len(groups))
	for k, g := range groups {
		ratio := 0.0
		if g.workdays > 0 {
			ratio = float64(g.halfDays) / float64(g.workdays)
		}
		out = append(out, model.WeeklyEmployeeStats{
			EmployeeID:    k.employeeID,
			WeekIndex:     k.weekIndex,
			WeekStartDate: WeekStartDate(g.minDate),
			WeekMinutes:   g.minutes,
			WeekHours:     round2(float64(g.minutes) / 60),
			WeekWorkdays:  g.workdays,
			WeekHalfDays:  g.halfDays,
			WeekHalfRatio: ratio,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeID != out[j].EmployeeID {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		return out[i].WeekIndex < out[j].WeekIndex
	})
	return out
}

// WeeklyTeam 周次的团队合计
func WeeklyTeam(records []model.ShiftRecord) []model.WeeklyTeamStats {
	type acc struct {
		minutes   int
		employees map[string]struct{}
		minDate   time.Time
	}

	groups := make(map[int]*acc)
	for _, r := range records {
		g, ok := groups[r.WeekIndex]
		if !ok {
			g = &acc{employees: make(map[string]struct{}), minDate: r.Date}
			groups[r.WeekIndex] = g
		}
		g.minutes += r.Minutes
		g.employees[r.EmployeeID] = struct{}{}
		if r.Date.Before(g.minDate) {
			g.minDate = r.Date
		}
	}

	out := make([]model.WeeklyTeamStats, 0, len(groups))
	for weekIndex, g := range groups {
		totalHours := round2(float64(g.minutes) / 60)
		avg := 0.0
		if len(g.employees) > 0 {
			avg = totalHours / float64(len(g.employees))
		}
		out = append(out, model.WeeklyTeamStats{
			WeekIndex:           weekIndex,
			WeekStartDate:       WeekStartDate(g.minDate),
			TotalMinutes:        g.minutes,
			TotalHours:          totalHours,
			EmployeeCount:       len(g.employees),
			AvgHoursPerEmployee: avg,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].WeekIndex < out[j].WeekIndex })
	return out
}

// WeekdaySlot 星期×时段（全部分类，含 NA），仅平日
func WeekdaySlot(records []model.ShiftRecord) []model.WeekdaySlotStats {
	type key struct {
		weekday string
		slot    model.Slot
	}

	counts := make(map[key]int)
	totals := make(map[string]int)
	for _, r := range records {
		if !r.IsWeekday {
			continue
		}
		counts[key{weekday: r.Weekday, slot: r.Slot}]++
		totals[r.Weekday]++
	}

	out := make([]model.WeekdaySlotStats, 0, len(counts))
	for k, c := range counts {
		out = append(out, model.WeekdaySlotStats{
			Weekday:    k.weekday,
			Slot:       k.slot,
			Count:      c,
			RatioInDay: float64(c) / float64(totals[k.weekday]),
		})
	}

	// 分组键的字典序排序
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weekday != out[j].Weekday {
			return out[i].Weekday < out[j].Weekday
		}
		return out[i].Slot < out[j].Slot
	})
	return out
}

// WeekdaySlotWorking 星期×时段（仅勤务あり），平日×3时段全量 0 填充
// 输出固定为 5×3=15 行，行序固定：周一..周五 × AM半日/Full/PM半日
func WeekdaySlotWorking(records []model.ShiftRecord) []model.WeekdaySlotStats {
	if len(records) == 0 {
		return []model.WeekdaySlotStats{}
	}

	workingSlot := func(s model.Slot) bool {
		return s == model.SlotAMHalf || s == model.SlotFull || s == model.SlotPMHalf
	}

	type key struct {
		weekday string
		slot    model.Slot
	}

	counts := make(map[key]int)
	totals := make(map[string]int)
	for _, r := range records {
		if !r.IsWeekday || r.Minutes <= 0 || !workingSlot(r.Slot) {
			continue
		}
		counts[key{weekday: r.Weekday, slot: r.Slot}]++
		totals[r.Weekday]++
	}

	out := make([]model.WeekdaySlotStats, 0, 15)
	for _, weekday := range model.WeekdayLabels[:5] {
		for _, slot := range model.WorkingSlotsOrder {
			c := counts[key{weekday: weekday, slot: slot}]
			ratio := 0.0
			if totals[weekday] > 0 {
				ratio = float64(c) / float64(totals[weekday])
			}
			out = append(out, model.WeekdaySlotStats{
				Weekday:    weekday,
				Slot:       slot,
				Count:      c,
				RatioInDay: ratio,
			})
		}
	}
	return out
}

// WeekdayNACounts 平日里实动 0 分的件数，按周一..周五 0 填充
func WeekdayNACounts(records []model.ShiftRecord) []model.WeekdayNACount {
	if len(records) == 0 {
		return []model.WeekdayNACount{}
	}

	counts := make(map[string]int)
	for _, r := range records {
		if r.Minutes == 0 && r.IsWeekday {
			counts[r.Weekday]++
		}
	}

	out := make([]model.WeekdayNACount, 0, 5)
	for _, weekday := range model.WeekdayLabels[:5] {
		out = append(out, model.WeekdayNACount{
			Weekday: weekday,
			Count:   counts[weekday],
		})
	}
	return out
}

// ComputeWarning 数据质量摘要
func ComputeWarning(records []model.ShiftRecord) model.QualityWarning {
	var w model.QualityWarning
	for _, r := range records {
		if r.StartTime == "" {
			w.MissingStart++
		}
		if r.EndTime == "" {
			w.MissingEnd++
		}
		if r.Minutes <= 0 {
			w.ZeroMinutes++
		}
	}
	return w
}

// FormatWarning 质量摘要的展示文本
func FormatWarning(w model.QualityWarning) string {
	return fmt.Sprintf("入時刻欠損: %d件 / 退時刻欠損: %d件 / 実働0分: %d件",
		w.MissingStart, w.MissingEnd, w.ZeroMinutes)
}
