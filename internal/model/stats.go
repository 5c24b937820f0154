package model

import "time"

// WeeklyEmployeeStats 社员×周 的实动统计
type WeeklyEmployeeStats struct {
	EmployeeID    string    `json:"employee_id"`
	WeekIndex     int       `json:"week_index"`
	WeekStartDate time.Time `json:"week_start_date"`
	WeekMinutes   int       `json:"week_minutes"`
	WeekHours     float64   `json:"week_hours"`
	WeekWorkdays  int       `json:"week_workdays"`
	WeekHalfDays  int       `json:"week_half_days"`
	WeekHalfRatio float64   `json:"week_half_ratio"`
}

// WeeklyTeamStats 周次的团队合计
type WeeklyTeamStats struct {
	WeekIndex           int       `json:"week_index"`
	WeekStartDate       time.Time `json:"week_start_date"`
	TotalMinutes        int       `json:"total_minutes"`
	TotalHours          float64   `json:"total_hours"`
	EmployeeCount       int       `json:"employee_count"`
	AvgHoursPerEmployee float64   `json:"avg_hours_per_employee"`
}

// WeekdaySlotStats 星期×时段 的件数与日内构成比
type WeekdaySlotStats struct {
	Weekday    string  `json:"weekday"`
	Slot       Slot    `json:"slot"`
	Count      int     `json:"count"`
	RatioInDay float64 `json:"ratio_in_day"`
}

// WeekdayNACount 平日里实动 0 分的件数
type WeekdayNACount struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

// QualityWarning 数据质量摘要：缺失与 0 分件数
type QualityWarning struct {
	MissingStart int `json:"missingStart"`
	MissingEnd   int `json:"missingEnd"`
	ZeroMinutes  int `json:"zeroMinutes"`
}
