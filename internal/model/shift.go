package model

import "time"

// Slot 班次时段分类
type Slot string

const (
	SlotNA     Slot = "NA"
	SlotFull   Slot = "Full"
	SlotAMHalf Slot = "AM半日"
	SlotPMHalf Slot = "PM半日"
)

// WeekdayLabels 星期标签，索引 0=周一 .. 6=周日（ISO 顺序）
var WeekdayLabels = []string{"月", "火", "水", "木", "金", "土", "日"}

// WorkingSlotsOrder 勤务时段的固定展示顺序
var WorkingSlotsOrder = []Slot{SlotAMHalf, SlotFull, SlotPMHalf}

// Token PDF 页面上的一个定位文本块
// 坐标系：x 向右增长，y（Top/Bottom）向下增长
type Token struct {
	Text   string
	X0     float64
	X1     float64
	Top    float64
	Bottom float64
}

// XCenter 水平中心
func (t Token) XCenter() float64 {
	return (t.X0 + t.X1) / 2
}

// YCenter 垂直中心
func (t Token) YCenter() float64 {
	return (t.Top + t.Bottom) / 2
}

// ShiftRow 分类前的日次原始行：只携带提取结果
// StartTime/EndTime/RawStatus 为空字符串表示缺失
type ShiftRow struct {
	EmployeeID string
	Date       time.Time
	StartTime  string
	EndTime    string
	RawStatus  string
}

// ShiftRecord 分类后的日次勤务记录，所有统计的基础单元
type ShiftRecord struct {
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"date"`
	Weekday    string    `json:"weekday"`
	WeekIndex  int       `json:"week_index"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Minutes    int       `json:"minutes"`
	Slot       Slot      `json:"slot"`
	IsHalf     bool      `json:"is_half"`
	IsWeekday  bool      `json:"is_weekday"`
	RawStatus  string    `json:"raw_status"`
}

// ShiftParseConfig 实动判定阈值，解析期间不可变
type ShiftParseConfig struct {
	FullThresholdMinutes int `json:"fullThresholdMinutes"` // 超过则整日 (默认 270 = 4.5h)
	HalfMinMinutes       int `json:"halfMinMinutes"`       // 半日下限 (默认 180 = 3h)
}

// DefaultShiftParseConfig 默认判定阈值
func DefaultShiftParseConfig() ShiftParseConfig {
	return ShiftParseConfig{
		FullThresholdMinutes: 270,
		HalfMinMinutes:       180,
	}
}
