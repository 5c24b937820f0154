package model

import "time"

// ImportReport 一次导入的汇总结果
type ImportReport struct {
	Filename     string        `json:"filename"`
	TargetMonth  string        `json:"targetMonth"`
	TotalRecords int           `json:"totalRecords"`
	Excluded     int           `json:"excluded"`
	Stored       int           `json:"stored"`
	Warning      string        `json:"warning,omitempty"`
	Duration     time.Duration `json:"duration"`
}

// ProgressEvent 导入/导出过程的进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`    // start/info/parsed/stored/warning/done/error
	Message   string      `json:"message"` // 事件消息
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
