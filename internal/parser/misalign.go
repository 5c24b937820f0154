package parser

import (
	"sort"

	"github.com/shu-creator/ShiftSumma/internal/analytics"
	"github.com/shu-creator/ShiftSumma/internal/model"
)

// CorrectMisalignedRows 修复跨零点班次的退刻错位
//
// 已知版式缺陷：跨零点班次的退刻会被印在次日的日列下。逐社员按日期相邻两行检查，
// 满足以下全部条件时把后行的退刻回写到前行：
//   - 两行都没有状态记号
//   - 前行有入刻
//   - 两行正好相差一天
//   - 前行自身时长低于整日阈值，后行时长达到整日阈值
//   - 两行入刻字符串完全一致
//
// 后行保持原样，其冗余贡献由调用方接受（启发式的既定取舍）
func CorrectMisalignedRows(rows []model.ShiftRow, cfg model.ShiftParseConfig) []model.ShiftRow {
	out := make([]model.ShiftRow, len(rows))
	copy(out, rows)

	// 按社员分组，保持组内原顺序之外按日期排序
	byEmployee := make(map[string][]int)
	for i, row := range out {
		byEmployee[row.EmployeeID] = append(byEmployee[row.EmployeeID], i)
	}

	for _, indexes := range byEmployee {
		sort.SliceStable(indexes, func(a, b int) bool {
			return out[indexes[a]].Date.Before(out[indexes[b]].Date)
		})

		for k := 0; k+1 < len(indexes); k++ {
			cur := &out[indexes[k]]
			next := out[indexes[k+1]]

			if cur.RawStatus != "" || next.RawStatus != "" {
				continue
			}
			if cur.StartTime == "" {
				continue
			}
			if !next.Date.Equal(cur.Date.AddDate(0, 0, 1)) {
				continue
			}
			if analytics.ShiftMinutes(cur.StartTime, cur.EndTime) >= cfg.FullThresholdMinutes {
				continue
			}
			if analytics.ShiftMinutes(next.StartTime, next.EndTime) < cfg.FullThresholdMinutes {
				continue
			}
			if cur.StartTime != next.StartTime {
				continue
			}

			cur.EndTime = next.EndTime
		}
	}

	return out
}
