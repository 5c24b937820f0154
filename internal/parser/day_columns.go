package parser

import (
	"math"
	"sort"
	"strconv"

	"github.com/shu-creator/ShiftSumma/internal/config"
	"github.com/shu-creator/ShiftSumma/internal/model"
)

var weekdayGlyphs = map[string]struct{}{
	"月": {}, "火": {}, "水": {}, "木": {}, "金": {}, "土": {}, "日": {},
}

func round2f(v float64) float64 {
	return math.Round(v*100) / 100
}

// DetectDayColumns 从曜日标签推断日列的 x 坐标
// 宽容模式下也接受 1..31 的裸日号数字；相邻坐标按容差合并为同一列
// 返回的列按 x 升序排列，下标+1 即日号；找不到任何列时返回空，表示整页跳过
func DetectDayColumns(tokens []model.Token, cfg config.ExtractConfig) []float64 {
	xPositions := make([]float64, 0, 32)
	for _, token := range tokens {
		if !isDayColumnLabel(token.Text, cfg.DayNumberColumns) {
			continue
		}
		xPositions = append(xPositions, round2f(token.XCenter()))
	}

	sort.Float64s(xPositions)

	merged := make([]float64, 0, len(xPositions))
	for _, pos := range xPositions {
		if len(merged) == 0 || math.Abs(pos-merged[len(merged)-1]) > cfg.ColumnMergeTolerance {
			merged = append(merged, pos)
		}
	}
	return merged
}

func isDayColumnLabel(text string, dayNumberMode bool) bool {
	if _, ok := weekdayGlyphs[text]; ok {
		return true
	}
	if !dayNumberMode {
		return false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 31
}

// NearestDay 把 x 坐标吸附到最近的日列，返回 1 起的日号
// 距离相同时取扫描顺序里先出现的列
func NearestDay(xCenter float64, columns []float64) (int, bool) {
	if len(columns) == 0 {
		return 0, false
	}

	best := 0
	bestDist := math.Abs(columns[0] - xCenter)
	for i := 1; i < len(columns); i++ {
		d := math.Abs(columns[i] - xCenter)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best + 1, true
}
