package parser

import (
	"math"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

// LineValue 一日份的行内取值（时刻/状态），空串表示缺失
type LineValue struct {
	Time   string
	Status string
}

// CollectLineValues 把指定行上的时刻/状态吸附到日列
// 同一日同一字段按扫描顺序先到先得，后续文本块忽略；没有日列映射的文本块丢弃
func CollectLineValues(band []model.Token, lineY float64, columns []float64, lineTolerance float64) map[int]LineValue {
	values := make(map[int]LineValue)

	for _, token := range band {
		if math.Abs(token.YCenter()-lineY) > lineTolerance {
			continue
		}

		isTime := IsTimeText(token.Text)
		isStatus := IsStatusText(token.Text)
		if !isTime && !isStatus {
			continue
		}

		day, ok := NearestDay(token.XCenter(), columns)
		if !ok {
			continue
		}

		v := values[day]
		if isTime && v.Time == "" {
			v.Time = token.Text
		}
		if isStatus && v.Status == "" {
			v.Status = token.Text
		}
		values[day] = v
	}

	return values
}
