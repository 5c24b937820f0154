package parser

import (
	"math"
	"sort"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

const (
	entryGlyph = "入"
	exitGlyph  = "退"
)

// FindLineY 返回关键字（入/退）所在行的 y 坐标
// 多个匹配取 y 中心的算术平均
func FindLineY(tokens []model.Token, keyword string) (float64, bool) {
	sum := 0.0
	count := 0
	for _, token := range tokens {
		if token.Text != keyword {
			continue
		}
		sum += token.YCenter()
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// GuessTimeLines 找不到「入」「退」时的回退行推断
// 把时刻/状态记号按 y 中心（0.1 精度）分桶，按 y 升序返回前两行
func GuessTimeLines(tokens []model.Token) []float64 {
	buckets := make(map[float64]int)
	for _, token := range tokens {
		if !IsTimeText(token.Text) && !IsStatusText(token.Text) {
			continue
		}
		key := math.Round(token.YCenter()*10) / 10
		buckets[key]++
	}

	if len(buckets) == 0 {
		return nil
	}

	lines := make([]float64, 0, len(buckets))
	for y := range buckets {
		lines = append(lines, y)
	}
	sort.Float64s(lines)

	if len(lines) > 2 {
		lines = lines[:2]
	}
	return lines
}

// ResolveLines 解析数据带内的入/退两行
// 仅一行可解析时两行共用（单行版式）；两行都解析不出时 ok=false，整带跳过
func ResolveLines(band []model.Token) (entryY, exitY float64, hasEntry, hasExit bool) {
	entryY, hasEntry = FindLineY(band, entryGlyph)
	exitY, hasExit = FindLineY(band, exitGlyph)

	if !hasEntry || !hasExit {
		guessed := GuessTimeLines(band)
		if !hasEntry && len(guessed) > 0 {
			entryY = guessed[0]
			hasEntry = true
		}
		if !hasExit && len(guessed) > 1 {
			exitY = guessed[1]
			hasExit = true
		} else if !hasExit && hasEntry {
			exitY = entryY
			hasExit = true
		}
	}

	return entryY, exitY, hasEntry, hasExit
}
