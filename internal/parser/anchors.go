package parser

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/shu-creator/ShiftSumma/internal/config"
	"github.com/shu-creator/ShiftSumma/internal/model"
)

// EmployeeAnchor 社员ID文本块：其 y 坐标开启该社员的数据带
type EmployeeAnchor struct {
	EmployeeID string
	Top        float64
}

// anchorPattern 按配置构造社员ID匹配：固定位数，默认拒绝前导零
func anchorPattern(cfg config.ExtractConfig) *regexp.Regexp {
	digits := cfg.AnchorDigits
	if digits <= 0 {
		digits = 6
	}
	if cfg.AllowLeadingZero {
		return regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, digits))
	}
	return regexp.MustCompile(fmt.Sprintf(`^[1-9]\d{%d}$`, digits-1))
}

// FindEmployeeAnchors 扫描社员ID并按 top 升序排序
// 排序结果决定社员处理顺序和数据带边界
func FindEmployeeAnchors(tokens []model.Token, cfg config.ExtractConfig) []EmployeeAnchor {
	re := anchorPattern(cfg)

	anchors := make([]EmployeeAnchor, 0, 8)
	for _, token := range tokens {
		if !re.MatchString(token.Text) {
			continue
		}
		anchors = append(anchors, EmployeeAnchor{
			EmployeeID: token.Text,
			Top:        token.Top,
		})
	}

	sort.SliceStable(anchors, func(i, j int) bool { return anchors[i].Top < anchors[j].Top })
	return anchors
}

// SliceBand 截取 y 中心落在 [bandTop, bandBottom] 的文本块
func SliceBand(tokens []model.Token, bandTop, bandBottom float64) []model.Token {
	filtered := make([]model.Token, 0, len(tokens))
	for _, token := range tokens {
		y := token.YCenter()
		if bandTop <= y && y <= bandBottom {
			filtered = append(filtered, token)
		}
	}
	return filtered
}
