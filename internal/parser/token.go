package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

var (
	// timePattern 入退刻 "H:MM" / "HH:MM"
	timePattern = regexp.MustCompile(`^(\d{1,2}:\d{2})$`)
	// statusPattern 勤务例外记号（非番/公休/休/斜线/横线）
	statusPattern = regexp.MustCompile(`^(非番|公休|休|／|ー)$`)
)

// TokenSource 按页提供定位文本块
// 页号从 1 开始；单页失败返回空列表而不是中断整份文档
type TokenSource interface {
	PageCount() int
	Page(i int) (tokens []model.Token, pageHeight float64, err error)
}

// NormalizeTokenText 规范化文本块内容
// 只收窄全角数字和全角冒号，状态记号（／、ー 等）保持原样输出
func NormalizeTokenText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '０' && r <= '９') || r == '：' {
			b.WriteString(width.Narrow.String(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsTimeText 是否入退刻格式
func IsTimeText(s string) bool {
	return timePattern.MatchString(s)
}

// IsStatusText 是否勤务例外记号
func IsStatusText(s string) bool {
	return statusPattern.MatchString(s)
}
