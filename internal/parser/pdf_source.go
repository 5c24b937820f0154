package parser

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/shu-creator/ShiftSumma/internal/model"
)

// defaultPageHeight MediaBox 缺失时按 A4 纵向兜底
const defaultPageHeight = 842.0

// PDFTokenSource ledongthuc/pdf 之上的文本块来源
// 把内容流里的文字碎片拼装成词级文本块，并把坐标翻转成自上而下
type PDFTokenSource struct {
	file   *os.File
	reader *pdf.Reader
}

// OpenPDF 打开 PDF 文件
func OpenPDF(path string) (*PDFTokenSource, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &PDFTokenSource{file: file, reader: reader}, nil
}

// Close 释放底层文件
func (s *PDFTokenSource) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// PageCount 页数
func (s *PDFTokenSource) PageCount() int {
	return s.reader.NumPage()
}

// Page 提取一页的词级文本块（页号从 1 开始）
func (s *PDFTokenSource) Page(i int) (tokens []model.Token, height float64, err error) {
	height = defaultPageHeight

	page := s.reader.Page(i)
	if page.V.IsNull() {
		return nil, height, nil
	}

	height = mediaBoxHeight(page)

	// 内容流解析异常只损失本页
	defer func() { _ = recover() }()

	content := page.Content()
	tokens = assembleTokens(content.Text, height)
	return tokens, height, nil
}

// mediaBoxHeight 沿 Pages 树向上找 MediaBox 高度
func mediaBoxHeight(page pdf.Page) float64 {
	v := page.V
	for !v.IsNull() {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			h := mb.Index(3).Float64() - mb.Index(1).Float64()
			if h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}

// assembleTokens 把同一基线上相邻的文字碎片拼成词
// PDF 的 y 轴向上，这里翻转为 Top/Bottom 自上而下的坐标
func assembleTokens(texts []pdf.Text, pageHeight float64) []model.Token {
	tokens := make([]model.Token, 0, len(texts))
	group := make([]pdf.Text, 0, 8)

	flush := func() {
		if len(group) == 0 {
			return
		}
		first := group[0]
		last := group[len(group)-1]

		var sb strings.Builder
		for _, g := range group {
			sb.WriteString(g.S)
		}
		text := NormalizeTokenText(sb.String())
		group = group[:0]
		if text == "" {
			return
		}

		tokens = append(tokens, model.Token{
			Text:   text,
			X0:     first.X,
			X1:     last.X + last.W,
			Top:    pageHeight - first.Y - first.FontSize,
			Bottom: pageHeight - first.Y,
		})
	}

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			flush()
			continue
		}
		if len(group) > 0 {
			prev := group[len(group)-1]
			gap := t.X - (prev.X + prev.W)
			if math.Abs(t.Y-prev.Y) > 0.5 || gap < -0.5 || gap > wordGap(prev.FontSize) {
				flush()
			}
		}
		group = append(group, t)
	}
	flush()

	return tokens
}

// wordGap 词内碎片允许的最大水平间隙
func wordGap(fontSize float64) float64 {
	gap := fontSize * 0.35
	if gap < 1.0 {
		gap = 1.0
	}
	return gap
}
