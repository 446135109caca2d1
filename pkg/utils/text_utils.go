package utils

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	if MeasureText(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if MeasureText(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽，按字符强制断行
		for MeasureText(word, font) > maxWidth {
			cut := fitPrefix(word, font, maxWidth)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		currentLine = word
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// fitPrefix 返回能放进 maxWidth 的最长前缀字节数（至少一个字符）
func fitPrefix(s string, font *text.GoTextFace, maxWidth float64) int {
	_, first := utf8.DecodeRuneInString(s)
	end := first
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if MeasureText(s[:end+size], font) > maxWidth {
			break
		}
		end += size
	}
	return end
}

// MeasureText 测量文本宽度
func MeasureText(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// DrawText 以 (x, y) 为左上角绘制文本
func DrawText(screen *ebiten.Image, s string, font *text.GoTextFace, x, y float64, clr color.Color) {
	if font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, font, op)
}

// DrawTextCentered 以 (cx, cy) 为中心绘制文本
func DrawTextCentered(screen *ebiten.Image, s string, font *text.GoTextFace, cx, cy float64, clr color.Color) {
	if font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, font, op)
}
