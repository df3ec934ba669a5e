package utils

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按单词换行，使每行宽度不超过 maxWidth
//
// 换行规则:
//   - 只在空格处断行
//   - 单个单词超过最大宽度时独占一行，不再拆分
//
// 返回值至少包含一行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil || maxWidth <= 0 || measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		if current == "" {
			current = word
			continue
		}
		candidate := current + " " + word
		if measureTextWidth(candidate, font) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" || len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// TextStyle 居中文字的绘制参数
type TextStyle struct {
	Color  color.Color
	Alpha  float64 // 整体不透明度
	Scale  float64 // 以 (cx, cy) 为中心缩放，0 视为 1
	Shadow bool    // 是否绘制右下偏移的半透明阴影
}

// textShadowOffset 阴影偏移量
const textShadowOffset = 2.0

// DrawCenteredText 以 (cx, cy) 为中心绘制一行文字
func DrawCenteredText(dst *ebiten.Image, str string, face *text.GoTextFace, cx, cy float64, style TextStyle) {
	if str == "" || face == nil || style.Alpha <= 0 {
		return
	}
	scale := style.Scale
	if scale == 0 {
		scale = 1
	}

	if style.Shadow {
		shadowOp := &text.DrawOptions{}
		shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
		shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
		shadowOp.GeoM.Scale(scale, scale)
		shadowOp.GeoM.Translate(cx+textShadowOffset, cy+textShadowOffset)
		shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
		shadowOp.ColorScale.ScaleAlpha(float32(style.Alpha))
		text.Draw(dst, str, face, shadowOp)
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	if style.Color != nil {
		op.ColorScale.ScaleWithColor(style.Color)
	}
	op.ColorScale.ScaleAlpha(float32(style.Alpha))
	text.Draw(dst, str, face, op)
}

// DrawCenteredLines 绘制多行居中文字，cy 为整体中心
func DrawCenteredLines(dst *ebiten.Image, lines []string, face *text.GoTextFace, cx, cy, lineGap float64, style TextStyle) {
	if face == nil || len(lines) == 0 {
		return
	}
	lineHeight := face.Size + lineGap
	top := cy - lineHeight*float64(len(lines)-1)/2
	for i, line := range lines {
		DrawCenteredText(dst, line, face, cx, top+lineHeight*float64(i), style)
	}
}
