package utils

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FitWithin 计算等比缩放系数，使 w×h 的图片不超过 maxW×maxH
// 只缩小不放大；尺寸无效时返回 1
func FitWithin(w, h, maxW, maxH float64) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	scale := math.Min(maxW/w, maxH/h)
	if scale > 1 {
		return 1
	}
	return scale
}

// WithAlpha 按不透明度缩放颜色（预乘 alpha）
func WithAlpha(c color.Color, alpha float64) color.Color {
	alpha = Clamp01(alpha)
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}

// DrawRoundedRect 绘制填充圆角矩形
// 由两个矩形和四个圆拼成，颜色需不透明，半透明请先画到离屏图片再整体缩放 alpha
func DrawRoundedRect(dst *ebiten.Image, x, y, width, height, radius float64, clr color.Color) {
	radius = math.Min(radius, math.Min(width, height)/2)
	x32, y32 := float32(x), float32(y)
	w32, h32, r32 := float32(width), float32(height), float32(radius)

	vector.DrawFilledRect(dst, x32+r32, y32, w32-2*r32, h32, clr, true)
	vector.DrawFilledRect(dst, x32, y32+r32, w32, h32-2*r32, clr, true)
	if r32 <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, x32+r32, y32+r32, r32, clr, true)
	vector.DrawFilledCircle(dst, x32+w32-r32, y32+r32, r32, clr, true)
	vector.DrawFilledCircle(dst, x32+r32, y32+h32-r32, r32, clr, true)
	vector.DrawFilledCircle(dst, x32+w32-r32, y32+h32-r32, r32, clr, true)
}

// NewPillImage 创建胶囊形图片（半径为高度的一半），可选边框
func NewPillImage(width, height int, fill, border color.Color, borderWidth float64) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	w, h := float64(width), float64(height)
	if border != nil && borderWidth > 0 {
		DrawRoundedRect(img, 0, 0, w, h, h/2, border)
		DrawRoundedRect(img, borderWidth, borderWidth, w-2*borderWidth, h-2*borderWidth, (h-2*borderWidth)/2, fill)
		return img
	}
	DrawRoundedRect(img, 0, 0, w, h, h/2, fill)
	return img
}

// RoundCorners 返回一张带圆角的新图片
// 先绘制不透明的圆角蒙板，再用 BlendSourceIn 只保留蒙板内的源像素
func RoundCorners(src *ebiten.Image, radius float64) *ebiten.Image {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	dst := ebiten.NewImage(bounds.Dx(), bounds.Dy())
	DrawRoundedRect(dst, 0, 0, float64(bounds.Dx()), float64(bounds.Dy()), radius, color.White)

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendSourceIn
	dst.DrawImage(src, op)
	return dst
}
