package systems

import (
	"math"

	"github.com/decker502/invite/pkg/components"
	"github.com/decker502/invite/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染胶囊形文字按钮
//
// 职责：
//   - 按最大缩放尺寸预渲染按钮背景（填充 + 边框），之后按状态缩放绘制
//   - 渲染按钮文字（居中，带阴影效果）
//   - 应用入场偏移和整体不透明度
type ButtonRenderSystem struct {
	buttons    []*components.ButtonComponent
	background map[*components.ButtonComponent]*ebiten.Image
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(buttons ...*components.ButtonComponent) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		buttons:    buttons,
		background: make(map[*components.ButtonComponent]*ebiten.Image),
	}
}

// Draw 渲染所有可见按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, button := range s.buttons {
		s.DrawButton(screen, button)
	}
}

// DrawButton 渲染单个按钮
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, button *components.ButtonComponent) {
	if !button.Visible || button.Alpha <= 0 {
		return
	}

	scale := ButtonScale(button)
	centerY := button.CenterY + button.OffsetY

	// 渲染按钮背景
	bg := s.backgroundFor(button)
	base := maxButtonScale(button)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bg.Bounds().Dx())/2, -float64(bg.Bounds().Dy())/2)
	op.GeoM.Scale(scale/base, scale/base)
	op.GeoM.Translate(button.CenterX, centerY)
	op.ColorScale.ScaleAlpha(float32(button.Alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(bg, op)

	// 渲染按钮文字
	utils.DrawCenteredText(screen, button.Label, button.Font, button.CenterX, centerY, utils.TextStyle{
		Color: button.TextColor,
		Alpha: button.Alpha,
		Scale: scale,
	})
}

// backgroundFor 返回（必要时创建）按钮背景图
func (s *ButtonRenderSystem) backgroundFor(button *components.ButtonComponent) *ebiten.Image {
	if img, ok := s.background[button]; ok {
		return img
	}
	base := maxButtonScale(button)
	width := int(math.Ceil(button.Width * base))
	height := int(math.Ceil(button.Height * base))
	img := utils.NewPillImage(width, height, button.FillColor, button.BorderColor, button.BorderWidth*base)
	s.background[button] = img
	return img
}

// maxButtonScale 预渲染使用的缩放，保证悬停放大时不模糊
func maxButtonScale(button *components.ButtonComponent) float64 {
	if button.HoverScale > 1 {
		return button.HoverScale
	}
	return 1
}
