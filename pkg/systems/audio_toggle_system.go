package systems

import (
	"image/color"

	"github.com/decker502/invite/pkg/components"
	"github.com/decker502/invite/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 开关按钮提示文字
const (
	AudioToggleTooltipPlaying = "Mute"
	AudioToggleTooltipMuted   = "Play Music"
)

// audioToggleBorderWidth 圆形边框宽度
const audioToggleBorderWidth = 3.0

// AudioToggleSystem 背景音乐开关系统
// 负责开关按钮的命中检测、悬停状态和绘制；播放逻辑由调用者处理
type AudioToggleSystem struct {
	toggle      *components.AudioToggleComponent
	tooltipFont *text.GoTextFace
}

// NewAudioToggleSystem 创建开关系统
func NewAudioToggleSystem(toggle *components.AudioToggleComponent, tooltipFont *text.GoTextFace) *AudioToggleSystem {
	return &AudioToggleSystem{
		toggle:      toggle,
		tooltipFont: tooltipFont,
	}
}

// Update 更新悬停状态并返回本帧是否点击了开关
func (s *AudioToggleSystem) Update(input utils.InputState, playing bool) bool {
	s.toggle.Playing = playing

	if !input.InCircle(s.toggle.CenterX, s.toggle.CenterY, s.toggle.Radius) {
		s.toggle.State = components.UINormal
		return false
	}
	if input.JustPressed {
		s.toggle.State = components.UIClicked
		return true
	}
	s.toggle.State = components.UIHovered
	return false
}

// Tooltip 返回当前提示文字
func (s *AudioToggleSystem) Tooltip() string {
	if s.toggle.Playing {
		return AudioToggleTooltipPlaying
	}
	return AudioToggleTooltipMuted
}

// Draw 绘制开关按钮（圆形边框 + 喇叭图标 + 悬停提示）
func (s *AudioToggleSystem) Draw(screen *ebiten.Image) {
	t := s.toggle
	cx, cy, r := float32(t.CenterX), float32(t.CenterY), float32(t.Radius)

	vector.DrawFilledCircle(screen, cx, cy, r, t.BorderColor, true)
	vector.DrawFilledCircle(screen, cx, cy, r-audioToggleBorderWidth, t.FillColor, true)

	s.drawSpeaker(screen, cx, cy, r)

	if t.State == components.UIHovered && s.tooltipFont != nil && !utils.IsMobile() {
		utils.DrawCenteredText(screen, s.Tooltip(), s.tooltipFont, t.CenterX, t.CenterY-t.Radius-14, utils.TextStyle{
			Color:  color.White,
			Alpha:  1,
			Shadow: true,
		})
	}
}

// drawSpeaker 绘制喇叭图标；播放中画声波，静音时画叉
func (s *AudioToggleSystem) drawSpeaker(screen *ebiten.Image, cx, cy, r float32) {
	clr := s.toggle.BorderColor
	unit := r / 6
	left := cx - 2.5*unit

	// 喇叭主体
	vector.DrawFilledRect(screen, left, cy-unit, unit*1.2, unit*2, clr, true)

	// 喇叭口（梯形轮廓）
	mouthX := left + unit*1.2
	mouthEnd := mouthX + unit*1.6
	vector.StrokeLine(screen, mouthX, cy-unit, mouthEnd, cy-2.2*unit, 2, clr, true)
	vector.StrokeLine(screen, mouthX, cy+unit, mouthEnd, cy+2.2*unit, 2, clr, true)
	vector.StrokeLine(screen, mouthEnd, cy-2.2*unit, mouthEnd, cy+2.2*unit, 2, clr, true)

	waveX := mouthEnd + unit*0.8
	if s.toggle.Playing {
		// 两道声波，用折线近似弧形
		for i, size := range []float32{1.0, 1.8} {
			x := waveX + float32(i)*unit*0.9
			vector.StrokeLine(screen, x, cy-size*unit, x+unit*0.5, cy, 2, clr, true)
			vector.StrokeLine(screen, x+unit*0.5, cy, x, cy+size*unit, 2, clr, true)
		}
		return
	}

	// 静音叉号
	vector.StrokeLine(screen, waveX, cy-unit, waveX+2*unit, cy+unit, 2, clr, true)
	vector.StrokeLine(screen, waveX, cy+unit, waveX+2*unit, cy-unit, 2, clr, true)
}
