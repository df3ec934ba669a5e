package systems

import (
	"image/color"

	"github.com/decker502/invite/pkg/components"
	"github.com/decker502/invite/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FlashEffectSystem 全屏闪光系统
// 管理闪光叠加层的生命周期和绘制
type FlashEffectSystem struct {
	flash *components.FlashEffectComponent
	color color.Color
}

// NewFlashEffectSystem 创建闪光系统
func NewFlashEffectSystem(flash *components.FlashEffectComponent) *FlashEffectSystem {
	return &FlashEffectSystem{
		flash: flash,
		color: color.White,
	}
}

// Trigger 从头播放闪光动画（重复触发会重新开始）
func (s *FlashEffectSystem) Trigger() {
	s.flash.Elapsed = 0
	s.flash.IsActive = true
}

// Stop 立即隐藏闪光
func (s *FlashEffectSystem) Stop() {
	s.flash.IsActive = false
}

// Update 推进闪光动画
// 参数：
//   - dt: 时间增量（秒）
func (s *FlashEffectSystem) Update(dt float64) {
	if !s.flash.IsActive {
		return
	}
	s.flash.Elapsed += dt
	if s.flash.Elapsed >= s.flash.Duration {
		s.flash.IsActive = false
	}
}

// Alpha 当前叠加层不透明度
func (s *FlashEffectSystem) Alpha() float64 {
	if !s.flash.IsActive {
		return 0
	}
	return utils.Keyframes(s.flash.Keyframes, utils.Progress(s.flash.Elapsed, s.flash.Duration))
}

// Draw 在整个屏幕上叠加白色闪光
func (s *FlashEffectSystem) Draw(screen *ebiten.Image) {
	alpha := s.Alpha()
	if alpha <= 0 {
		return
	}
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), utils.WithAlpha(s.color, alpha), false)
}
