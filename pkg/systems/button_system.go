package systems

import (
	"github.com/decker502/invite/pkg/components"
	"github.com/decker502/invite/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测点击/触摸（触发 OnClick 回调）
//   - 根据 Enabled / Visible 状态决定是否响应交互
type ButtonSystem struct {
	buttons []*components.ButtonComponent
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(buttons ...*components.ButtonComponent) *ButtonSystem {
	return &ButtonSystem{
		buttons: buttons,
	}
}

// Update 根据本帧输入更新按钮状态并触发回调
// 返回 true 表示点击被某个按钮消费（每帧最多一个按钮响应）
func (s *ButtonSystem) Update(input utils.InputState) bool {
	consumed := false

	for _, button := range s.buttons {
		if !button.Visible {
			button.State = components.UINormal
			continue
		}
		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !IsPointInButton(button, float64(input.X), float64(input.Y)) {
			button.State = components.UINormal
			continue
		}

		if input.JustPressed && !consumed {
			consumed = true
			button.State = components.UIClicked
			if button.OnClick != nil {
				button.OnClick()
			}
			continue
		}
		button.State = components.UIHovered
	}

	return consumed
}

// IsPointInButton 检测点是否在按钮范围内（未缩放尺寸，含入场偏移）
func IsPointInButton(button *components.ButtonComponent, x, y float64) bool {
	left := button.CenterX - button.Width/2
	top := button.CenterY + button.OffsetY - button.Height/2
	return x >= left &&
		x <= left+button.Width &&
		y >= top &&
		y <= top+button.Height
}

// ButtonScale 返回按钮当前的绘制缩放
func ButtonScale(button *components.ButtonComponent) float64 {
	if button.HoverScale > 1 && (button.State == components.UIHovered || button.State == components.UIClicked) {
		return button.HoverScale
	}
	return 1
}
