package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 胶囊形文字按钮
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，交互由 ButtonSystem 处理，绘制由 ButtonRenderSystem 处理
//   - 坐标为按钮中心点，悬停放大以中心为锚点
type ButtonComponent struct {
	// ===== 按钮文字 =====
	// Label 按钮上显示的文字
	Label string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.Color

	// ===== 外观 =====
	// FillColor 填充颜色
	FillColor color.Color
	// BorderColor 边框颜色（nil 表示无边框）
	BorderColor color.Color
	// BorderWidth 边框宽度（像素）
	BorderWidth float64

	// ===== 位置与尺寸 =====
	// CenterX, CenterY 按钮中心（逻辑屏幕坐标）
	CenterX, CenterY float64
	// Width, Height 未缩放时的尺寸
	Width, Height float64
	// OffsetY 入场动画的额外垂直偏移
	OffsetY float64
	// HoverScale 悬停时的缩放倍数（<= 1 表示不缩放）
	HoverScale float64
	// Alpha 整体不透明度（0.0 - 1.0）
	Alpha float64

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Visible 是否显示（隐藏时既不绘制也不响应点击）
	Visible bool

	// ===== 点击回调 =====
	// OnClick 点击回调函数
	OnClick func()
}
