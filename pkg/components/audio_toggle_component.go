package components

import "image/color"

// AudioToggleComponent 右下角的圆形背景音乐开关
type AudioToggleComponent struct {
	// CenterX, CenterY 圆心
	CenterX, CenterY float64
	// Radius 半径
	Radius float64
	// BorderColor 边框与图标颜色
	BorderColor color.Color
	// FillColor 背景颜色
	FillColor color.Color
	// Playing 当前是否在播放（决定图标和提示文字）
	Playing bool
	// State 悬停状态，悬停时显示提示文字
	State UIState
}
