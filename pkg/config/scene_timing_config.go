package config

import "time"

// 场景时序配置
// 自动跳转与结尾动画的延迟全部从触发时刻（进入场景或点击）开始计算，彼此独立

const (
	// IntroAutoAdvanceDelay 开场自动跳转到详情页的延迟
	IntroAutoAdvanceDelay = 3000 * time.Millisecond

	// DetailsAutoAdvanceDelay 详情页自动跳转到结尾的延迟
	DetailsAutoAdvanceDelay = 4000 * time.Millisecond
)

// 入场动画时长（秒，仅用于绘制，不影响跳转时序）
const (
	// IntroEntranceDuration 开场淡入+缩放时长
	IntroEntranceDuration = 1.5

	// DetailsEntranceDuration 详情页淡入+上滑时长
	DetailsEntranceDuration = 1.2

	// FinaleEntranceDuration 结尾淡入时长
	FinaleEntranceDuration = 1.5

	// ImageRevealDuration 庆祝图片淡入+放大时长
	ImageRevealDuration = 1.0

	// ViewDetailsEntranceDuration "View Details" 按钮滑入时长
	ViewDetailsEntranceDuration = 0.8

	// FlashOverlayDuration 白色闪光叠加层关键帧动画时长
	FlashOverlayDuration = 0.5

	// LightningFallDuration 闪电从屏幕上方落到底部的时长（与闪电显示时间一致）
	LightningFallDuration = 0.6
)

// 结尾交互时序（相对同一次点击）
const (
	// FlashClearDelay 闪光清除延迟
	FlashClearDelay = 300 * time.Millisecond

	// ImageRevealDelay 图片出现延迟
	ImageRevealDelay = 400 * time.Millisecond

	// StrikeClearDelay 闪电清除延迟
	StrikeClearDelay = 600 * time.Millisecond

	// SecondaryButtonDelay "View Details" 按钮出现延迟
	SecondaryButtonDelay = 1600 * time.Millisecond

	// ReturnNavigationDelay 点击 "View Details" 后返回详情页的延迟
	ReturnNavigationDelay = 400 * time.Millisecond
)

// FlashOverlayKeyframes 闪光叠加层的不透明度关键帧，均匀分布在 FlashOverlayDuration 内
var FlashOverlayKeyframes = []float64{0.9, 0, 0.6, 0}

// 背景音乐渐变配置
const (
	// MusicFadeStep 每次渐变调整的音量
	MusicFadeStep = 0.05

	// MusicFadeInInterval 淡入步进间隔
	MusicFadeInInterval = 200 * time.Millisecond

	// MusicFadeOutInterval 淡出步进间隔
	MusicFadeOutInterval = 150 * time.Millisecond

	// MusicVolumeCeiling 淡入的目标音量上限
	MusicVolumeCeiling = 0.5

	// MusicVolumeFloor 淡出的目标音量下限
	MusicVolumeFloor = 0.0
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000
