package config

// 布局配置常量
// 本文件定义了邀请函各场景中的布局参数，所有坐标都是逻辑屏幕坐标

// 窗口配置
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "You're Invited"
)

// 文字配置
const (
	// HeadlineFontSize 开场标题字号
	HeadlineFontSize = 48.0

	// TaglineFontSize 详情页第一行字号
	TaglineFontSize = 35.0

	// WhenFontSize 详情页时间行字号
	WhenFontSize = 29.0

	// FinaleFontSize 结尾标题字号
	FinaleFontSize = 40.0

	// ButtonFontSize 按钮文字字号
	ButtonFontSize = 19.0

	// TooltipFontSize 音乐开关提示文字字号
	TooltipFontSize = 14.0

	// TextLineGap 详情页两行文字之间的距离
	TextLineGap = 16.0
)

// 结尾场景控件布局
const (
	// FinaleTitleY 结尾标题的垂直中心
	FinaleTitleY = 110.0

	// CelebrateButtonWidth "Celebrate" 按钮宽度
	CelebrateButtonWidth = 190.0

	// CelebrateButtonHeight "Celebrate" 按钮高度
	CelebrateButtonHeight = 54.0

	// CelebrateButtonY "Celebrate" 按钮中心 Y（标题下方 2rem）
	CelebrateButtonY = 180.0

	// ViewDetailsButtonWidth "View Details" 按钮宽度
	ViewDetailsButtonWidth = 170.0

	// ViewDetailsButtonHeight "View Details" 按钮高度
	ViewDetailsButtonHeight = 46.0

	// ViewDetailsButtonX 按钮中心 X（左边缘位于屏幕宽度的 10%）
	ViewDetailsButtonX = GameWindowWidth*0.1 + ViewDetailsButtonWidth/2

	// ViewDetailsButtonY 按钮中心 Y（贴近屏幕底部）
	ViewDetailsButtonY = GameWindowHeight - 50.0

	// ViewDetailsSlideDistance 按钮出现时向上滑入的距离
	ViewDetailsSlideDistance = 30.0

	// ButtonHoverScale 悬停时按钮放大倍数
	ButtonHoverScale = 1.1

	// CelebrationImageMaxWidth 庆祝图片最大宽度（不超过屏幕宽度的 80%）
	CelebrationImageMaxWidth = 400.0

	// CelebrationImageMaxHeight 图片最大高度，保证按钮和标题仍然可见
	CelebrationImageMaxHeight = 320.0

	// CelebrationImageCenterY 图片中心 Y
	CelebrationImageCenterY = 385.0

	// CelebrationImageCornerRadius 图片圆角半径
	CelebrationImageCornerRadius = 20.0
)

// 背景音乐开关按钮布局（右下角固定的 60x60 圆形）
const (
	// AudioToggleSize 按钮直径
	AudioToggleSize = 60.0

	// AudioToggleMargin 距离右下角的边距
	AudioToggleMargin = 20.0

	// AudioToggleCenterX 按钮中心 X
	AudioToggleCenterX = GameWindowWidth - AudioToggleMargin - AudioToggleSize/2

	// AudioToggleCenterY 按钮中心 Y
	AudioToggleCenterY = GameWindowHeight - AudioToggleMargin - AudioToggleSize/2
)

// 闪电效果配置
const (
	// LightningBoltCount 同时下落的闪电数量
	LightningBoltCount = 2

	// LightningBoltSegments 每道闪电的折线段数
	LightningBoltSegments = 7

	// LightningBoltWidth 闪电线宽
	LightningBoltWidth = 4.0
)

// DetailsSlideDistance 详情页文字从下方滑入的距离
const DetailsSlideDistance = 50.0

// IntroStartScale 开场标题的初始缩放
const IntroStartScale = 0.8
