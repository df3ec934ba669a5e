package scenes

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/decker502/invite/pkg/components"
	"github.com/decker502/invite/pkg/config"
	"github.com/decker502/invite/pkg/game"
	"github.com/decker502/invite/pkg/systems"
	"github.com/decker502/invite/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 标题旁的闪电图标（相对图标左上角，单位像素）
var titleBoltPoints = [][2]float32{
	{14, 0}, {4, 18}, {12, 18}, {6, 34}, {22, 12}, {14, 12}, {20, 0},
}

const (
	titleBoltWidth = 22.0
	titleBoltGap   = 12.0
)

// imageRevealStartScale 庆祝图片出现时的初始缩放
const imageRevealStartScale = 0.5

// FinaleScene 结尾场景
//
// 布局：顶部标题，标题下方 "Celebrate" 按钮，点击后出现庆祝图片，
// 稍后左下角滑入 "View Details" 按钮，点击后返回详情页。
// 交互时序由 FinaleController 负责，本场景只根据它的状态绘制。
type FinaleScene struct {
	nav        game.Navigator
	theme      *Theme
	scheduler  *game.Scheduler
	controller *FinaleController

	celebrateButton   *components.ButtonComponent
	viewDetailsButton *components.ButtonComponent
	buttonSystem      *systems.ButtonSystem
	buttonRenderer    *systems.ButtonRenderSystem
	flashSystem       *systems.FlashEffectSystem
	lightningSystem   *systems.LightningSystem

	imagePath     string
	rm            *game.ResourceManager
	image         *ebiten.Image // 圆角处理后的图片，首次绘制时生成
	imageElapsed  float64       // 图片出现后经过的时间（秒）
	buttonElapsed float64       // View Details 按钮出现后经过的时间（秒）

	elapsedTime float64
}

// NewFinaleScene 创建结尾场景
func NewFinaleScene(nav game.Navigator, theme *Theme, rm *game.ResourceManager) *FinaleScene {
	scheduler := game.NewScheduler()
	s := &FinaleScene{
		nav:        nav,
		theme:      theme,
		scheduler:  scheduler,
		controller: NewFinaleController(scheduler, nav),
		imagePath:  theme.Config.Resources.CelebrationImage,
		rm:         rm,
	}

	s.celebrateButton = &components.ButtonComponent{
		Label:      theme.Config.Finale.CelebrateLabel,
		Font:       theme.ButtonFont,
		TextColor:  color.Black,
		FillColor:  theme.Accent,
		CenterX:    config.GameWindowWidth / 2,
		CenterY:    config.CelebrateButtonY,
		Width:      config.CelebrateButtonWidth,
		Height:     config.CelebrateButtonHeight,
		HoverScale: config.ButtonHoverScale,
		Alpha:      1,
		Enabled:    true,
		Visible:    true,
		OnClick: func() {
			s.controller.Celebrate()
		},
	}
	s.viewDetailsButton = &components.ButtonComponent{
		Label:       theme.Config.Finale.ViewDetailsLabel,
		Font:        theme.ButtonFont,
		TextColor:   theme.Accent,
		FillColor:   color.Black,
		BorderColor: theme.Accent,
		BorderWidth: 2,
		CenterX:     config.ViewDetailsButtonX,
		CenterY:     config.ViewDetailsButtonY,
		Width:       config.ViewDetailsButtonWidth,
		Height:      config.ViewDetailsButtonHeight,
		OffsetY:     config.ViewDetailsSlideDistance,
		HoverScale:  config.ButtonHoverScale,
		OnClick: func() {
			s.controller.ViewDetails()
		},
	}
	s.buttonSystem = systems.NewButtonSystem(s.celebrateButton, s.viewDetailsButton)
	s.buttonRenderer = systems.NewButtonRenderSystem(s.celebrateButton, s.viewDetailsButton)

	s.flashSystem = systems.NewFlashEffectSystem(&components.FlashEffectComponent{
		Keyframes: config.FlashOverlayKeyframes,
		Duration:  config.FlashOverlayDuration,
	})
	seed := uint64(time.Now().UnixNano())
	s.lightningSystem = systems.NewLightningSystem(systems.LightningConfig{
		Count:        config.LightningBoltCount,
		Segments:     config.LightningBoltSegments,
		Width:        config.LightningBoltWidth,
		Duration:     config.LightningFallDuration,
		ScreenWidth:  config.GameWindowWidth,
		ScreenHeight: config.GameWindowHeight,
		Color:        theme.Accent,
	}, rand.New(rand.NewPCG(seed, seed>>1)))

	s.controller.SetEffectHook(func() {
		s.flashSystem.Trigger()
		s.lightningSystem.Trigger()
	})
	return s
}

// Controller 返回交互状态机
func (s *FinaleScene) Controller() *FinaleController {
	return s.controller
}

// OnEnter 重置到初始状态
func (s *FinaleScene) OnEnter() {
	s.elapsedTime = 0
	s.controller.Reset()
	s.syncWidgets(0)
}

// OnExit 取消所有尚未触发的定时任务
func (s *FinaleScene) OnExit() {
	s.controller.Reset()
	s.flashSystem.Stop()
	s.lightningSystem.Stop()
}

// HandlePointer 把指针输入交给按钮系统
func (s *FinaleScene) HandlePointer(x, y int, justPressed bool) bool {
	return s.buttonSystem.Update(utils.InputState{JustPressed: justPressed, X: x, Y: y})
}

// Update 推进定时器和效果动画
func (s *FinaleScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime
	s.scheduler.Update(deltaTime)

	s.flashSystem.Update(deltaTime)
	s.lightningSystem.Update(deltaTime)
	if !s.controller.FlashActive() {
		s.flashSystem.Stop()
	}
	if !s.controller.StrikeActive() {
		s.lightningSystem.Stop()
	}

	s.syncWidgets(deltaTime)
}

// syncWidgets 根据控制器状态更新按钮与图片的动画进度
func (s *FinaleScene) syncWidgets(deltaTime float64) {
	if s.controller.ImageVisible() {
		s.imageElapsed += deltaTime
	} else {
		s.imageElapsed = 0
	}

	vd := s.viewDetailsButton
	if s.controller.SecondaryButtonVisible() {
		s.buttonElapsed += deltaTime
		p := utils.EaseOutCubic(utils.Progress(s.buttonElapsed, config.ViewDetailsEntranceDuration))
		vd.Visible = true
		vd.Alpha = p
		vd.OffsetY = utils.Lerp(config.ViewDetailsSlideDistance, 0, p)
	} else {
		s.buttonElapsed = 0
		vd.Visible = false
		vd.Alpha = 0
		vd.OffsetY = config.ViewDetailsSlideDistance
	}
	vd.Enabled = s.controller.State() != FinaleReturning
	s.celebrateButton.Enabled = s.controller.State() != FinaleReturning
}

// Draw 绘制结尾场景
// 顺序：背景 → 标题 → 图片 → 按钮 → 闪电 → 闪光
func (s *FinaleScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.theme.Background)

	alpha := utils.EaseOutCubic(utils.Progress(s.elapsedTime, config.FinaleEntranceDuration))
	s.drawTitle(screen, alpha)

	if s.controller.ImageVisible() {
		s.drawImage(screen)
	}

	s.celebrateButton.Alpha = alpha
	s.buttonRenderer.Draw(screen)

	s.lightningSystem.Draw(screen)
	s.flashSystem.Draw(screen)
}

func (s *FinaleScene) drawTitle(screen *ebiten.Image, alpha float64) {
	line := s.theme.Config.Finale.Line
	width, _ := text.Measure(line, s.theme.FinaleFont, 0)
	total := width + titleBoltGap + titleBoltWidth
	left := float64(config.GameWindowWidth)/2 - total/2

	utils.DrawCenteredText(screen, line, s.theme.FinaleFont, left+width/2, config.FinaleTitleY, utils.TextStyle{
		Color:  s.theme.Accent,
		Alpha:  alpha,
		Shadow: true,
	})

	clr := utils.WithAlpha(s.theme.Accent, alpha)
	ox := float32(left + width + titleBoltGap)
	oy := float32(config.FinaleTitleY - 17)
	for i := 1; i < len(titleBoltPoints); i++ {
		p0, p1 := titleBoltPoints[i-1], titleBoltPoints[i]
		vector.StrokeLine(screen, ox+p0[0], oy+p0[1], ox+p1[0], oy+p1[1], 3, clr, true)
	}
}

// drawImage 绘制庆祝图片（放大+淡入）
func (s *FinaleScene) drawImage(screen *ebiten.Image) {
	if s.image == nil {
		// RoundCorners 只用 GPU 绘制，放在首次绘制时生成
		src := s.rm.LoadImageOrPlaceholder(s.imagePath)
		s.image = utils.RoundCorners(src, config.CelebrationImageCornerRadius)
	}

	p := utils.EaseOutQuad(utils.Progress(s.imageElapsed, config.ImageRevealDuration))
	bounds := s.image.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	fit := utils.FitWithin(w, h, config.CelebrationImageMaxWidth, config.CelebrationImageMaxHeight)
	scale := fit * utils.Lerp(imageRevealStartScale, 1.0, p)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(config.GameWindowWidth/2, config.CelebrationImageCenterY)
	op.ColorScale.ScaleAlpha(float32(p))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.image, op)
}
