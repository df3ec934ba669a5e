package scenes

import (
	"github.com/decker502/invite/pkg/config"
	"github.com/decker502/invite/pkg/game"
	"github.com/decker502/invite/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// IntroScene 开场场景
// 标题淡入并从 0.8 放大到 1.0，3 秒后自动跳转到详情页
type IntroScene struct {
	nav       game.Navigator
	theme     *Theme
	scheduler *game.Scheduler

	elapsedTime float64 // 进入场景后经过的时间（秒）
	autoAdvance game.TimerID
	lines       []string
}

// NewIntroScene 创建开场场景
func NewIntroScene(nav game.Navigator, theme *Theme) *IntroScene {
	return &IntroScene{
		nav:       nav,
		theme:     theme,
		scheduler: game.NewScheduler(),
		lines:     utils.WrapText(theme.Config.Intro.Headline, theme.HeadlineFont, config.GameWindowWidth*0.9),
	}
}

// OnEnter 调度自动跳转
func (s *IntroScene) OnEnter() {
	s.elapsedTime = 0
	s.autoAdvance = s.scheduler.After(config.IntroAutoAdvanceDelay, func() {
		navigate(s.nav, game.SceneDetails)
	})
}

// OnExit 取消尚未触发的跳转
func (s *IntroScene) OnExit() {
	s.scheduler.Clear()
}

// AutoAdvancePending 自动跳转是否仍在等待
func (s *IntroScene) AutoAdvancePending() bool {
	return s.scheduler.Pending(s.autoAdvance)
}

// Update 推进入场动画和定时器
func (s *IntroScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime
	s.scheduler.Update(deltaTime)
}

// Draw 绘制背景和标题
func (s *IntroScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.theme.Background)

	p := utils.EaseOutCubic(utils.Progress(s.elapsedTime, config.IntroEntranceDuration))
	utils.DrawCenteredLines(screen, s.lines, s.theme.HeadlineFont,
		config.GameWindowWidth/2, config.GameWindowHeight/2, config.TextLineGap,
		utils.TextStyle{
			Color:  s.theme.Text,
			Alpha:  p,
			Scale:  utils.Lerp(config.IntroStartScale, 1.0, p),
			Shadow: true,
		})
}
