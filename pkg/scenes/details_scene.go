package scenes

import (
	"github.com/decker502/invite/pkg/config"
	"github.com/decker502/invite/pkg/game"
	"github.com/decker502/invite/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// DetailsScene 详情场景
// 两行文字淡入并从下方 50 像素滑入，4 秒后自动跳转到结尾
type DetailsScene struct {
	nav       game.Navigator
	theme     *Theme
	scheduler *game.Scheduler

	elapsedTime float64
	autoAdvance game.TimerID
}

// NewDetailsScene 创建详情场景
func NewDetailsScene(nav game.Navigator, theme *Theme) *DetailsScene {
	return &DetailsScene{
		nav:       nav,
		theme:     theme,
		scheduler: game.NewScheduler(),
	}
}

// OnEnter 调度自动跳转
func (s *DetailsScene) OnEnter() {
	s.elapsedTime = 0
	s.autoAdvance = s.scheduler.After(config.DetailsAutoAdvanceDelay, func() {
		navigate(s.nav, game.SceneFinale)
	})
}

// OnExit 取消尚未触发的跳转
func (s *DetailsScene) OnExit() {
	s.scheduler.Clear()
}

// AutoAdvancePending 自动跳转是否仍在等待
func (s *DetailsScene) AutoAdvancePending() bool {
	return s.scheduler.Pending(s.autoAdvance)
}

// Update 推进入场动画和定时器
func (s *DetailsScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime
	s.scheduler.Update(deltaTime)
}

// Draw 绘制金色标语和时间
func (s *DetailsScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.theme.Background)

	p := utils.EaseOutCubic(utils.Progress(s.elapsedTime, config.DetailsEntranceDuration))
	offsetY := (1 - p) * config.DetailsSlideDistance

	tagline := s.theme.TaglineFont
	when := s.theme.WhenFont
	totalHeight := tagline.Size + config.TextLineGap + when.Size
	top := config.GameWindowHeight/2 - totalHeight/2 + offsetY

	utils.DrawCenteredText(screen, s.theme.Config.Details.Tagline, tagline,
		config.GameWindowWidth/2, top+tagline.Size/2,
		utils.TextStyle{Color: s.theme.Accent, Alpha: p, Shadow: true})
	utils.DrawCenteredText(screen, s.theme.Config.Details.When, when,
		config.GameWindowWidth/2, top+tagline.Size+config.TextLineGap+when.Size/2,
		utils.TextStyle{Color: s.theme.Text, Alpha: p, Shadow: true})
}
