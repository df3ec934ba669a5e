package scenes

import (
	"log"

	"github.com/decker502/invite/pkg/config"
	"github.com/decker502/invite/pkg/game"
)

// FinaleState 结尾交互状态
type FinaleState int

const (
	// FinaleIdle 等待点击 Celebrate
	FinaleIdle FinaleState = iota
	// FinaleFlashing 闪光/闪电效果进行中，图片尚未出现
	FinaleFlashing
	// FinaleRevealing 庆祝图片已出现
	FinaleRevealing
	// FinaleReady "View Details" 按钮已出现
	FinaleReady
	// FinaleReturning 已点击 View Details，正在返回详情页（终态）
	FinaleReturning
)

func (s FinaleState) String() string {
	switch s {
	case FinaleIdle:
		return "Idle"
	case FinaleFlashing:
		return "Flashing"
	case FinaleRevealing:
		return "Revealing"
	case FinaleReady:
		return "Ready"
	case FinaleReturning:
		return "Returning"
	default:
		return "Unknown"
	}
}

// FinaleController 结尾场景的交互状态机
//
// 状态转换（延迟均从同一次点击开始计算，各自独立调度）：
//
//	Idle --Celebrate--> Flashing   闪光 300ms 后清除，闪电 600ms 后清除
//	     +400ms ------> Revealing  显示庆祝图片
//	     +1600ms -----> Ready      显示 View Details 按钮
//	Ready --ViewDetails--> Returning  重新触发效果，400ms 后跳转到详情页
//
// 重复点击 Celebrate 会重新开始闪光/闪电的清除计时，已经显示的内容保持显示。
// 控制器不绘制任何东西，场景根据可见性标志渲染。
type FinaleController struct {
	scheduler *game.Scheduler
	nav       game.Navigator

	flashActive            bool
	strikeActive           bool
	imageVisible           bool
	secondaryButtonVisible bool
	returning              bool

	flashTimer  game.TimerID
	strikeTimer game.TimerID

	onEffects func()
}

// NewFinaleController 创建状态机
// scheduler 归属于结尾场景，场景退出时由场景清空
func NewFinaleController(scheduler *game.Scheduler, nav game.Navigator) *FinaleController {
	return &FinaleController{
		scheduler: scheduler,
		nav:       nav,
	}
}

// SetEffectHook 设置每次触发闪光/闪电时的回调（场景用来重新开始动画）
func (c *FinaleController) SetEffectHook(fn func()) {
	c.onEffects = fn
}

// Celebrate 处理 Celebrate 按钮点击
// 返回 false 表示当前状态不接受该操作（正在返回）
func (c *FinaleController) Celebrate() bool {
	if c.returning {
		return false
	}

	c.triggerEffects()
	c.scheduler.After(config.ImageRevealDelay, func() {
		c.imageVisible = true
	})
	c.scheduler.After(config.SecondaryButtonDelay, func() {
		c.secondaryButtonVisible = true
	})

	log.Printf("[Finale] Celebrate at %v (state %s)", c.scheduler.Now(), c.State())
	return true
}

// ViewDetails 处理 View Details 按钮点击
// 只有按钮可见且尚未返回时有效
func (c *FinaleController) ViewDetails() bool {
	if c.returning || !c.secondaryButtonVisible {
		return false
	}

	c.triggerEffects()
	c.returning = true
	c.scheduler.After(config.ReturnNavigationDelay, func() {
		navigate(c.nav, game.SceneDetails)
	})

	log.Printf("[Finale] View Details at %v, returning to %s", c.scheduler.Now(), game.SceneDetails.Path())
	return true
}

// triggerEffects 打开闪光和闪电，并重新开始各自的清除计时
func (c *FinaleController) triggerEffects() {
	c.scheduler.Cancel(c.flashTimer)
	c.scheduler.Cancel(c.strikeTimer)

	c.flashActive = true
	c.strikeActive = true
	c.flashTimer = c.scheduler.After(config.FlashClearDelay, func() {
		c.flashActive = false
	})
	c.strikeTimer = c.scheduler.After(config.StrikeClearDelay, func() {
		c.strikeActive = false
	})

	if c.onEffects != nil {
		c.onEffects()
	}
}

// Reset 取消所有计时并恢复默认可见性（场景退出时调用）
func (c *FinaleController) Reset() {
	c.scheduler.Clear()
	c.flashActive = false
	c.strikeActive = false
	c.imageVisible = false
	c.secondaryButtonVisible = false
	c.returning = false
	c.flashTimer = 0
	c.strikeTimer = 0
}

// State 返回当前状态
// 已显示的内容优先：Ready > Revealing > Flashing > Idle
func (c *FinaleController) State() FinaleState {
	switch {
	case c.returning:
		return FinaleReturning
	case c.secondaryButtonVisible:
		return FinaleReady
	case c.imageVisible:
		return FinaleRevealing
	case c.flashActive || c.strikeActive:
		return FinaleFlashing
	default:
		return FinaleIdle
	}
}

// FlashActive 闪光叠加层是否显示
func (c *FinaleController) FlashActive() bool { return c.flashActive }

// StrikeActive 闪电是否显示
func (c *FinaleController) StrikeActive() bool { return c.strikeActive }

// ImageVisible 庆祝图片是否显示
func (c *FinaleController) ImageVisible() bool { return c.imageVisible }

// SecondaryButtonVisible View Details 按钮是否显示
func (c *FinaleController) SecondaryButtonVisible() bool { return c.secondaryButtonVisible }
