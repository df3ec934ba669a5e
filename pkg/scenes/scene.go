// Package scenes 实现邀请函的三个场景：开场、详情、结尾
package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/invite/pkg/config"
	"github.com/decker502/invite/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Theme 所有场景共享的文案、配色和字体
type Theme struct {
	Config *config.InviteConfig

	Background color.RGBA
	Accent     color.RGBA
	Text       color.RGBA

	HeadlineFont *text.GoTextFace
	TaglineFont  *text.GoTextFace
	WhenFont     *text.GoTextFace
	FinaleFont   *text.GoTextFace
	ButtonFont   *text.GoTextFace
	TooltipFont  *text.GoTextFace
}

// NewTheme 根据配置创建主题，字体使用内置 Go 字体
func NewTheme(cfg *config.InviteConfig, rm *game.ResourceManager) *Theme {
	if cfg == nil {
		cfg = config.DefaultInviteConfig()
	}
	return &Theme{
		Config:       cfg,
		Background:   cfg.Palette.BackgroundColor(),
		Accent:       cfg.Palette.AccentColor(),
		Text:         cfg.Palette.TextColor(),
		HeadlineFont: rm.MustLoadFont(game.BuiltinFontBold, config.HeadlineFontSize),
		TaglineFont:  rm.MustLoadFont(game.BuiltinFontBold, config.TaglineFontSize),
		WhenFont:     rm.MustLoadFont(game.BuiltinFontRegular, config.WhenFontSize),
		FinaleFont:   rm.MustLoadFont(game.BuiltinFontBold, config.FinaleFontSize),
		ButtonFont:   rm.MustLoadFont(game.BuiltinFontBold, config.ButtonFontSize),
		TooltipFont:  rm.MustLoadFont(game.BuiltinFontRegular, config.TooltipFontSize),
	}
}

// NewSceneFactory 返回 SceneManager 使用的场景工厂
// 每次导航都创建新的场景实例
func NewSceneFactory(nav game.Navigator, theme *Theme, rm *game.ResourceManager) game.SceneFactory {
	return func(id game.SceneID) game.Scene {
		switch id {
		case game.SceneIntro:
			return NewIntroScene(nav, theme)
		case game.SceneDetails:
			return NewDetailsScene(nav, theme)
		case game.SceneFinale:
			return NewFinaleScene(nav, theme, rm)
		default:
			return nil
		}
	}
}

// navigate 请求跳转，失败只记录日志（定时器回调中无法返回错误）
func navigate(nav game.Navigator, id game.SceneID) {
	if err := nav.Navigate(id); err != nil {
		log.Printf("[SceneManager] Warning: navigation to %s failed: %v", id.Path(), err)
	}
}
