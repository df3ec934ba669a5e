// Package app 提供邀请函应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/invite/pkg/components"
	"github.com/decker502/invite/pkg/config"
	"github.com/decker502/invite/pkg/game"
	"github.com/decker502/invite/pkg/scenes"
	"github.com/decker502/invite/pkg/systems"
	"github.com/decker502/invite/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 覆盖内置文案配置的 YAML 文件路径，为空则使用嵌入的 assets/config/invite.yaml
	ConfigPath string
	// StartScene 启动场景路由（"/"、"/details"、"/finale"），为空则从开场开始
	StartScene string
}

// App 是邀请函应用的核心包装器，实现 ebiten.Game 接口
//
// 每帧的输入处理顺序：
//  1. 音乐开关命中检测
//  2. 首次交互监听（取消静音并淡入）
//  3. 当前场景的按钮（点击已被开关消费时只更新悬停）
type App struct {
	sceneManager *game.SceneManager
	music        *game.BackgroundMusic
	toggle       *systems.AudioToggleSystem

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化邀请函应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
// 音频上下文在进程内只能创建一次，因此每个进程只应调用一次 NewApp。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(config.AudioSampleRate)
	return newApp(cfg, audioContext)
}

// newApp 使用给定的音频上下文组装应用（audioContext 为 nil 时音乐静默运行）
func newApp(cfg Config, audioContext *audio.Context) (*App, error) {
	startScene := game.SceneIntro
	if cfg.StartScene != "" {
		id, err := game.ParseSceneID(cfg.StartScene)
		if err != nil {
			return nil, fmt.Errorf("invalid start scene: %w", err)
		}
		startScene = id
	}

	inviteConfig, err := loadInviteConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("invite config load failed: %w", err)
	}

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)

	// 背景音乐在整个程序生命周期内只挂载一次
	music := game.NewBackgroundMusic(resourceManager.MusicSessionFactory(inviteConfig.Resources.Music), log.Default())
	music.Mount()
	log.Printf("[App] Background music mounted (session %s)", music.ID())

	theme := scenes.NewTheme(inviteConfig, resourceManager)

	toggle := systems.NewAudioToggleSystem(&components.AudioToggleComponent{
		CenterX:     config.AudioToggleCenterX,
		CenterY:     config.AudioToggleCenterY,
		Radius:      config.AudioToggleSize / 2,
		BorderColor: theme.Accent,
		FillColor:   color.RGBA{A: 200},
	}, theme.TooltipFont)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(sceneManager, theme, resourceManager))

	log.Printf("[App] Starting scene: %s", startScene.Path())
	if err := sceneManager.Navigate(startScene); err != nil {
		return nil, fmt.Errorf("failed to start scene %s: %w", startScene.Path(), err)
	}

	return &App{
		sceneManager: sceneManager,
		music:        music,
		toggle:       toggle,
	}, nil
}

// loadInviteConfig 加载文案配置
// 指定了路径时从磁盘读取；否则读取嵌入配置，缺失时使用默认配置
func loadInviteConfig(path string) (*config.InviteConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading invite config override: %s", path)
		return config.LoadInviteConfig(path)
	}

	data, err := game.ReadResource(config.DefaultInviteConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: %v, using default invite config", err)
		return config.DefaultInviteConfig(), nil
	}
	return config.ParseInviteConfig(data)
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.handleInput(utils.GetInputState())

	deltaTime := 1.0 / 60.0
	a.music.Update(deltaTime)
	a.sceneManager.Update(deltaTime)
	return nil
}

// handleInput 分发一帧的指针输入
func (a *App) handleInput(input utils.InputState) {
	toggled := a.toggle.Update(input, a.music.IsPlaying())
	if toggled {
		a.music.Toggle()
	}
	if input.JustPressed {
		a.music.HandleInteraction()
	}

	// 开关消费的点击不再传给场景，但场景仍需要更新悬停状态
	a.sceneManager.HandlePointer(input.X, input.Y, input.JustPressed && !toggled)
}

// Draw 绘制当前场景，音乐开关浮在最上层
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	a.toggle.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 卸载当前场景和背景音乐，程序退出前调用
func (a *App) Close() {
	a.sceneManager.Close()
	a.music.Unmount()
	log.Printf("[App] Closed")
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Music 返回背景音乐控制器
func (a *App) Music() *game.BackgroundMusic {
	return a.music
}
