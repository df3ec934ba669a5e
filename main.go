// Package main 是邀请函桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          Enable verbose logging
//	--config <yaml>    Override the embedded invite config (texts, colours, asset paths)
//	--scene <path>     Start scene route: "/", "/details" or "/finale" (default: "/")
//
// Controls:
//
//	Mouse/Touch  - Buttons and the music toggle
//	F11          - Toggle fullscreen
package main

import (
	"flag"
	"log"

	"github.com/decker502/invite/pkg/app"
	"github.com/decker502/invite/pkg/config"
	"github.com/decker502/invite/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag  = flag.String("config", "", "Path to an invite config YAML overriding the embedded one")
	sceneFlag   = flag.String("scene", "/", "Start scene route (/, /details, /finale)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 在 embed.go 中声明）
	embedded.Init(assetsFS)

	invite, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		StartScene: *sceneFlag,
	})
	if err != nil {
		log.Fatalf("邀请函初始化失败: %v", err)
	}
	defer invite.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(invite); err != nil {
		log.Fatal(err)
	}
}
