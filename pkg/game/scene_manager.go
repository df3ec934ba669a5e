package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownScene 场景 ID 或路由路径无法识别，或工厂无法创建该场景
var ErrUnknownScene = errors.New("unknown scene")

// SceneID 标识邀请函的三个场景
type SceneID int

const (
	// SceneIntro 开场 "Are you ready?"，路由 "/"
	SceneIntro SceneID = iota
	// SceneDetails 活动详情，路由 "/details"
	SceneDetails
	// SceneFinale 结尾与庆祝，路由 "/finale"
	SceneFinale
)

var scenePaths = map[SceneID]string{
	SceneIntro:   "/",
	SceneDetails: "/details",
	SceneFinale:  "/finale",
}

var sceneNames = map[SceneID]string{
	SceneIntro:   "Intro",
	SceneDetails: "Details",
	SceneFinale:  "Finale",
}

// Path 返回场景对应的路由路径
func (id SceneID) Path() string {
	if p, ok := scenePaths[id]; ok {
		return p
	}
	return ""
}

func (id SceneID) String() string {
	if n, ok := sceneNames[id]; ok {
		return n
	}
	return fmt.Sprintf("SceneID(%d)", int(id))
}

// ParseSceneID 将路由路径（如 "/details"）解析为场景 ID
// 空字符串视为 "/"
func ParseSceneID(path string) (SceneID, error) {
	if path == "" {
		path = "/"
	}
	for id, p := range scenePaths {
		if p == path {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScene, path)
}

// SceneFactory 场景工厂函数类型
// 用于按 ID 创建新的场景实例，避免 game 包与 scenes 包循环依赖
type SceneFactory func(id SceneID) Scene

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time,
// and runs the optional OnExit/OnEnter hooks around every switch so that a scene's
// pending timers never outlive it.
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	hasID        bool
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Navigate or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene receives OnExit before the new one receives OnEnter.
// Switching to the scene that is already active is a no-op.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if scene == sm.currentScene {
		return
	}
	sm.hasID = false
	sm.switchScene(scene)
}

func (sm *SceneManager) switchScene(scene Scene) {
	previous := sm.currentScene
	sm.currentScene = scene

	if exiter, ok := previous.(Exiter); ok {
		exiter.OnExit()
	}
	if enterer, ok := scene.(Enterer); ok {
		enterer.OnEnter()
	}
}

// Navigate 创建并切换到指定场景
//
// 每次导航都会创建新的场景实例，旧实例在 OnExit 后被丢弃。
//
// 返回：
//   - error: 工厂未设置或无法创建场景时返回 ErrUnknownScene
func (sm *SceneManager) Navigate(id SceneID) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("%w: scene factory not set (navigating to %s)", ErrUnknownScene, id)
	}

	scene := sm.sceneFactory(id)
	if scene == nil {
		return fmt.Errorf("%w: factory returned no scene for %s", ErrUnknownScene, id)
	}

	log.Printf("[SceneManager] 切换场景: %s (%s)", id, id.Path())
	sm.currentID = id
	sm.hasID = true
	sm.switchScene(scene)
	return nil
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回当前场景的 ID
// 当前场景不是通过 Navigate 挂载时，第二个返回值为 false
func (sm *SceneManager) CurrentID() (SceneID, bool) {
	return sm.currentID, sm.hasID
}

// HandlePointer 将指针输入转发给当前场景
// 当前场景不处理指针输入时返回 false
func (sm *SceneManager) HandlePointer(x, y int, justPressed bool) bool {
	if handler, ok := sm.currentScene.(PointerHandler); ok {
		return handler.HandlePointer(x, y, justPressed)
	}
	return false
}

// Close 卸载当前场景（调用 OnExit），用于程序退出
func (sm *SceneManager) Close() {
	if exiter, ok := sm.currentScene.(Exiter); ok {
		exiter.OnExit()
	}
	sm.currentScene = nil
	sm.hasID = false
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
