package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one full-screen state of the invitation (intro, details, finale).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterer 是一个可选接口，场景被挂载为当前场景时调用 OnEnter
//
// 场景应在 OnEnter 中调度自己的定时任务（例如自动跳转），
// 而不是在构造函数中，这样同一个场景实例的计时总是从挂载时刻开始。
type Enterer interface {
	OnEnter()
}

// Exiter 是一个可选接口，场景被卸载时调用 OnExit
//
// 场景必须在 OnExit 中取消所有尚未触发的定时任务，
// 保证离开场景后不会再触发过期的跳转。
type Exiter interface {
	OnExit()
}

// PointerHandler 是一个可选接口，用于接收指针（鼠标/触摸）输入
//
// 参数：
//   - x, y: 指针在逻辑屏幕坐标系中的位置
//   - justPressed: 本帧是否刚刚发生点击或触摸
//
// 返回：
//   - bool: 事件是否被场景内的控件消费
type PointerHandler interface {
	HandlePointer(x, y int, justPressed bool) bool
}

// Navigator 供场景请求跳转到另一个场景
// SceneManager 实现此接口；测试中可以使用替身
type Navigator interface {
	Navigate(id SceneID) error
}
