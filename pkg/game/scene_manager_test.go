package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
// It also implements the optional lifecycle and pointer interfaces.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	entered      int
	exited       int
	pointerX     int
	pointerY     int
	clicks       int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) OnEnter() { m.entered++ }
func (m *MockScene) OnExit()  { m.exited++ }

func (m *MockScene) HandlePointer(x, y int, justPressed bool) bool {
	m.pointerX, m.pointerY = x, y
	if justPressed {
		m.clicks++
	}
	return justPressed
}

// plainScene 不实现任何可选接口
type plainScene struct{}

func (plainScene) Update(float64)     {}
func (plainScene) Draw(*ebiten.Image) {}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
	if _, ok := sm.CurrentID(); ok {
		t.Error("Expected no current scene ID initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
	if mockScene.entered != 1 {
		t.Errorf("Expected OnEnter once, got %d", mockScene.entered)
	}

	// 切换到同一个场景不会重复触发生命周期
	sm.SwitchTo(mockScene)
	if mockScene.entered != 1 || mockScene.exited != 0 {
		t.Errorf("Re-switching to the active scene ran hooks: entered=%d exited=%d", mockScene.entered, mockScene.exited)
	}
}

// TestSceneManagerLifecycle 切换场景时旧场景先 OnExit
func TestSceneManagerLifecycle(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene2)

	if scene1.exited != 1 {
		t.Errorf("scene1 OnExit: got %d, want 1", scene1.exited)
	}
	if scene2.entered != 1 || scene2.exited != 0 {
		t.Errorf("scene2 hooks: entered=%d exited=%d", scene2.entered, scene2.exited)
	}

	sm.Close()
	if scene2.exited != 1 {
		t.Errorf("Close() should exit the active scene, got exited=%d", scene2.exited)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no active scene after Close()")
	}
}

// TestSceneManagerSwitchPlainScene 场景可以不实现可选接口
func TestSceneManagerSwitchPlainScene(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(plainScene{})
	sm.SwitchTo(&MockScene{})
	sm.Update(0.016)
	if sm.HandlePointer(1, 1, true) != true {
		t.Error("Expected MockScene to consume the click")
	}
}

// TestSceneManagerNavigate 通过工厂创建场景并记录当前 ID
func TestSceneManagerNavigate(t *testing.T) {
	sm := NewSceneManager()
	created := map[SceneID]int{}
	scenes := map[SceneID]*MockScene{}
	sm.SetSceneFactory(func(id SceneID) Scene {
		created[id]++
		s := &MockScene{}
		scenes[id] = s
		return s
	})

	if err := sm.Navigate(SceneIntro); err != nil {
		t.Fatalf("Navigate(Intro) error: %v", err)
	}
	intro := scenes[SceneIntro]

	if err := sm.Navigate(SceneDetails); err != nil {
		t.Fatalf("Navigate(Details) error: %v", err)
	}

	if id, ok := sm.CurrentID(); !ok || id != SceneDetails {
		t.Errorf("CurrentID: got %v (%v), want Details", id, ok)
	}
	if intro.exited != 1 {
		t.Errorf("Intro should have exited once, got %d", intro.exited)
	}
	if scenes[SceneDetails].entered != 1 {
		t.Errorf("Details should have entered once, got %d", scenes[SceneDetails].entered)
	}

	// 每次导航都创建新实例
	if err := sm.Navigate(SceneDetails); err != nil {
		t.Fatalf("Navigate(Details) again error: %v", err)
	}
	if created[SceneDetails] != 2 {
		t.Errorf("Expected 2 Details instances, got %d", created[SceneDetails])
	}
}

// TestSceneManagerNavigateErrors 工厂缺失或返回 nil 时报错
func TestSceneManagerNavigateErrors(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.Navigate(SceneIntro); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Navigate without factory: got %v, want ErrUnknownScene", err)
	}

	sm.SetSceneFactory(func(id SceneID) Scene { return nil })
	if err := sm.Navigate(SceneFinale); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Navigate with nil scene: got %v, want ErrUnknownScene", err)
	}
}

// TestParseSceneID 路由路径与场景 ID 互相转换
func TestParseSceneID(t *testing.T) {
	tests := []struct {
		path    string
		want    SceneID
		wantErr bool
	}{
		{"/", SceneIntro, false},
		{"", SceneIntro, false},
		{"/details", SceneDetails, false},
		{"/finale", SceneFinale, false},
		{"/nope", 0, true},
		{"details", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParseSceneID(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSceneID(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSceneID(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if got.Path() != map[SceneID]string{SceneIntro: "/", SceneDetails: "/details", SceneFinale: "/finale"}[got] {
				t.Errorf("Path() round trip failed for %v", got)
			}
		})
	}

	if SceneID(42).String() != "SceneID(42)" {
		t.Errorf("Unexpected String() for unknown ID: %s", SceneID(42))
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
	if sm.HandlePointer(0, 0, true) {
		t.Error("HandlePointer with no scene should return false")
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDrawNoScene verifies that Draw handles nil scene gracefully.
func TestSceneManagerDrawNoScene(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen) // Should not panic
}
