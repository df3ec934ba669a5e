package scenes

import (
	"testing"

	"github.com/decker502/invite/pkg/config"
	"github.com/decker502/invite/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// 按钮中心坐标（点击位置）
const (
	celebrateX   = config.GameWindowWidth / 2
	celebrateY   = int(config.CelebrateButtonY)
	viewDetailsX = int(config.ViewDetailsButtonX)
	viewDetailsY = int(config.ViewDetailsButtonY)
)

func newTestFinale(t *testing.T) (*FinaleScene, *fakeNavigator) {
	t.Helper()
	theme, rm := newTestTheme(t)
	nav := &fakeNavigator{}
	scene := NewFinaleScene(nav, theme, rm)
	scene.OnEnter()
	return scene, nav
}

func TestFinaleScene_InitialLayout(t *testing.T) {
	scene, _ := newTestFinale(t)

	if !scene.celebrateButton.Visible || !scene.celebrateButton.Enabled {
		t.Error("Celebrate button should be visible and enabled")
	}
	if scene.viewDetailsButton.Visible {
		t.Error("View Details button should start hidden")
	}
	if scene.Controller().State() != FinaleIdle {
		t.Errorf("State: got %s", scene.Controller().State())
	}
}

func TestFinaleScene_CelebrateClick(t *testing.T) {
	scene, _ := newTestFinale(t)

	// 悬停不触发
	if scene.HandlePointer(celebrateX, celebrateY, false) {
		t.Error("Hover should not be consumed as a click")
	}
	if scene.Controller().State() != FinaleIdle {
		t.Fatal("Hover should not celebrate")
	}

	if !scene.HandlePointer(celebrateX, celebrateY, true) {
		t.Fatal("Click on Celebrate should be consumed")
	}
	if scene.Controller().State() != FinaleFlashing {
		t.Fatalf("State: got %s, want Flashing", scene.Controller().State())
	}
	if scene.flashSystem.Alpha() <= 0 {
		t.Error("Flash overlay should start on click")
	}
	for _, bolt := range scene.lightningSystem.Bolts() {
		if !bolt.IsActive {
			t.Error("Lightning should start on click")
		}
	}

	// 闪电在 600ms 后隐藏
	runFrames(scene, 36)
	for _, bolt := range scene.lightningSystem.Bolts() {
		if bolt.IsActive {
			t.Error("Lightning should be hidden once the strike clears")
		}
	}
	if !scene.Controller().ImageVisible() {
		t.Error("Image should be visible after 600ms")
	}
}

func TestFinaleScene_ViewDetailsSlidesIn(t *testing.T) {
	scene, nav := newTestFinale(t)
	scene.HandlePointer(celebrateX, celebrateY, true)

	runFrames(scene, 96)
	vd := scene.viewDetailsButton
	if !vd.Visible {
		t.Fatal("View Details should be visible after 1600ms")
	}
	if vd.Alpha >= 1 || vd.OffsetY <= 0 {
		t.Errorf("Button should still be sliding in: alpha=%v offset=%v", vd.Alpha, vd.OffsetY)
	}

	runFrames(scene, 60)
	if vd.Alpha != 1 || vd.OffsetY != 0 {
		t.Errorf("Slide should be complete: alpha=%v offset=%v", vd.Alpha, vd.OffsetY)
	}

	if !scene.HandlePointer(viewDetailsX, viewDetailsY, true) {
		t.Fatal("Click on View Details should be consumed")
	}
	if scene.Controller().State() != FinaleReturning {
		t.Fatalf("State: got %s, want Returning", scene.Controller().State())
	}

	runFrames(scene, 24)
	if len(nav.calls) != 1 || nav.calls[0] != game.SceneDetails {
		t.Errorf("Expected navigation to Details, got %v", nav.calls)
	}
}

func TestFinaleScene_ExitCancelsReturn(t *testing.T) {
	scene, nav := newTestFinale(t)
	scene.HandlePointer(celebrateX, celebrateY, true)
	runFrames(scene, 150)
	scene.HandlePointer(viewDetailsX, viewDetailsY, true)

	scene.OnExit()
	runFrames(scene, 60)
	if len(nav.calls) != 0 {
		t.Errorf("No navigation expected after exit, got %v", nav.calls)
	}
}

func TestFinaleScene_Draw(t *testing.T) {
	scene, _ := newTestFinale(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)

	scene.Draw(screen)
	scene.HandlePointer(celebrateX, celebrateY, true)
	runFrames(scene, 30)
	scene.Draw(screen)

	if scene.image == nil {
		t.Fatal("Celebration image should be prepared on first draw after reveal")
	}
	if scene.image.Bounds().Dx() != 400 {
		t.Errorf("Celebration image width: got %d", scene.image.Bounds().Dx())
	}
}

// TestInvitationFlow 通过真实的 SceneManager 按 60 FPS 走完整个流程
func TestInvitationFlow(t *testing.T) {
	theme, rm := newTestTheme(t)
	sm := game.NewSceneManager()
	sm.SetSceneFactory(NewSceneFactory(sm, theme, rm))

	current := func() game.SceneID {
		id, ok := sm.CurrentID()
		if !ok {
			t.Fatal("No current scene")
		}
		return id
	}
	run := func(n int) {
		for i := 0; i < n; i++ {
			sm.Update(frame)
		}
	}

	if err := sm.Navigate(game.SceneIntro); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	run(179)
	if current() != game.SceneIntro {
		t.Fatalf("Still expected Intro at 2.98s, got %s", current())
	}
	run(1)
	if current() != game.SceneDetails {
		t.Fatalf("Expected Details at 3s, got %s", current())
	}

	run(239)
	if current() != game.SceneDetails {
		t.Fatalf("Still expected Details, got %s", current())
	}
	run(1)
	if current() != game.SceneFinale {
		t.Fatalf("Expected Finale at 4s, got %s", current())
	}

	// Finale 不会自动跳转
	run(600)
	if current() != game.SceneFinale {
		t.Fatalf("Finale should wait for input, got %s", current())
	}

	sm.HandlePointer(celebrateX, celebrateY, true)
	run(150)
	finale := sm.GetCurrentScene().(*FinaleScene)
	if finale.Controller().State() != FinaleReady {
		t.Fatalf("Finale state: got %s", finale.Controller().State())
	}

	sm.HandlePointer(viewDetailsX, viewDetailsY, true)
	run(24)
	if current() != game.SceneDetails {
		t.Fatalf("Expected return to Details, got %s", current())
	}

	// 详情页重新计时，再次进入结尾
	run(240)
	if current() != game.SceneFinale {
		t.Fatalf("Expected Finale again, got %s", current())
	}
	if sm.GetCurrentScene() == finale {
		t.Error("Finale should be a fresh instance")
	}
	if sm.GetCurrentScene().(*FinaleScene).Controller().State() != FinaleIdle {
		t.Error("Fresh Finale should start idle")
	}
}
