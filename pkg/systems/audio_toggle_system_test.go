package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/invite/pkg/components"
	"github.com/decker502/invite/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestToggle() (*AudioToggleSystem, *components.AudioToggleComponent) {
	toggle := &components.AudioToggleComponent{
		CenterX:     750,
		CenterY:     550,
		Radius:      30,
		BorderColor: color.RGBA{R: 255, G: 215, A: 255},
		FillColor:   color.Black,
	}
	return NewAudioToggleSystem(toggle, nil), toggle
}

// TestAudioToggleSystemClick 只有圆内的点击才算
func TestAudioToggleSystemClick(t *testing.T) {
	s, toggle := newTestToggle()

	if !s.Update(utils.InputState{X: 750, Y: 550, JustPressed: true}, false) {
		t.Error("Click on the toggle should be reported")
	}
	if toggle.State != components.UIClicked {
		t.Errorf("State: got %v, want Clicked", toggle.State)
	}

	// 外接正方形的角落不在圆内
	if s.Update(utils.InputState{X: 721, Y: 521, JustPressed: true}, false) {
		t.Error("Click outside the circle should not be reported")
	}
	if toggle.State != components.UINormal {
		t.Errorf("State: got %v, want Normal", toggle.State)
	}
}

// TestAudioToggleSystemTooltip 提示文字跟随播放状态
func TestAudioToggleSystemTooltip(t *testing.T) {
	s, toggle := newTestToggle()

	s.Update(utils.InputState{X: 755, Y: 545}, true)
	if toggle.State != components.UIHovered {
		t.Errorf("State: got %v, want Hovered", toggle.State)
	}
	if s.Tooltip() != "Mute" {
		t.Errorf("Tooltip while playing: %q", s.Tooltip())
	}

	s.Update(utils.InputState{X: 755, Y: 545}, false)
	if s.Tooltip() != "Play Music" {
		t.Errorf("Tooltip while muted: %q", s.Tooltip())
	}
}

// TestAudioToggleSystemDraw 两种状态绘制都不应 panic
func TestAudioToggleSystemDraw(t *testing.T) {
	s, _ := newTestToggle()
	screen := ebiten.NewImage(800, 600)

	s.Update(utils.InputState{X: 750, Y: 550}, true)
	s.Draw(screen)
	s.Update(utils.InputState{}, false)
	s.Draw(screen)
}
