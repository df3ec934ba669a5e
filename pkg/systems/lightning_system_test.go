package systems

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestLightning(seed uint64) *LightningSystem {
	return NewLightningSystem(LightningConfig{
		Count:        2,
		Segments:     7,
		Width:        4,
		Duration:     0.6,
		ScreenWidth:  800,
		ScreenHeight: 600,
		Color:        color.RGBA{R: 255, G: 215, A: 255},
	}, rand.New(rand.NewPCG(seed, seed)))
}

// TestLightningSystemTrigger 触发后闪电在各自区间内从屏幕上方开始
func TestLightningSystemTrigger(t *testing.T) {
	s := newTestLightning(1)
	s.Trigger()

	bolts := s.Bolts()
	if len(bolts) != 2 {
		t.Fatalf("Expected 2 bolts, got %d", len(bolts))
	}
	for i, bolt := range bolts {
		if !bolt.IsActive {
			t.Errorf("bolt %d not active", i)
		}
		lo, hi := 400*float64(i), 400*float64(i+1)
		if bolt.X < lo || bolt.X > hi {
			t.Errorf("bolt %d X=%v outside lane [%v, %v]", i, bolt.X, lo, hi)
		}
		if len(bolt.Points) != 8 {
			t.Errorf("bolt %d: got %d points, want 8", i, len(bolt.Points))
		}
		if BoltY(bolt) >= 0 {
			t.Errorf("bolt %d should start above the screen, y=%v", i, BoltY(bolt))
		}
	}
}

// TestLightningSystemFall 下落到底部后停在终点
func TestLightningSystemFall(t *testing.T) {
	s := newTestLightning(2)
	s.Trigger()
	bolt := s.Bolts()[0]

	prev := BoltY(bolt)
	for i := 0; i < 40; i++ {
		s.Update(1.0 / 60)
		y := BoltY(bolt)
		if y < prev {
			t.Fatalf("Bolt moved upwards: %v -> %v", prev, y)
		}
		prev = y
	}
	if prev != 600 {
		t.Errorf("Bolt should reach the bottom, got %v", prev)
	}

	s.Update(1)
	if BoltY(bolt) != 600 {
		t.Error("Bolt should stay at the bottom")
	}
}

// TestLightningSystemDeterministic 相同种子生成相同形状
func TestLightningSystemDeterministic(t *testing.T) {
	a, b := newTestLightning(7), newTestLightning(7)
	a.Trigger()
	b.Trigger()
	for i := range a.Bolts() {
		if a.Bolts()[i].X != b.Bolts()[i].X {
			t.Errorf("bolt %d differs: %v vs %v", i, a.Bolts()[i].X, b.Bolts()[i].X)
		}
	}
}

// TestLightningSystemStopAndDraw 停止后不绘制
func TestLightningSystemStopAndDraw(t *testing.T) {
	s := newTestLightning(3)
	screen := ebiten.NewImage(800, 600)
	s.Trigger()
	s.Draw(screen)

	s.Stop()
	for i, bolt := range s.Bolts() {
		if bolt.IsActive {
			t.Errorf("bolt %d still active after Stop", i)
		}
	}
	s.Draw(screen)
}
