package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultInviteConfig 验证默认文案与内置配置文件一致
func TestDefaultInviteConfig(t *testing.T) {
	cfg := DefaultInviteConfig()

	if cfg.Intro.Headline != "Are you ready?" {
		t.Errorf("Intro.Headline: got %q", cfg.Intro.Headline)
	}
	if cfg.Details.Tagline != "Bring drinks, not presents" {
		t.Errorf("Details.Tagline: got %q", cfg.Details.Tagline)
	}
	if cfg.Finale.CelebrateLabel != "Celebrate" || cfg.Finale.ViewDetailsLabel != "View Details" {
		t.Errorf("Finale labels: got %q / %q", cfg.Finale.CelebrateLabel, cfg.Finale.ViewDetailsLabel)
	}
	if got := cfg.Palette.AccentColor(); got != (color.RGBA{R: 255, G: 215, B: 0, A: 255}) {
		t.Errorf("AccentColor: got %v, want gold", got)
	}
}

// TestLoadInviteConfig 测试从文件加载配置
func TestLoadInviteConfig(t *testing.T) {
	t.Run("partial config keeps defaults", func(t *testing.T) {
		tempDir := t.TempDir()
		testFile := filepath.Join(tempDir, "invite.yaml")

		partialYAML := `intro:
  headline: "Ready?"
details:
  when: "Saturday · 8:00 PM"
palette:
  accent: "#ff8800"
`
		if err := os.WriteFile(testFile, []byte(partialYAML), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		cfg, err := LoadInviteConfig(testFile)
		if err != nil {
			t.Fatalf("LoadInviteConfig() error: %v", err)
		}

		if cfg.Intro.Headline != "Ready?" {
			t.Errorf("Intro.Headline: got %q, want %q", cfg.Intro.Headline, "Ready?")
		}
		if cfg.Details.When != "Saturday · 8:00 PM" {
			t.Errorf("Details.When: got %q", cfg.Details.When)
		}
		// 未配置的字段使用默认值
		if cfg.Details.Tagline != "Bring drinks, not presents" {
			t.Errorf("Details.Tagline: got %q, want default", cfg.Details.Tagline)
		}
		if cfg.Resources.Music != "assets/audio/theme.wav" {
			t.Errorf("Resources.Music: got %q, want default", cfg.Resources.Music)
		}
		if got := cfg.Palette.AccentColor(); got != (color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}) {
			t.Errorf("AccentColor: got %v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadInviteConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("Expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		testFile := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(testFile, []byte("intro: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		_, err := LoadInviteConfig(testFile)
		if err == nil {
			t.Fatal("Expected error for malformed YAML")
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		testFile := filepath.Join(t.TempDir(), "color.yaml")
		if err := os.WriteFile(testFile, []byte("palette:\n  text: \"#zzz\"\n"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		_, err := LoadInviteConfig(testFile)
		if err == nil {
			t.Fatal("Expected error for invalid color")
		}
		if !strings.Contains(err.Error(), "palette.text") {
			t.Errorf("Error should name the field, got: %v", err)
		}
	})
}

// TestParseInviteConfigEmpty 空数据返回完整的默认配置
func TestParseInviteConfigEmpty(t *testing.T) {
	cfg, err := ParseInviteConfig(nil)
	if err != nil {
		t.Fatalf("ParseInviteConfig(nil) error: %v", err)
	}
	if *cfg != *DefaultInviteConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestParseHexColor 测试颜色解析
func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#FFD700", color.RGBA{R: 255, G: 215, B: 0, A: 255}, false},
		{"ffd700", color.RGBA{R: 255, G: 215, B: 0, A: 255}, false},
		{"#000000", color.RGBA{A: 255}, false},
		{"#00000099", color.RGBA{A: 0x99}, false},
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#ff000080", color.RGBA{R: 0x80, A: 0x80}, false},
		{"#ffffff00", color.RGBA{}, false},
		{"#FFD700CC", color.RGBA{R: 0xcc, G: 0xac, B: 0, A: 0xcc}, false},
		{"", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestSceneTimingOrder 结尾动画的延迟必须满足点击后的触发顺序
func TestSceneTimingOrder(t *testing.T) {
	if !(FlashClearDelay < ImageRevealDelay && ImageRevealDelay < StrikeClearDelay && StrikeClearDelay < SecondaryButtonDelay) {
		t.Errorf("Finale delays out of order: flash=%v image=%v strike=%v button=%v",
			FlashClearDelay, ImageRevealDelay, StrikeClearDelay, SecondaryButtonDelay)
	}
	if MusicVolumeCeiling > 1 || MusicVolumeFloor < 0 {
		t.Errorf("Music volume bounds out of range: [%v, %v]", MusicVolumeFloor, MusicVolumeCeiling)
	}
}
