package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultInviteConfigPath 嵌入资源中的默认邀请函配置
const DefaultInviteConfigPath = "assets/config/invite.yaml"

// InviteConfig 邀请函文案、配色与资源路径
// 对应 assets/config/invite.yaml
type InviteConfig struct {
	Intro     IntroText     `yaml:"intro"`
	Details   DetailsText   `yaml:"details"`
	Finale    FinaleText    `yaml:"finale"`
	Palette   Palette       `yaml:"palette"`
	Resources ResourcePaths `yaml:"resources"`
}

// IntroText 开场文案
type IntroText struct {
	Headline string `yaml:"headline"`
}

// DetailsText 详情页文案
type DetailsText struct {
	Tagline string `yaml:"tagline"` // 第一行（金色）
	When    string `yaml:"when"`    // 时间行
}

// FinaleText 结尾文案与按钮标签
type FinaleText struct {
	Line             string `yaml:"line"`
	CelebrateLabel   string `yaml:"celebrateLabel"`
	ViewDetailsLabel string `yaml:"viewDetailsLabel"`
}

// Palette 配色（"#RRGGBB" 或 "#RRGGBBAA"）
type Palette struct {
	Background string `yaml:"background"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
}

// ResourcePaths 外部资源路径
// 以 "assets/" 开头的路径优先从嵌入资源读取
type ResourcePaths struct {
	CelebrationImage string `yaml:"celebrationImage"`
	Music            string `yaml:"music"`
}

// DefaultInviteConfig 返回内置默认配置
func DefaultInviteConfig() *InviteConfig {
	return &InviteConfig{
		Intro: IntroText{
			Headline: "Are you ready?",
		},
		Details: DetailsText{
			Tagline: "Bring drinks, not presents",
			When:    "October 11th · 9:00 PM",
		},
		Finale: FinaleText{
			Line:             "See you there",
			CelebrateLabel:   "Celebrate",
			ViewDetailsLabel: "View Details",
		},
		Palette: Palette{
			Background: "#0b0b12",
			Accent:     "#FFD700",
			Text:       "#FFFFFF",
		},
		Resources: ResourcePaths{
			CelebrationImage: "assets/images/celebration.png",
			Music:            "assets/audio/theme.wav",
		},
	}
}

// LoadInviteConfig 从文件系统加载邀请函配置
//
// 参数：
//   - path: YAML 文件路径
//
// 返回：
//   - *InviteConfig: 缺省字段已用默认值填充的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadInviteConfig(path string) (*InviteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read invite config file %s: %w", path, err)
	}

	cfg, err := ParseInviteConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid invite config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseInviteConfig 解析 YAML 数据
// 空数据返回默认配置
func ParseInviteConfig(data []byte) (*InviteConfig, error) {
	var cfg InviteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse invite config YAML: %w", err)
	}

	applyInviteDefaults(&cfg)

	if err := validateInviteConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyInviteDefaults 为缺失字段设置默认值
func applyInviteDefaults(cfg *InviteConfig) {
	def := DefaultInviteConfig()

	fill := func(dst *string, fallback string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = fallback
		}
	}

	fill(&cfg.Intro.Headline, def.Intro.Headline)
	fill(&cfg.Details.Tagline, def.Details.Tagline)
	fill(&cfg.Details.When, def.Details.When)
	fill(&cfg.Finale.Line, def.Finale.Line)
	fill(&cfg.Finale.CelebrateLabel, def.Finale.CelebrateLabel)
	fill(&cfg.Finale.ViewDetailsLabel, def.Finale.ViewDetailsLabel)
	fill(&cfg.Palette.Background, def.Palette.Background)
	fill(&cfg.Palette.Accent, def.Palette.Accent)
	fill(&cfg.Palette.Text, def.Palette.Text)
	fill(&cfg.Resources.CelebrationImage, def.Resources.CelebrationImage)
	fill(&cfg.Resources.Music, def.Resources.Music)
}

// validateInviteConfig 校验配色字段
func validateInviteConfig(cfg *InviteConfig) error {
	for name, value := range map[string]string{
		"palette.background": cfg.Palette.Background,
		"palette.accent":     cfg.Palette.Accent,
		"palette.text":       cfg.Palette.Text,
	} {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// BackgroundColor 返回背景色（配置已校验，解析失败时返回黑色）
func (p Palette) BackgroundColor() color.RGBA {
	return mustColor(p.Background, color.RGBA{A: 255})
}

// AccentColor 返回强调色（金色）
func (p Palette) AccentColor() color.RGBA {
	return mustColor(p.Accent, color.RGBA{R: 255, G: 215, A: 255})
}

// TextColor 返回正文颜色
func (p Palette) TextColor() color.RGBA {
	return mustColor(p.Text, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func mustColor(value string, fallback color.RGBA) color.RGBA {
	c, err := ParseHexColor(value)
	if err != nil {
		return fallback
	}
	return c
}

// ParseHexColor 解析 "#RGB"、"#RRGGBB" 或 "#RRGGBBAA" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RGB, #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	// 配置里写的是未预乘的颜色，color.RGBA 需要预乘 alpha
	nrgba := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}
