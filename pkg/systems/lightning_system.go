package systems

import (
	"image/color"
	"math/rand/v2"

	"github.com/decker502/invite/pkg/components"
	"github.com/decker502/invite/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 闪电外观
const (
	boltSegmentLength = 28.0 // 每段折线的垂直长度
	boltJitter        = 18.0 // 每段的水平随机偏移
	boltGlowExtra     = 6.0  // 外层光晕比主线宽出的像素
)

// LightningSystem 闪电下落效果系统
//
// 每次 Trigger 重新生成所有闪电的位置和折线形状，并从屏幕上方开始下落。
// 随机源由调用者注入，测试中可使用固定种子。
type LightningSystem struct {
	bolts        []*components.LightningBoltComponent
	rng          *rand.Rand
	screenWidth  float64
	screenHeight float64
	segments     int
	width        float64
	duration     float64
	color        color.Color
	glow         color.Color
}

// LightningConfig 闪电系统参数
type LightningConfig struct {
	Count        int
	Segments     int
	Width        float64
	Duration     float64 // 下落时长（秒）
	ScreenWidth  float64
	ScreenHeight float64
	Color        color.Color
}

// NewLightningSystem 创建闪电系统
func NewLightningSystem(cfg LightningConfig, rng *rand.Rand) *LightningSystem {
	bolts := make([]*components.LightningBoltComponent, cfg.Count)
	for i := range bolts {
		bolts[i] = &components.LightningBoltComponent{}
	}
	glow := utils.WithAlpha(color.White, 0.35)
	return &LightningSystem{
		bolts:        bolts,
		rng:          rng,
		screenWidth:  cfg.ScreenWidth,
		screenHeight: cfg.ScreenHeight,
		segments:     cfg.Segments,
		width:        cfg.Width,
		duration:     cfg.Duration,
		color:        cfg.Color,
		glow:         glow,
	}
}

// Bolts 返回所有闪电组件
func (s *LightningSystem) Bolts() []*components.LightningBoltComponent {
	return s.bolts
}

// Trigger 生成新的闪电并开始下落
// 闪电均匀分布在屏幕宽度的不同区间内，避免重叠
func (s *LightningSystem) Trigger() {
	count := float64(len(s.bolts))
	boltHeight := boltSegmentLength * float64(s.segments)

	for i, bolt := range s.bolts {
		laneWidth := s.screenWidth / count
		bolt.X = laneWidth*float64(i) + laneWidth*(0.25+0.5*s.rng.Float64())
		bolt.StartY = -boltHeight
		bolt.EndY = s.screenHeight
		bolt.Width = s.width
		bolt.Duration = s.duration
		bolt.Elapsed = 0
		bolt.IsActive = true
		bolt.Points = s.zigzag()
	}
}

// zigzag 生成一条从 (0,0) 向下的折线
func (s *LightningSystem) zigzag() [][2]float64 {
	points := make([][2]float64, 0, s.segments+1)
	points = append(points, [2]float64{0, 0})
	x := 0.0
	for i := 1; i <= s.segments; i++ {
		x += (s.rng.Float64()*2 - 1) * boltJitter
		points = append(points, [2]float64{x, boltSegmentLength * float64(i)})
	}
	return points
}

// Stop 隐藏所有闪电
func (s *LightningSystem) Stop() {
	for _, bolt := range s.bolts {
		bolt.IsActive = false
	}
}

// Update 推进下落动画
func (s *LightningSystem) Update(dt float64) {
	for _, bolt := range s.bolts {
		if !bolt.IsActive {
			continue
		}
		bolt.Elapsed += dt
		if bolt.Elapsed >= bolt.Duration {
			bolt.Elapsed = bolt.Duration
		}
	}
}

// BoltY 返回闪电当前的顶部 Y 坐标（加速下落）
func BoltY(bolt *components.LightningBoltComponent) float64 {
	t := utils.EaseInQuad(utils.Progress(bolt.Elapsed, bolt.Duration))
	return utils.Lerp(bolt.StartY, bolt.EndY, t)
}

// Draw 绘制所有激活的闪电（外层光晕 + 主线）
func (s *LightningSystem) Draw(screen *ebiten.Image) {
	for _, bolt := range s.bolts {
		if !bolt.IsActive || len(bolt.Points) < 2 {
			continue
		}
		y := BoltY(bolt)
		s.drawPolyline(screen, bolt, y, bolt.Width+boltGlowExtra, s.glow)
		s.drawPolyline(screen, bolt, y, bolt.Width, s.color)
	}
}

func (s *LightningSystem) drawPolyline(screen *ebiten.Image, bolt *components.LightningBoltComponent, y, width float64, clr color.Color) {
	for i := 1; i < len(bolt.Points); i++ {
		p0, p1 := bolt.Points[i-1], bolt.Points[i]
		vector.StrokeLine(screen,
			float32(bolt.X+p0[0]), float32(y+p0[1]),
			float32(bolt.X+p1[0]), float32(y+p1[1]),
			float32(width), clr, true)
	}
}
