package components

// LightningBoltComponent 一道下落的闪电
//
// Points 是相对起点的折线顶点（像素），闪电整体从 StartY 落到 EndY。
type LightningBoltComponent struct {
	// X 闪电水平位置
	X float64
	// StartY, EndY 下落起止位置
	StartY, EndY float64
	// Points 折线顶点，相对 (X, 当前 Y)
	Points [][2]float64
	// Width 线宽
	Width float64
	// Duration 下落时长（秒）
	Duration float64
	// Elapsed 已经过的时间（秒）
	Elapsed float64
	// IsActive 是否显示
	IsActive bool
}
