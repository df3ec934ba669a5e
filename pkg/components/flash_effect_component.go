package components

// FlashEffectComponent 全屏白色闪光效果
// 不透明度按 Keyframes 在 Duration 内均匀插值
//
// 使用场景：点击 Celebrate / View Details 时的闪光
type FlashEffectComponent struct {
	// Keyframes 不透明度关键帧（0.0 - 1.0）
	Keyframes []float64

	// Duration 动画总时长（秒）
	Duration float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// IsActive 是否激活；动画播完后由系统关闭
	IsActive bool
}
