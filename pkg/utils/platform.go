//go:build !mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
func IsMobile() bool {
	return false
}
