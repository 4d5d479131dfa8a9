//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，设置环境变量 CASUALUI_MOBILE_EMULATE=1 可强制启用（用于本地调试）
func IsMobile() bool {
	return os.Getenv("CASUALUI_MOBILE_EMULATE") == "1"
}
