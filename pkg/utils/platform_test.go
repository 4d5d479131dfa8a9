//go:build !mobile

package utils

import "testing"

// TestIsMobileDesktop 桌面端默认不是移动模式
func TestIsMobileDesktop(t *testing.T) {
	t.Setenv("CASUALUI_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobileEmulate 环境变量强制移动模式
func TestIsMobileEmulate(t *testing.T) {
	t.Setenv("CASUALUI_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should honour CASUALUI_MOBILE_EMULATE=1")
	}
}
