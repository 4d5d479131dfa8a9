// Package ui 实现屏幕导航核心：屏幕注册表、屏幕显示/隐藏状态机、弹窗栈与导航控制器
//
// 所有状态只在 ebiten 的 Update 协程中修改，动画完成通过每帧 Update(dt) 推进的
// 回调链实现，不使用锁。
package ui

import "fmt"

// ScreenID 屏幕标识，每种屏幕唯一
type ScreenID int

const (
	ScreenHome ScreenID = iota
	ScreenEndGame
	ScreenPopupBackground
	ScreenSettings
	ScreenTermsAndConditions
	ScreenAdPopup
	ScreenPrivacy
	ScreenLanguage
)

var screenNames = map[ScreenID]string{
	ScreenHome:               "Home",
	ScreenEndGame:            "EndGame",
	ScreenPopupBackground:    "PopupBackground",
	ScreenSettings:           "Settings",
	ScreenTermsAndConditions: "TermsAndConditions",
	ScreenAdPopup:            "AdPopup",
	ScreenPrivacy:            "Privacy",
	ScreenLanguage:           "Language",
}

// String 返回屏幕名称
func (id ScreenID) String() string {
	if name, ok := screenNames[id]; ok {
		return name
	}
	return fmt.Sprintf("ScreenID(%d)", int(id))
}
