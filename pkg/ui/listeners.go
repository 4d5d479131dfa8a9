package ui

// 屏幕按钮事件的能力接口
//
// 屏幕在 RegisterListener 时逐个检查监听者实现了哪些接口，
// 只绑定匹配的部分。一个对象可以同时实现多个接口。

// HomeScreenListener 主界面事件
type HomeScreenListener interface {
	HandleSettingsButtonClicked()
	HandleAddCoinsButtonClicked()
	// HandleFooterButtonClicked 底部按钮组点击，locked/selected 为点击前的状态
	HandleFooterButtonClicked(index int, locked, selected bool)
	HandleToggleFooterButtonClicked()
}

// SettingsScreenListener 设置界面事件
type SettingsScreenListener interface {
	HandleSoundToggleValueChanged(on bool)
	HandleMusicToggleValueChanged(on bool)
	HandleVibrationToggleValueChanged(on bool)
	HandleNotifToggleValueChanged(on bool)
	HandleLanguageButtonClicked()
	HandleTermsAndConditionsButtonClicked()
	HandlePrivacyButtonClicked()
	HandleSupportButtonClicked()
}

// PopupScreenListener 弹窗关闭事件
type PopupScreenListener interface {
	HandleCloseButtonClicked()
}

// LevelCompleteListener 结算界面事件
type LevelCompleteListener interface {
	HandleLevelCompleteHomeButtonClicked()
	HandleLevelCompletePlayAdButtonClicked()
}

// LanguageListener 语言选择事件
type LanguageListener interface {
	HandleLanguageSelected(index int)
}
