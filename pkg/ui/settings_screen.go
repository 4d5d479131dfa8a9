package ui

import (
	"image"

	"github.com/decker502/casualui/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// 设置界面控件ID
const (
	ToggleSound        = "sound"
	ToggleMusic        = "music"
	ToggleVibration    = "vibration"
	ToggleNotification = "notification"

	ButtonLanguage = "language"
	ButtonTerms    = "terms"
	ButtonPrivacy  = "privacy"
	ButtonSupport  = "support"
)

// SettingsScreen 设置弹窗
// 四个开关（音效、音乐、震动、通知）+ 语言/条款/隐私/支持按钮
type SettingsScreen struct {
	PopupScreen

	toggles  []*ToggleSlider
	listener SettingsScreenListener
}

// NewSettingsScreen 创建设置弹窗
func NewSettingsScreen() *SettingsScreen {
	s := &SettingsScreen{}
	s.PopupScreen = newPopupScreen(ScreenSettings, "SETTINGS", popupBounds(560))
	s.addCloseButton()

	r := s.Bounds
	duration := float32(config.ToggleSliderDuration)
	rows := []struct {
		id, label string
		notify    func(SettingsScreenListener, bool)
	}{
		{ToggleSound, "SOUND", SettingsScreenListener.HandleSoundToggleValueChanged},
		{ToggleMusic, "MUSIC", SettingsScreenListener.HandleMusicToggleValueChanged},
		{ToggleVibration, "VIBRATION", SettingsScreenListener.HandleVibrationToggleValueChanged},
		{ToggleNotification, "NOTIFICATIONS", SettingsScreenListener.HandleNotifToggleValueChanged},
	}
	for i, row := range rows {
		y := r.Min.Y + 70 + i*56
		t := NewToggleSlider(row.id, row.label, image.Rect(r.Max.X-110, y, r.Max.X-30, y+36), duration)
		notify := row.notify
		t.OnValueChanged = func(on bool) {
			if s.listener != nil {
				notify(s.listener, on)
			}
		}
		s.toggles = append(s.toggles, t)
	}

	buttons := []struct {
		id, label string
		notify    func(SettingsScreenListener)
	}{
		{ButtonLanguage, "LANGUAGE", SettingsScreenListener.HandleLanguageButtonClicked},
		{ButtonTerms, "TERMS", SettingsScreenListener.HandleTermsAndConditionsButtonClicked},
		{ButtonPrivacy, "PRIVACY", SettingsScreenListener.HandlePrivacyButtonClicked},
		{ButtonSupport, "SUPPORT", SettingsScreenListener.HandleSupportButtonClicked},
	}
	for i, b := range buttons {
		y := r.Min.Y + 310 + i*56
		notify := b.notify
		s.AddButton(NewButton(b.id, b.label, image.Rect(r.Min.X+40, y, r.Max.X-40, y+44), func() {
			if s.listener != nil {
				notify(s.listener)
			}
		}))
	}
	return s
}

// Init 按设置数据立即摆放开关（不触发回调）
func (s *SettingsScreen) Init(data ScreenInitData) {
	d, ok := data.(*SettingsInitData)
	if !ok || d == nil {
		return
	}
	s.Toggle(ToggleSound).SetState(d.SoundOn, true)
	s.Toggle(ToggleMusic).SetState(d.MusicOn, true)
	s.Toggle(ToggleVibration).SetState(d.VibrationOn, true)
	s.Toggle(ToggleNotification).SetState(d.NotifsOn, true)
}

// RegisterListener 绑定 SettingsScreenListener 与 PopupScreenListener
func (s *SettingsScreen) RegisterListener(listener any) {
	if l, ok := listener.(SettingsScreenListener); ok {
		s.listener = l
	}
	s.PopupScreen.RegisterListener(listener)
}

// UnregisterListener 解绑
func (s *SettingsScreen) UnregisterListener(listener any) {
	if l, ok := listener.(SettingsScreenListener); ok && l == s.listener {
		s.listener = nil
	}
	s.PopupScreen.UnregisterListener(listener)
}

// Toggle 按ID查找开关
func (s *SettingsScreen) Toggle(id string) *ToggleSlider {
	for _, t := range s.toggles {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Update 推进弹窗与开关动画
func (s *SettingsScreen) Update(dt float64) {
	s.PopupScreen.Update(dt)
	for _, t := range s.toggles {
		t.Update(dt)
	}
}

// HandleClick 开关优先
func (s *SettingsScreen) HandleClick(x, y int) bool {
	if !s.interactive() {
		return false
	}
	for _, t := range s.toggles {
		if t.Contains(x, y) {
			t.Click()
			return true
		}
	}
	return s.PopupScreen.HandleClick(x, y)
}

// Draw 绘制设置弹窗
func (s *SettingsScreen) Draw(dst *ebiten.Image) {
	if !s.active {
		return
	}
	s.drawChrome(dst, panelColor)
	m := s.motion()
	for _, t := range s.toggles {
		t.Draw(dst, m)
	}
}
