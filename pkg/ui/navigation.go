package ui

import (
	"fmt"
	"log"
	"strconv"

	"github.com/decker502/casualui/pkg/config"
	"github.com/decker502/casualui/pkg/game"
)

// AudioController 音频协作者（game.AudioManager 实现）
type AudioController interface {
	Toggle(channel game.AudioType, on bool)
	IsOn(channel game.AudioType) bool
	PlaySound(soundID string) bool
}

// SettingsRecorder 持久化会话开关（game.SettingsManager 实现）
type SettingsRecorder interface {
	SetVibrationEnabled(enabled bool)
	SetNotificationsEnabled(enabled bool)
	SetLanguage(index int)
	Save() error
}

// CoinsDisplay 能显示金币文本的屏幕（HomeScreen 实现）
type CoinsDisplay interface {
	SetCoinsText(text string)
}

// URLOpener 打开外部链接
type URLOpener func(url string) error

// ControllerConfig 导航控制器依赖
type ControllerConfig struct {
	Registry *ScreenRegistry
	Audio    AudioController
	InitData *config.InitGameData // nil 时使用硬编码默认值

	Settings SettingsRecorder // 可选
	OpenURL  URLOpener        // 可选
}

// NavigationController 导航控制器
//
// 实现所有屏幕监听接口，是唯一决定打开/关闭哪个屏幕的协调者。
// 会话状态（当前金币、震动/通知开关、语言）由启动快照初始化后只在这里修改。
type NavigationController struct {
	registry *ScreenRegistry
	audio    AudioController
	initData *config.InitGameData
	settings SettingsRecorder
	openURL  URLOpener

	popups *PopupStack

	coins         int
	vibrationOn   bool
	notifsOn      bool
	languageIndex int

	currentSettings *SettingsInitData
}

var (
	_ HomeScreenListener     = (*NavigationController)(nil)
	_ SettingsScreenListener = (*NavigationController)(nil)
	_ PopupScreenListener    = (*NavigationController)(nil)
	_ LevelCompleteListener  = (*NavigationController)(nil)
	_ LanguageListener       = (*NavigationController)(nil)
)

// NewNavigationController 创建导航控制器
func NewNavigationController(cfg ControllerConfig) *NavigationController {
	data := cfg.InitData
	if data == nil {
		data = config.DefaultInitGameData()
	}
	return &NavigationController{
		registry:      cfg.Registry,
		audio:         cfg.Audio,
		initData:      data,
		settings:      cfg.Settings,
		openURL:       cfg.OpenURL,
		coins:         data.CoinsCount,
		vibrationOn:   data.VibrationOn,
		notifsOn:      data.NotifsOn,
		languageIndex: data.LanguageIndex,
	}
}

// Boot 创建并显示主界面，注册为其监听者
func (c *NavigationController) Boot(animate bool) error {
	home, err := c.registry.GetOrCreate(ScreenHome)
	if err != nil {
		return fmt.Errorf("boot: %w", err)
	}
	home.Init(NewHomeInitData(c.initData))
	home.RegisterListener(c)
	home.Show(animate, nil)
	log.Printf("[NavigationController] Booted with %d coins", c.coins)
	return nil
}

// Coins 当前会话金币
func (c *NavigationController) Coins() int { return c.coins }

// VibrationOn 会话震动开关
func (c *NavigationController) VibrationOn() bool { return c.vibrationOn }

// NotificationsOn 会话通知开关
func (c *NavigationController) NotificationsOn() bool { return c.notifsOn }

// LanguageIndex 会话语言
func (c *NavigationController) LanguageIndex() int { return c.languageIndex }

// CurrentSettings 最近一次打开设置时构建的数据，未打开过时为 nil
func (c *NavigationController) CurrentSettings() *SettingsInitData {
	if c.currentSettings == nil {
		return nil
	}
	cp := *c.currentSettings
	return &cp
}

// Popups 弹窗栈（首次访问时创建背景屏幕）
func (c *NavigationController) Popups() *PopupStack {
	stack, err := c.popupStack()
	if err != nil {
		return nil
	}
	return stack
}

// OpenPopup 打开指定弹窗
func (c *NavigationController) OpenPopup(id ScreenID) error {
	stack, err := c.popupStack()
	if err != nil {
		return err
	}
	screen, err := c.registry.GetOrCreate(id)
	if err != nil {
		return fmt.Errorf("open popup: %w", err)
	}
	stack.Push(screen)
	return nil
}

// CloseTopPopup 关闭栈顶弹窗；栈为空时什么也不做并返回 false
func (c *NavigationController) CloseTopPopup() bool {
	if c.popups == nil || c.popups.Peek() == nil {
		log.Printf("[NavigationController] No popup to close")
		return false
	}
	if _, err := c.popups.Pop(); err != nil {
		log.Printf("[NavigationController] Failed to close popup: %v", err)
		return false
	}
	return true
}

func (c *NavigationController) popupStack() (*PopupStack, error) {
	if c.popups != nil {
		return c.popups, nil
	}
	bg, err := c.registry.GetOrCreate(ScreenPopupBackground)
	if err != nil {
		return nil, fmt.Errorf("popup background: %w", err)
	}
	c.popups = NewPopupStack(bg, c, c.registry)
	return c.popups, nil
}

func (c *NavigationController) openPopupLogged(id ScreenID) {
	if err := c.OpenPopup(id); err != nil {
		log.Printf("[NavigationController] Failed to open %s: %v", id, err)
	}
}

func (c *NavigationController) play(soundID string) {
	if c.audio != nil {
		c.audio.PlaySound(soundID)
	}
}

func (c *NavigationController) toggleCue(on bool) {
	if on {
		c.play(config.SoundToggleOn)
	} else {
		c.play(config.SoundToggleOff)
	}
}

func (c *NavigationController) persist() {
	if c.settings == nil {
		return
	}
	if err := c.settings.Save(); err != nil {
		log.Printf("[NavigationController] Warning: Failed to save settings: %v", err)
	}
}

// ========== 主界面事件 ==========

// HandleSettingsButtonClicked 打开设置弹窗
func (c *NavigationController) HandleSettingsButtonClicked() {
	c.play(config.SoundClick)
	c.openSettings()
}

func (c *NavigationController) openSettings() {
	stack, err := c.popupStack()
	if err != nil {
		log.Printf("[NavigationController] Failed to open settings: %v", err)
		return
	}
	screen, err := c.registry.GetOrCreate(ScreenSettings)
	if err != nil {
		log.Printf("[NavigationController] Failed to open settings: %v", err)
		return
	}

	if c.currentSettings == nil {
		c.currentSettings = &SettingsInitData{}
	}
	c.currentSettings.SoundOn = c.audio != nil && c.audio.IsOn(game.AudioTypeSound)
	c.currentSettings.MusicOn = c.audio != nil && c.audio.IsOn(game.AudioTypeMusic)
	c.currentSettings.VibrationOn = c.vibrationOn
	c.currentSettings.NotifsOn = c.notifsOn
	c.currentSettings.LanguageIndex = c.languageIndex

	screen.Init(c.currentSettings)
	stack.Push(screen)
}

// HandleAddCoinsButtonClicked 增加金币并刷新主界面
func (c *NavigationController) HandleAddCoinsButtonClicked() {
	c.play(config.SoundCoin)
	c.coins += config.CoinIncrement

	home, ok := c.registry.Lookup(ScreenHome)
	if !ok {
		return
	}
	if d, ok := home.(CoinsDisplay); ok {
		d.SetCoinsText(strconv.Itoa(c.coins))
	}
}

// HandleFooterButtonClicked 底部按钮组点击
//
// 锁定的按钮组只播放错误提示音（即使它处于选中状态）；已选中的不做任何事；
// 地图按钮组新选中时打开结算界面（根级屏幕，不进入弹窗栈）。
func (c *NavigationController) HandleFooterButtonClicked(index int, locked, selected bool) {
	if locked {
		c.play(config.SoundClickError)
		log.Printf("[NavigationController] Footer slot %d is locked", index)
		return
	}

	c.play(config.SoundClickBloop)
	if selected {
		log.Printf("[NavigationController] Footer slot %d already selected", index)
		return
	}

	if index == config.FooterSlotMap {
		c.openEndGame()
	}
}

func (c *NavigationController) openEndGame() {
	screen, err := c.registry.GetOrCreate(ScreenEndGame)
	if err != nil {
		log.Printf("[NavigationController] Failed to open end game screen: %v", err)
		return
	}
	screen.Init(NewLevelCompleteInitData(c.initData))
	screen.RegisterListener(c)
	screen.Show(true, nil)
	c.registry.BringToFront(screen)
}

// HandleToggleFooterButtonClicked 底部栏折叠按钮
func (c *NavigationController) HandleToggleFooterButtonClicked() {
	c.play(config.SoundClick)
}

// ========== 设置界面事件 ==========

// HandleSoundToggleValueChanged 音效开关
func (c *NavigationController) HandleSoundToggleValueChanged(on bool) {
	c.toggleCue(on)
	if c.audio != nil {
		c.audio.Toggle(game.AudioTypeSound, on)
	}
	c.persist()
}

// HandleMusicToggleValueChanged 音乐开关
func (c *NavigationController) HandleMusicToggleValueChanged(on bool) {
	c.toggleCue(on)
	if c.audio != nil {
		c.audio.Toggle(game.AudioTypeMusic, on)
	}
	c.persist()
}

// HandleVibrationToggleValueChanged 震动开关（仅会话状态）
func (c *NavigationController) HandleVibrationToggleValueChanged(on bool) {
	c.vibrationOn = on
	c.toggleCue(on)
	if c.settings != nil {
		c.settings.SetVibrationEnabled(on)
	}
	c.persist()
	log.Printf("[NavigationController] Vibration -> %v", on)
}

// HandleNotifToggleValueChanged 通知开关（仅会话状态）
func (c *NavigationController) HandleNotifToggleValueChanged(on bool) {
	c.notifsOn = on
	c.toggleCue(on)
	if c.settings != nil {
		c.settings.SetNotificationsEnabled(on)
	}
	c.persist()
	log.Printf("[NavigationController] Notifications -> %v", on)
}

// HandleLanguageButtonClicked 打开语言弹窗
func (c *NavigationController) HandleLanguageButtonClicked() {
	c.play(config.SoundClick)
	if screen, err := c.registry.GetOrCreate(ScreenLanguage); err == nil {
		screen.Init(&SettingsInitData{LanguageIndex: c.languageIndex})
	}
	c.openPopupLogged(ScreenLanguage)
}

// HandleTermsAndConditionsButtonClicked 打开条款弹窗
func (c *NavigationController) HandleTermsAndConditionsButtonClicked() {
	c.play(config.SoundClickBloop)
	c.openPopupLogged(ScreenTermsAndConditions)
}

// HandlePrivacyButtonClicked 打开隐私弹窗
func (c *NavigationController) HandlePrivacyButtonClicked() {
	c.play(config.SoundClickBloop)
	c.openPopupLogged(ScreenPrivacy)
}

// HandleSupportButtonClicked 打开支持页面
func (c *NavigationController) HandleSupportButtonClicked() {
	c.play(config.SoundClickBloop)
	if c.openURL == nil {
		log.Printf("[NavigationController] No URL opener, support page: %s", config.SupportURL)
		return
	}
	if err := c.openURL(config.SupportURL); err != nil {
		log.Printf("[NavigationController] Failed to open %s: %v", config.SupportURL, err)
	}
}

// ========== 语言弹窗事件 ==========

// HandleLanguageSelected 切换会话语言
func (c *NavigationController) HandleLanguageSelected(index int) {
	c.play(config.SoundClick)
	c.languageIndex = index
	if c.currentSettings != nil {
		c.currentSettings.LanguageIndex = index
	}
	if c.settings != nil {
		c.settings.SetLanguage(index)
	}
	c.persist()
	log.Printf("[NavigationController] Language -> %d", index)
}

// ========== 弹窗事件 ==========

// HandleCloseButtonClicked 关闭栈顶弹窗
func (c *NavigationController) HandleCloseButtonClicked() {
	c.play(config.SoundClick)
	c.CloseTopPopup()
}

// ========== 结算界面事件 ==========

// HandleLevelCompleteHomeButtonClicked 返回主界面：隐藏结算界面并清空弹窗栈
func (c *NavigationController) HandleLevelCompleteHomeButtonClicked() {
	c.play(config.SoundClickBloop)
	if screen, ok := c.registry.Lookup(ScreenEndGame); ok {
		screen.UnregisterListener(c)
		screen.Hide(true, nil)
	}
	if c.popups != nil {
		c.popups.Clear()
	}
}

// HandleLevelCompletePlayAdButtonClicked 打开广告弹窗
func (c *NavigationController) HandleLevelCompletePlayAdButtonClicked() {
	c.play(config.SoundClickBloop)
	c.openPopupLogged(ScreenAdPopup)
}
