package config

// 窗口与布局配置
const (
	// GameWindowWidth 逻辑屏幕宽度（竖屏手游布局）
	GameWindowWidth = 432
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 768

	// FooterSlotCount 底部导航栏按钮组数量
	FooterSlotCount = 5

	// FooterHeight 底部导航栏高度
	FooterHeight = 96
)

// 底部导航栏按钮组索引
const (
	FooterSlotLeft  = 0
	FooterSlotShop  = 1
	FooterSlotHome  = 2
	FooterSlotMap   = 3
	FooterSlotRight = 4
)

// CoinIncrement 每次点击 "加金币" 按钮增加的金币数
const CoinIncrement = 10

// 动画时长配置（秒）
const (
	// ScreenElementAnimDuration 屏幕子元素默认入场/退场动画时长
	ScreenElementAnimDuration float64 = 0.25

	// PopupHideDelay 弹窗关闭时等待退场动画完成的延迟
	PopupHideDelay float64 = 0.2

	// ToggleSliderDuration 开关滑块的过渡时长
	ToggleSliderDuration float64 = 0.15

	// RewardCountUpDuration 结算界面奖励数字滚动时长
	RewardCountUpDuration float64 = 1.2

	// FrameDeltaTime 每帧固定时间步长（ebiten 默认 60 TPS）
	FrameDeltaTime float64 = 1.0 / 60.0
)

// 音效资源ID
const (
	SoundClick      = "SOUND_CLICK"
	SoundClickBloop = "SOUND_CLICK_BLOOP"
	SoundClickError = "SOUND_CLICK_ERR"
	SoundCoin       = "SOUND_COIN"
	SoundToggleOn   = "SOUND_TOGGLE_ON"
	SoundToggleOff  = "SOUND_TOGGLE_OFF"

	// MusicMainTheme 主界面背景音乐
	MusicMainTheme = "MUSIC_MAIN_THEME"
)

// SupportURL "支持" 按钮打开的页面
const SupportURL = "https://gentlepenguin.com/"
