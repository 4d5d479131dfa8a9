// Package app 提供界面应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os/exec"
	"runtime"

	"github.com/decker502/casualui/pkg/config"
	"github.com/decker502/casualui/pkg/game"
	"github.com/decker502/casualui/pkg/ui"
	"github.com/decker502/casualui/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "casualui"

// backdropDownscale 模糊背景的缩小倍数
const backdropDownscale = 8

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DataPath 外部启动数据 YAML，为空时使用内嵌的 data/init_game_data.yaml
	DataPath string
	// Blur 弹窗背景使用模糊截屏而不是半透明遮罩
	Blur bool
}

// App 是界面应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	registry     *ui.ScreenRegistry
	controller   *ui.NavigationController
	audioManager *game.AudioManager
	settings     *game.SettingsManager
	capturer     *ui.FrameCapturer
	verbose      bool

	pointer                  utils.PointerTracker
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化界面应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	initData, err := config.LoadInitGameData(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("启动数据加载失败: %w", err)
	}

	languages, err := config.LoadLanguages()
	if err != nil {
		log.Printf("[App] Warning: %v, using built-in languages", err)
		languages = config.DefaultLanguages()
	}

	// 存储不可用时降级为只在内存中保存设置
	settingsManager := game.NewSettingsManager(openStorage())
	if settingsManager.HasSaved() {
		s := settingsManager.GetSettings()
		initData = initData.WithSettings(s.SoundEnabled, s.MusicEnabled, s.VibrationEnabled, s.NotificationsEnabled, s.LanguageIndex)
		log.Printf("[App] Applied saved settings")
	} else {
		settingsManager.SetSoundEnabled(initData.SoundOn)
		settingsManager.SetMusicEnabled(initData.MusicOn)
		settingsManager.SetVibrationEnabled(initData.VibrationOn)
		settingsManager.SetNotificationsEnabled(initData.NotifsOn)
		settingsManager.SetLanguage(initData.LanguageIndex)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	capturer := ui.NewFrameCapturer(config.GameWindowWidth, config.GameWindowHeight, backdropDownscale)
	registry := ui.NewScreenRegistry(ui.DefaultTemplates(ui.TemplateOptions{
		BlurBackground: cfg.Blur,
		Capturer:       capturer,
		Languages:      languages,
	}))

	controller := ui.NewNavigationController(ui.ControllerConfig{
		Registry: registry,
		Audio:    audioManager,
		InitData: initData,
		Settings: settingsManager,
		OpenURL:  openURL,
	})
	if err := controller.Boot(true); err != nil {
		return nil, fmt.Errorf("主界面创建失败: %w", err)
	}
	audioManager.PlayMusic()

	return &App{
		registry:     registry,
		controller:   controller,
		audioManager: audioManager,
		settings:     settingsManager,
		capturer:     capturer,
		verbose:      cfg.Verbose,
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	if p := utils.GetStoragePath(); p != "" {
		log.Printf("[App] Storage path: %s", p)
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return m
}

// openURL 用系统浏览器打开链接
func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

// Update 更新界面逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// Esc / Android 返回键 关闭栈顶弹窗
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.controller.CloseTopPopup()
	}

	for _, p := range a.pointer.JustPressed() {
		a.dispatchClick(p.X, p.Y)
	}

	a.registry.Update(config.FrameDeltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if !ebiten.IsFullscreen() {
		ebiten.SetFullscreen(true)
		return
	}
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = 3
	log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
}

// dispatchClick 从最上层开始，交给第一个吸收点击的激活屏幕
func (a *App) dispatchClick(x, y int) {
	screens := a.registry.Screens()
	for i := len(screens) - 1; i >= 0; i-- {
		s := screens[i]
		if !s.IsActive() {
			continue
		}
		if s.HandleClick(x, y) {
			return
		}
	}
}

// Draw 绘制界面
//
// 所有屏幕先画到截屏帧上，模糊背景截取的就是这一帧。
func (a *App) Draw(screen *ebiten.Image) {
	frame := a.capturer.Frame()
	frame.Clear()
	for _, s := range a.registry.Screens() {
		if s.IsActive() {
			s.Draw(frame)
		}
	}
	screen.DrawImage(frame, nil)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 退出前保存设置并停止音乐
func (a *App) Shutdown() {
	a.audioManager.StopMusic()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings on exit: %v", err)
	}
}

// Controller 返回导航控制器
func (a *App) Controller() *ui.NavigationController {
	return a.controller
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
