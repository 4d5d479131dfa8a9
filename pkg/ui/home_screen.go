package ui

import (
	"image"
	"strconv"

	"github.com/decker502/casualui/pkg/anim"
	"github.com/decker502/casualui/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// 主界面按钮ID
const (
	ButtonSettings     = "settings"
	ButtonAddCoins     = "add_coins"
	ButtonToggleFooter = "toggle_footer"
)

// footerLabels 底部按钮组文字，顺序与 config.FooterSlot* 一致
var footerLabels = []string{"LEFT", "SHOP", "HOME", "MAP", "RIGHT"}

// HomeScreen 主界面
// 包含：
//   - 顶部栏：金币（带 "+" 按钮）、生命、星星、设置按钮
//   - 底部导航栏：5 个按钮组，可通过折叠按钮收起/展开
type HomeScreen struct {
	BaseScreen

	footer    *FooterControl
	footerBar *anim.Element // 底部栏滑入/滑出，独立于屏幕入场动画

	coinsText string
	livesText string
	starsText string

	listener HomeScreenListener
}

// NewHomeScreen 创建主界面
func NewHomeScreen() *HomeScreen {
	w, h := config.GameWindowWidth, config.GameWindowHeight
	duration := float32(config.ScreenElementAnimDuration)

	s := &HomeScreen{
		BaseScreen: newBaseScreen(ScreenHome, image.Rect(0, 0, w, h)),
		footerBar:  anim.NewSlide("footerBar", 0, config.FooterHeight, duration),
		coinsText:  "0",
		livesText:  "0",
		starsText:  "0",
	}
	s.Title = "HOME"

	s.AddElement(anim.NewSlide("topBar", 0, -64, duration))
	s.AddElement(anim.NewFade("title", duration))

	s.AddButton(NewButton(ButtonAddCoins, "+", image.Rect(120, 16, 152, 48), func() {
		if s.listener != nil {
			s.listener.HandleAddCoinsButtonClicked()
		}
	}))
	s.AddButton(NewButton(ButtonSettings, "SET", image.Rect(w-60, 12, w-12, 52), func() {
		if s.listener != nil {
			s.listener.HandleSettingsButtonClicked()
		}
	}))
	s.AddButton(NewButton(ButtonToggleFooter, "v", image.Rect(w-52, h-config.FooterHeight-44, w-12, h-config.FooterHeight-4), func() {
		s.toggleFooter()
		if s.listener != nil {
			s.listener.HandleToggleFooterButtonClicked()
		}
	}))

	s.footer = NewFooterControl(footerLabels, image.Rect(0, h-config.FooterHeight, w, h))
	s.footer.OnSlotClicked = func(index int, locked, selected bool) {
		if s.listener != nil {
			s.listener.HandleFooterButtonClicked(index, locked, selected)
		}
	}
	return s
}

// Init 应用主界面数据
func (s *HomeScreen) Init(data ScreenInitData) {
	d, ok := data.(*HomeInitData)
	if !ok || d == nil {
		return
	}
	s.footer.SetAllLockStates(d.FooterLocks)
	s.coinsText = strconv.Itoa(d.Coins)
	s.livesText = strconv.Itoa(d.Lives)
	s.starsText = strconv.Itoa(d.Stars)
}

// RegisterListener 绑定 HomeScreenListener
func (s *HomeScreen) RegisterListener(listener any) {
	if l, ok := listener.(HomeScreenListener); ok {
		s.listener = l
	}
}

// UnregisterListener 解绑 HomeScreenListener
func (s *HomeScreen) UnregisterListener(listener any) {
	if l, ok := listener.(HomeScreenListener); ok && l == s.listener {
		s.listener = nil
	}
}

// Show 显示主界面，底部栏总是重新滑入
func (s *HomeScreen) Show(animate bool, onComplete func()) {
	s.BaseScreen.Show(animate, onComplete)
	if animate {
		s.footerBar.Play(anim.Show, nil)
	} else {
		s.footerBar.Snap(anim.Show)
	}
	s.Button(ButtonToggleFooter).Label = "v"
}

// Update 推进屏幕与底部栏动画
func (s *HomeScreen) Update(dt float64) {
	s.BaseScreen.Update(dt)
	s.footerBar.Update(dt)
}

// HandleClick 底部栏优先，其余交给按钮
func (s *HomeScreen) HandleClick(x, y int) bool {
	if !s.interactive() {
		return false
	}
	if s.footerBar.IsShown() && s.footer.HandleClick(x, y, motionOf(s.footerBar)) {
		return true
	}
	return s.BaseScreen.HandleClick(x, y)
}

// SetCoinsText 刷新金币显示
func (s *HomeScreen) SetCoinsText(text string) {
	s.coinsText = text
}

// CoinsText 当前金币显示
func (s *HomeScreen) CoinsText() string { return s.coinsText }

// LivesText 当前生命显示
func (s *HomeScreen) LivesText() string { return s.livesText }

// StarsText 当前星星显示
func (s *HomeScreen) StarsText() string { return s.starsText }

// Footer 底部导航栏
func (s *HomeScreen) Footer() *FooterControl { return s.footer }

// FooterVisible 底部栏是否展开
func (s *HomeScreen) FooterVisible() bool { return s.footerBar.IsShown() }

// toggleFooter 收起时同时清除选中
func (s *HomeScreen) toggleFooter() {
	if s.footerBar.IsShown() {
		s.footer.ClearSelection()
		s.footerBar.Play(anim.Hide, nil)
		s.Button(ButtonToggleFooter).Label = "^"
		return
	}
	s.footerBar.Play(anim.Show, nil)
	s.Button(ButtonToggleFooter).Label = "v"
}

// Draw 绘制主界面
func (s *HomeScreen) Draw(dst *ebiten.Image) {
	if !s.active {
		return
	}
	full := motion{alpha: 1}
	fillRect(dst, s.Bounds, full, backgroundColor)

	m := s.motion()
	bar := image.Rect(0, 0, s.Bounds.Dx(), 64)
	fillRect(dst, bar, m, borderColor)
	drawText(dst, "COINS "+s.coinsText, 16, 24, m)
	drawText(dst, "LIVES "+s.livesText, 170, 24, m)
	drawText(dst, "STARS "+s.starsText, 270, 24, m)
	drawText(dst, s.Title, s.Bounds.Dx()/2-16, s.Bounds.Dy()/2, full)

	for _, b := range s.buttons {
		if b.ID == ButtonToggleFooter {
			b.Draw(dst, full)
			continue
		}
		b.Draw(dst, m)
	}
	s.footer.Draw(dst, motionOf(s.footerBar))
}
