package ui

import (
	"image"
	"strconv"

	"github.com/decker502/casualui/pkg/anim"
	"github.com/decker502/casualui/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// 结算界面按钮ID
const (
	ButtonLevelHome    = "level_home"
	ButtonLevelPlayAd  = "level_play_ad"
	ButtonLevelRestart = "level_restart"
)

// bannerDelay 入场后 "LEVEL COMPLETE" 横幅出现的延迟（秒）
const bannerDelay = 0.3

// LevelCompleteScreen 关卡结算界面
//
// 星星/金币/皇冠三个数字在入场时从 0 滚动到奖励值；
// 重新开始按钮在不离开界面的情况下重播退场事件和入场动画。
type LevelCompleteScreen struct {
	BaseScreen

	stars  *anim.Element
	coins  *anim.Element
	crowns *anim.Element

	starsText  string
	coinsText  string
	crownsText string
	bannerOn   bool

	listener LevelCompleteListener
}

// NewLevelCompleteScreen 创建结算界面
func NewLevelCompleteScreen() *LevelCompleteScreen {
	s := &LevelCompleteScreen{
		BaseScreen: newBaseScreen(ScreenEndGame, image.Rect(0, 0, config.GameWindowWidth, config.GameWindowHeight)),
	}
	s.Title = "LEVEL COMPLETE"

	duration := float32(config.RewardCountUpDuration)
	s.AddElement(anim.NewSlide("panel", 0, -120, float32(config.ScreenElementAnimDuration)))
	s.stars = anim.NewCountUp("stars", 0, duration, func(v int) { s.starsText = strconv.Itoa(v) })
	s.coins = anim.NewCountUp("coins", 0, duration, func(v int) { s.coinsText = strconv.Itoa(v) })
	s.crowns = anim.NewCountUp("crowns", 0, duration, func(v int) { s.crownsText = strconv.Itoa(v) })
	for _, e := range []*anim.Element{s.stars, s.coins, s.crowns} {
		e.HideDuration = float32(config.ScreenElementAnimDuration)
		s.AddElement(e)
	}

	bannerIn := &EventTrigger{Name: "banner_in", Delay: bannerDelay, Action: func() { s.bannerOn = true }}
	bannerOut := &EventTrigger{Name: "banner_out", Action: func() {
		bannerIn.Cancel()
		s.bannerOn = false
	}}
	s.AddTriggerSource(NewTriggerSource(bannerIn, bannerOut))

	w, h := config.GameWindowWidth, config.GameWindowHeight
	s.AddButton(NewButton(ButtonLevelHome, "HOME", image.Rect(40, h-200, w/2-10, h-150), func() {
		if s.listener != nil {
			s.listener.HandleLevelCompleteHomeButtonClicked()
		}
	}))
	s.AddButton(NewButton(ButtonLevelPlayAd, "PLAY AD", image.Rect(w/2+10, h-200, w-40, h-150), func() {
		if s.listener != nil {
			s.listener.HandleLevelCompletePlayAdButtonClicked()
		}
	}))
	s.AddButton(NewButton(ButtonLevelRestart, "RESTART", image.Rect(w/2-80, h-130, w/2+80, h-80), s.Restart))
	return s
}

// Init 设置奖励目标值
func (s *LevelCompleteScreen) Init(data ScreenInitData) {
	d, ok := data.(*LevelCompleteInitData)
	if !ok || d == nil {
		return
	}
	s.stars.SetTargetCount(d.Stars)
	s.coins.SetTargetCount(d.Coins)
	s.crowns.SetTargetCount(d.Crowns)
}

// RegisterListener 绑定 LevelCompleteListener
func (s *LevelCompleteScreen) RegisterListener(listener any) {
	if l, ok := listener.(LevelCompleteListener); ok {
		s.listener = l
	}
}

// UnregisterListener 解绑 LevelCompleteListener
func (s *LevelCompleteScreen) UnregisterListener(listener any) {
	if l, ok := listener.(LevelCompleteListener); ok && l == s.listener {
		s.listener = nil
	}
}

// Restart 重播入场动画（触发退场事件组后再触发入场事件组）
func (s *LevelCompleteScreen) Restart() {
	if !s.interactive() {
		return
	}
	s.fireTriggers(1)
	s.startTransition(anim.Show, s.showDelay, nil)
	s.fireTriggers(0)
}

// RewardTexts 当前显示的星星、金币、皇冠数
func (s *LevelCompleteScreen) RewardTexts() (stars, coins, crowns string) {
	return s.starsText, s.coinsText, s.crownsText
}

// BannerVisible 横幅是否显示
func (s *LevelCompleteScreen) BannerVisible() bool { return s.bannerOn }

// Draw 绘制结算界面
func (s *LevelCompleteScreen) Draw(dst *ebiten.Image) {
	if !s.active {
		return
	}
	full := motion{alpha: 1}
	fillRect(dst, s.Bounds, full, backgroundColor)

	m := s.motion()
	panel := image.Rect(40, 140, s.Bounds.Dx()-40, 460)
	fillRect(dst, panel, m, panelColor)
	strokeRect(dst, panel, m, borderColor)
	if s.bannerOn {
		drawText(dst, s.Title, panel.Min.X+110, panel.Min.Y+24, m)
	}
	drawText(dst, "STARS  "+s.starsText, panel.Min.X+40, panel.Min.Y+100, m)
	drawText(dst, "COINS  "+s.coinsText, panel.Min.X+40, panel.Min.Y+160, m)
	drawText(dst, "CROWNS "+s.crownsText, panel.Min.X+40, panel.Min.Y+220, m)

	for _, b := range s.buttons {
		b.Draw(dst, full)
	}
}
