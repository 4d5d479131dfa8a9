package ui

import (
	"image"

	"github.com/decker502/casualui/pkg/anim"
	"github.com/decker502/casualui/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// 弹窗按钮ID
const (
	ButtonClose = "close"
	ButtonBack  = "back"
)

// popupBounds 弹窗面板默认区域（居中）
func popupBounds(height int) image.Rectangle {
	w, h := config.GameWindowWidth, config.GameWindowHeight
	margin := 36
	top := (h - height) / 2
	return image.Rect(margin, top, w-margin, top+height)
}

// PopupScreen 弹窗基础：面板缩放入场 + 关闭按钮
type PopupScreen struct {
	BaseScreen

	closeListener PopupScreenListener
}

func newPopupScreen(id ScreenID, title string, bounds image.Rectangle) PopupScreen {
	p := PopupScreen{BaseScreen: newBaseScreen(id, bounds)}
	p.Title = title
	p.SetDelays(0, config.PopupHideDelay)
	p.AddElement(anim.NewScale("panel", 0.8, float32(config.ScreenElementAnimDuration)))
	return p
}

// addCloseButton 在面板右上角添加关闭按钮
//
// 回调绑定 p 的地址，必须在弹窗结构放到最终位置之后调用。
func (p *PopupScreen) addCloseButton() {
	r := p.Bounds
	p.AddButton(NewButton(ButtonClose, "X", image.Rect(r.Max.X-44, r.Min.Y+4, r.Max.X-4, r.Min.Y+44), p.notifyClose))
}

func (p *PopupScreen) notifyClose() {
	if p.closeListener != nil {
		p.closeListener.HandleCloseButtonClicked()
	}
}

// RegisterListener 绑定 PopupScreenListener
func (p *PopupScreen) RegisterListener(listener any) {
	if l, ok := listener.(PopupScreenListener); ok {
		p.closeListener = l
	}
}

// UnregisterListener 解绑 PopupScreenListener
func (p *PopupScreen) UnregisterListener(listener any) {
	if l, ok := listener.(PopupScreenListener); ok && l == p.closeListener {
		p.closeListener = nil
	}
}

// GenericPopupScreen 只有正文和关闭/返回按钮的弹窗（条款、隐私、广告）
type GenericPopupScreen struct {
	PopupScreen
	Body string
}

// NewGenericPopupScreen 创建通用弹窗
func NewGenericPopupScreen(id ScreenID, title, body string) *GenericPopupScreen {
	s := &GenericPopupScreen{Body: body}
	s.PopupScreen = newPopupScreen(id, title, popupBounds(420))
	s.addCloseButton()
	s.addBackButton()
	return s
}

func (s *GenericPopupScreen) addBackButton() {
	r := s.Bounds
	cx := (r.Min.X + r.Max.X) / 2
	s.AddButton(NewButton(ButtonBack, "BACK", image.Rect(cx-60, r.Max.Y-60, cx+60, r.Max.Y-16), s.notifyClose))
}

// Draw 绘制面板与正文
func (s *GenericPopupScreen) Draw(dst *ebiten.Image) {
	if !s.active {
		return
	}
	s.drawChrome(dst, panelColor)
	drawText(dst, s.Body, s.Bounds.Min.X+16, s.Bounds.Min.Y+64, s.motion())
}
