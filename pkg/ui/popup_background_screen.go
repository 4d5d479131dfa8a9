package ui

import (
	"image"

	"github.com/decker502/casualui/pkg/anim"
	"github.com/decker502/casualui/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// BackdropCapturer 背景截屏与模糊协作者
type BackdropCapturer interface {
	// InitTexture 准备（或按尺寸重建）截屏纹理
	InitTexture()
	// CaptureAndBlur 截取当前画面并模糊
	CaptureAndBlur()
}

// backdropSource 能提供模糊后背景图的协作者（FrameCapturer 实现）
type backdropSource interface {
	Backdrop() *ebiten.Image
}

// PopupBackgroundScreen 所有弹窗共享的遮罩背景
//
// BlurBackground 为 true 时显示模糊截屏，否则显示半透明遮罩。
// 激活期间吸收所有点击，防止穿透到下层屏幕。
type PopupBackgroundScreen struct {
	BaseScreen

	BlurBackground bool
	capturer       BackdropCapturer
}

// NewPopupBackgroundScreen 创建弹窗背景；capturer 可为 nil
func NewPopupBackgroundScreen(blur bool, capturer BackdropCapturer) *PopupBackgroundScreen {
	s := &PopupBackgroundScreen{
		BaseScreen:     newBaseScreen(ScreenPopupBackground, image.Rect(0, 0, config.GameWindowWidth, config.GameWindowHeight)),
		BlurBackground: blur,
		capturer:       capturer,
	}
	s.AddElement(anim.NewFade("dim", float32(config.ScreenElementAnimDuration)))
	return s
}

// PrepareBackdrop 截屏并模糊；未开启模糊时不做任何事
func (s *PopupBackgroundScreen) PrepareBackdrop() {
	if !s.BlurBackground || s.capturer == nil {
		return
	}
	s.capturer.InitTexture()
	s.capturer.CaptureAndBlur()
}

// Draw 绘制模糊背景或遮罩
func (s *PopupBackgroundScreen) Draw(dst *ebiten.Image) {
	if !s.active {
		return
	}
	m := s.motion()
	if s.BlurBackground {
		if src, ok := s.capturer.(backdropSource); ok {
			if img := src.Backdrop(); img != nil {
				op := &ebiten.DrawImageOptions{}
				op.ColorScale.ScaleAlpha(float32(m.alpha))
				dst.DrawImage(img, op)
			}
		}
	}
	fillRect(dst, s.Bounds, m, dimColor)
}
