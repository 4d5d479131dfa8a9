package ui

import (
	"image"
	"image/color"

	"github.com/decker502/casualui/pkg/anim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 界面配色
var (
	backgroundColor = color.RGBA{R: 0x3b, G: 0x7d, B: 0xd8, A: 0xff}
	panelColor      = color.RGBA{R: 0xf4, G: 0xe9, B: 0xd2, A: 0xff}
	borderColor     = color.RGBA{R: 0x5a, G: 0x3e, B: 0x2b, A: 0xff}
	buttonColor     = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	lockedColor     = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}
	selectedColor   = color.RGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0xff}
	toggleOffColor  = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	dimColor        = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x99}
)

// propertyReader 可读取动画属性值的子元素（anim.Element 实现）
type propertyReader interface {
	Value(p anim.Property) float64
}

// motion 绘制时应用的位移、缩放与透明度
type motion struct {
	dx, dy float64
	scale  float64
	alpha  float64
}

func motionOf(r propertyReader) motion {
	return motion{
		dx:    r.Value(anim.OffsetX),
		dy:    r.Value(anim.OffsetY),
		scale: r.Value(anim.Scale),
		alpha: r.Value(anim.Alpha),
	}
}

// apply 把矩形按 motion 变换（围绕中心缩放后平移）
func (m motion) apply(r image.Rectangle) (x, y, w, h float32) {
	scale := m.scale
	if scale <= 0 {
		scale = 1
	}
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	fw := float64(r.Dx()) * scale
	fh := float64(r.Dy()) * scale
	return float32(cx - fw/2 + m.dx), float32(cy - fh/2 + m.dy), float32(fw), float32(fh)
}

// fade 按透明度缩放颜色（color.RGBA 为预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func fillRect(dst *ebiten.Image, r image.Rectangle, m motion, c color.RGBA) {
	x, y, w, h := m.apply(r)
	vector.DrawFilledRect(dst, x, y, w, h, fade(c, m.alpha), false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, m motion, c color.RGBA) {
	x, y, w, h := m.apply(r)
	vector.StrokeRect(dst, x, y, w, h, 2, fade(c, m.alpha), false)
}

// drawText 使用调试字体绘制文本，几乎透明时不绘制
func drawText(dst *ebiten.Image, s string, x, y int, m motion) {
	if m.alpha < 0.5 {
		return
	}
	ebitenutil.DebugPrintAt(dst, s, x+int(m.dx), y+int(m.dy))
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
