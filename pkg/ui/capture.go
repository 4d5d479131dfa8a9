package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameCapturer 保存最近一帧画面，并在需要时生成模糊背景
//
// App 每帧先把所有屏幕绘制到 Frame()，再把它贴到屏幕上；
// CaptureAndBlur 通过先缩小再放大（线性过滤）得到模糊效果。
type FrameCapturer struct {
	width, height int
	downscale     int

	frame    *ebiten.Image
	small    *ebiten.Image
	blurred  *ebiten.Image
	captured bool
}

// NewFrameCapturer 创建截屏器；downscale 为缩小倍数（>= 2 才有模糊效果）
func NewFrameCapturer(width, height, downscale int) *FrameCapturer {
	if downscale < 1 {
		downscale = 1
	}
	return &FrameCapturer{width: width, height: height, downscale: downscale}
}

// Frame 返回离屏帧缓冲（惰性创建）
func (c *FrameCapturer) Frame() *ebiten.Image {
	if c.frame == nil {
		c.frame = ebiten.NewImage(c.width, c.height)
	}
	return c.frame
}

// Resize 逻辑尺寸变化时重建帧缓冲
func (c *FrameCapturer) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.frame = nil
	c.InitTexture()
}

// InitTexture 准备截屏纹理，尺寸不一致时重建
func (c *FrameCapturer) InitTexture() {
	sw, sh := max(c.width/c.downscale, 1), max(c.height/c.downscale, 1)
	if c.small == nil || c.small.Bounds().Dx() != sw || c.small.Bounds().Dy() != sh {
		c.small = ebiten.NewImage(sw, sh)
	}
	if c.blurred == nil || c.blurred.Bounds().Dx() != c.width || c.blurred.Bounds().Dy() != c.height {
		c.blurred = ebiten.NewImage(c.width, c.height)
		c.captured = false
	}
}

// CaptureAndBlur 把最近一帧缩小再放大到 blurred
func (c *FrameCapturer) CaptureAndBlur() {
	if c.small == nil || c.blurred == nil {
		c.InitTexture()
	}
	src := c.Frame()
	scale := 1 / float64(c.downscale)

	c.small.Clear()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(scale, scale)
	c.small.DrawImage(src, op)

	c.blurred.Clear()
	op = &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(c.downscale), float64(c.downscale))
	c.blurred.DrawImage(c.small, op)
	c.captured = true
}

// Backdrop 模糊后的背景，尚未截屏时为 nil
func (c *FrameCapturer) Backdrop() *ebiten.Image {
	if !c.captured {
		return nil
	}
	return c.blurred
}
