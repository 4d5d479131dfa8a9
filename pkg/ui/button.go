package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Button 矩形点击区域
type Button struct {
	ID      string
	Label   string
	Rect    image.Rectangle
	OnClick func()
}

// NewButton 创建按钮
func NewButton(id, label string, rect image.Rectangle, onClick func()) *Button {
	return &Button{ID: id, Label: label, Rect: rect, OnClick: onClick}
}

// Contains 点是否落在按钮内
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Click 模拟一次点击
func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Draw 绘制按钮
func (b *Button) Draw(dst *ebiten.Image, m motion) {
	fillRect(dst, b.Rect, m, buttonColor)
	strokeRect(dst, b.Rect, m, borderColor)
	drawText(dst, b.Label, b.Rect.Min.X+8, b.Rect.Min.Y+b.Rect.Dy()/2-8, m)
}
