// Package utils 提供平台与输入相关的工具函数
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerTracker 统一收集鼠标点击与触摸按下
//
// 每帧调用一次 JustPressed，复用内部切片，不在热路径分配。
type PointerTracker struct {
	touchIDs []ebiten.TouchID
	points   []image.Point
}

// JustPressed 返回本帧新按下的所有指针位置
// 触摸在前，鼠标左键在后
func (p *PointerTracker) JustPressed() []image.Point {
	p.points = p.points[:0]

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		p.points = append(p.points, image.Pt(x, y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.points = append(p.points, image.Pt(x, y))
	}
	return p.points
}
