package ui

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// FooterSlot 底部导航栏的一个按钮组
type FooterSlot struct {
	Label    string
	Rect     image.Rectangle
	Locked   bool
	Selected bool
}

// FooterControl 底部导航栏
//
// 点击时先以点击前的 (index, locked, selected) 通知 OnSlotClicked，
// 然后对未锁定且未选中的按钮组应用选中状态。任意时刻最多一个按钮组被选中。
type FooterControl struct {
	slots    []*FooterSlot
	selected int // -1 表示无选中

	OnSlotClicked func(index int, locked, selected bool)
}

// NewFooterControl 在 area 内等宽排列按钮组，初始全部锁定
func NewFooterControl(labels []string, area image.Rectangle) *FooterControl {
	f := &FooterControl{selected: -1}
	if len(labels) == 0 {
		return f
	}
	w := area.Dx() / len(labels)
	for i, label := range labels {
		x := area.Min.X + i*w
		f.slots = append(f.slots, &FooterSlot{
			Label:  label,
			Rect:   image.Rect(x, area.Min.Y, x+w, area.Max.Y),
			Locked: true,
		})
	}
	return f
}

// Len 按钮组数量
func (f *FooterControl) Len() int { return len(f.slots) }

// Slot 返回按钮组状态的副本；越界返回零值
func (f *FooterControl) Slot(index int) FooterSlot {
	if index < 0 || index >= len(f.slots) {
		return FooterSlot{}
	}
	return *f.slots[index]
}

// SelectedIndex 当前选中的按钮组，无选中时为 -1
func (f *FooterControl) SelectedIndex() int { return f.selected }

// SetLock 设置单个按钮组的锁定状态
func (f *FooterControl) SetLock(index int, locked bool) {
	if index < 0 || index >= len(f.slots) {
		return
	}
	f.slots[index].Locked = locked
}

// SetAllLockStates 按顺序设置锁定状态，多余的值被忽略
func (f *FooterControl) SetAllLockStates(states []bool) {
	for i, locked := range states {
		if i >= len(f.slots) {
			return
		}
		f.slots[i].Locked = locked
	}
}

// ClearSelection 取消选中
func (f *FooterControl) ClearSelection() {
	if f.selected >= 0 {
		f.slots[f.selected].Selected = false
	}
	f.selected = -1
}

// Click 点击按钮组
func (f *FooterControl) Click(index int) {
	if index < 0 || index >= len(f.slots) {
		log.Printf("[FooterControl] Ignoring click on slot %d", index)
		return
	}
	slot := f.slots[index]
	if f.OnSlotClicked != nil {
		f.OnSlotClicked(index, slot.Locked, slot.Selected)
	}
	if slot.Selected || slot.Locked {
		return
	}

	f.ClearSelection()
	slot.Selected = true
	f.selected = index
}

// HandleClick 命中测试并点击
func (f *FooterControl) HandleClick(x, y int, m motion) bool {
	pt := image.Pt(x-int(m.dx), y-int(m.dy))
	for i, slot := range f.slots {
		if pt.In(slot.Rect) {
			f.Click(i)
			return true
		}
	}
	return false
}

// Draw 绘制按钮组
func (f *FooterControl) Draw(dst *ebiten.Image, m motion) {
	for _, slot := range f.slots {
		var c color.RGBA
		switch {
		case slot.Locked:
			c = lockedColor
		case slot.Selected:
			c = selectedColor
		default:
			c = buttonColor
		}
		fillRect(dst, slot.Rect, m, c)
		strokeRect(dst, slot.Rect, m, borderColor)

		label := slot.Label
		if slot.Locked {
			label = "LOCK"
		}
		drawText(dst, label, slot.Rect.Min.X+8, slot.Rect.Min.Y+slot.Rect.Dy()/2-8, m)
	}
}
