package ui

import (
	"fmt"
	"log"
)

// LayerOrderer 调整屏幕绘制顺序（ScreenRegistry 实现）
type LayerOrderer interface {
	BringToFront(s Screen)
}

// backdropPreparer 显示前需要准备背景的屏幕（PopupBackgroundScreen 实现）
type backdropPreparer interface {
	PrepareBackdrop()
}

// PopupStack 弹窗栈
//
// 不变量：
//   - 只有栈顶处于显示状态并绑定监听者，其余条目无动画隐藏且已解绑
//   - 共享背景在栈非空时显示，栈变空时隐藏
type PopupStack struct {
	background Screen
	listener   any
	layers     LayerOrderer
	entries    []Screen
}

// NewPopupStack 创建弹窗栈
//
// 参数：
//   - background: 共享背景屏幕
//   - listener: 绑定到栈顶弹窗的监听者（导航控制器）
//   - layers: 绘制顺序调整器，可为 nil
func NewPopupStack(background Screen, listener any, layers LayerOrderer) *PopupStack {
	return &PopupStack{background: background, listener: listener, layers: layers}
}

// Len 栈中弹窗数量
func (p *PopupStack) Len() int { return len(p.entries) }

// Background 共享背景
func (p *PopupStack) Background() Screen { return p.background }

// Entries 从底到顶返回所有条目
func (p *PopupStack) Entries() []Screen {
	out := make([]Screen, len(p.entries))
	copy(out, p.entries)
	return out
}

// Peek 返回栈顶，空栈返回 nil
func (p *PopupStack) Peek() Screen {
	if len(p.entries) == 0 {
		return nil
	}
	return p.entries[len(p.entries)-1]
}

// Push 压入弹窗
//
// 背景未显示时先截屏并显示背景；旧栈顶无动画隐藏并解绑；
// 新弹窗绑定监听者、播放入场动画并移到最上层。
func (p *PopupStack) Push(s Screen) {
	for _, e := range p.entries {
		if e == s {
			log.Printf("[PopupStack] Screen %s is already on the stack, ignoring push", s.ID())
			return
		}
	}

	// 栈为空时背景可能正在播放退场动画，重新显示会取消它
	if len(p.entries) == 0 || !p.background.IsShown() {
		p.showBackground()
	}

	if top := p.Peek(); top != nil {
		top.UnregisterListener(p.listener)
		top.Hide(false, nil)
	}

	p.entries = append(p.entries, s)
	s.RegisterListener(p.listener)
	s.Show(true, nil)
	p.bringToFront(s)
	log.Printf("[PopupStack] Pushed %s (depth %d)", s.ID(), len(p.entries))
}

// Pop 弹出栈顶
//
// 栈顶解绑并播放退场动画；动画完成后，若栈仍非空则重新绑定并无动画显示新栈顶，
// 否则隐藏背景。
func (p *PopupStack) Pop() (Screen, error) {
	if len(p.entries) == 0 {
		return nil, fmt.Errorf("pop: %w", ErrEmptyStack)
	}

	top := p.entries[len(p.entries)-1]
	p.entries = p.entries[:len(p.entries)-1]
	top.UnregisterListener(p.listener)
	log.Printf("[PopupStack] Popped %s (depth %d)", top.ID(), len(p.entries))

	top.Hide(true, func() {
		if next := p.Peek(); next != nil {
			next.RegisterListener(p.listener)
			next.Show(false, nil)
			return
		}
		p.background.Hide(true, nil)
	})
	return top, nil
}

// Clear 无动画隐藏并解绑所有弹窗，隐藏背景
func (p *PopupStack) Clear() {
	for i := len(p.entries) - 1; i >= 0; i-- {
		e := p.entries[i]
		e.UnregisterListener(p.listener)
		e.Hide(false, nil)
	}
	p.entries = nil
	p.background.Hide(false, nil)
	log.Printf("[PopupStack] Cleared")
}

func (p *PopupStack) showBackground() {
	p.bringToFront(p.background)
	if prep, ok := p.background.(backdropPreparer); ok {
		prep.PrepareBackdrop()
	}
	p.background.Show(true, nil)
}

func (p *PopupStack) bringToFront(s Screen) {
	if p.layers != nil {
		p.layers.BringToFront(s)
	}
}
