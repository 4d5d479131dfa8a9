// Package anim 提供屏幕子元素的入场/退场动画
//
// Element 把若干属性（透明度、位移、缩放、旋转、数字滚动）在 "隐藏值" 与 "显示值"
// 之间插值，由外部每帧调用 Update(dt) 推进。没有全局动画管理器。
package anim

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Direction 动画方向
type Direction int

const (
	// Show 入场：隐藏值 → 显示值
	Show Direction = iota
	// Hide 退场：当前值 → 隐藏值
	Hide
)

// String 返回方向名称（用于日志）
func (d Direction) String() string {
	if d == Show {
		return "show"
	}
	return "hide"
}

// Property 可动画的属性
type Property int

const (
	Alpha Property = iota
	OffsetX
	OffsetY
	Scale
	Rotation
	Count
	propertyCount
)

// Track 单个属性的隐藏值与显示值
type Track struct {
	Property Property
	Hidden   float64
	Shown    float64
}

// Element 一个带动画的界面子元素
type Element struct {
	Name   string
	Tracks []Track

	ShowDuration float32
	HideDuration float32
	ShowEase     ease.TweenFunc
	HideEase     ease.TweenFunc

	// OnCount 数字滚动回调（Count 轨道每帧取整后的值）
	OnCount func(value int)

	values     [propertyCount]float64
	tweens     []*gween.Tween
	direction  Direction
	playing    bool
	onComplete func()
	lastCount  int
}

// NewElement 创建元素，初始处于隐藏状态
func NewElement(name string, duration float32, tracks ...Track) *Element {
	e := &Element{
		Name:         name,
		Tracks:       tracks,
		ShowDuration: duration,
		HideDuration: duration,
		ShowEase:     ease.OutQuad,
		HideEase:     ease.InQuad,
		direction:    Hide,
		lastCount:    -1,
	}
	e.values[Alpha] = 1
	e.values[Scale] = 1
	e.snapTo(Hide)
	return e
}

// NewFade 淡入淡出
func NewFade(name string, duration float32) *Element {
	return NewElement(name, duration, Track{Property: Alpha, Hidden: 0, Shown: 1})
}

// NewSlide 从 (dx, dy) 偏移处滑入
func NewSlide(name string, dx, dy float64, duration float32) *Element {
	return NewElement(name, duration,
		Track{Property: OffsetX, Hidden: dx, Shown: 0},
		Track{Property: OffsetY, Hidden: dy, Shown: 0},
	)
}

// NewScale 从 from 缩放到 1，入场使用回弹缓动
func NewScale(name string, from float64, duration float32) *Element {
	e := NewElement(name, duration,
		Track{Property: Scale, Hidden: from, Shown: 1},
		Track{Property: Alpha, Hidden: 0, Shown: 1},
	)
	e.ShowEase = ease.OutBack
	return e
}

// NewRotate 从 angle（弧度）旋转到 0
func NewRotate(name string, angle float64, duration float32) *Element {
	return NewElement(name, duration, Track{Property: Rotation, Hidden: angle, Shown: 0})
}

// NewCountUp 数字从 0 滚动到 target
func NewCountUp(name string, target int, duration float32, onCount func(int)) *Element {
	e := NewElement(name, duration, Track{Property: Count, Hidden: 0, Shown: float64(target)})
	e.ShowEase = ease.OutCubic
	e.OnCount = onCount
	e.emitCount()
	return e
}

// SetTargetCount 修改 Count 轨道的目标值
func (e *Element) SetTargetCount(target int) {
	for i := range e.Tracks {
		if e.Tracks[i].Property == Count {
			e.Tracks[i].Shown = float64(target)
		}
	}
	if !e.playing && e.direction == Show {
		e.snapTo(Show)
	}
}

// Value 返回属性当前值
func (e *Element) Value(p Property) float64 {
	if p < 0 || p >= propertyCount {
		return 0
	}
	return e.values[p]
}

// IsShown 元素最近一次的目标方向是否为显示
func (e *Element) IsShown() bool {
	return e.direction == Show
}

// IsPlaying 是否正在播放动画
func (e *Element) IsPlaying() bool {
	return e.playing
}

// Play 播放动画，完成后调用 onComplete
//
// 正在播放的动画会被直接替换，其完成回调不会再触发。
// 入场动画总是从隐藏值开始，退场动画从当前值开始。
func (e *Element) Play(dir Direction, onComplete func()) {
	e.onComplete = nil
	e.playing = false
	e.direction = dir

	if dir == Show {
		e.snapTo(Hide)
		e.direction = Show
	}

	duration, fn := e.HideDuration, e.HideEase
	if dir == Show {
		duration, fn = e.ShowDuration, e.ShowEase
	}
	if duration <= 0 || len(e.Tracks) == 0 {
		e.snapTo(dir)
		if onComplete != nil {
			onComplete()
		}
		return
	}

	e.tweens = e.tweens[:0]
	for _, tr := range e.Tracks {
		to := tr.Hidden
		if dir == Show {
			to = tr.Shown
		}
		e.tweens = append(e.tweens, gween.New(float32(e.values[tr.Property]), float32(to), duration, fn))
	}
	e.onComplete = onComplete
	e.playing = true
}

// Snap 立即跳到方向的终点值，丢弃未完成的回调
func (e *Element) Snap(dir Direction) {
	e.onComplete = nil
	e.snapTo(dir)
}

// Update 推进动画 dt 秒
func (e *Element) Update(dt float64) {
	if !e.playing {
		return
	}

	allDone := true
	for i, tw := range e.tweens {
		val, finished := tw.Update(float32(dt))
		e.values[e.Tracks[i].Property] = float64(val)
		if !finished {
			allDone = false
		}
	}
	e.emitCount()

	if !allDone {
		return
	}
	e.snapTo(e.direction)
	if cb := e.onComplete; cb != nil {
		e.onComplete = nil
		cb()
	}
}

func (e *Element) snapTo(dir Direction) {
	e.playing = false
	e.direction = dir
	for _, tr := range e.Tracks {
		if dir == Show {
			e.values[tr.Property] = tr.Shown
		} else {
			e.values[tr.Property] = tr.Hidden
		}
	}
	e.emitCount()
}

func (e *Element) emitCount() {
	if e.OnCount == nil {
		return
	}
	v := int(math.Round(e.values[Count]))
	if v == e.lastCount {
		return
	}
	e.lastCount = v
	e.OnCount(v)
}
