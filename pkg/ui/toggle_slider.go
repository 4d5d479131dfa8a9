package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ToggleSlider 开关滑块
//
// 点击翻转开关并通过 OnValueChanged 通知；滑块位置 0（关）到 1（开）用 gween 过渡，
// 时长与剩余距离成正比。
type ToggleSlider struct {
	ID       string
	Label    string
	Rect     image.Rectangle
	Duration float32 // 完整滑动一次的时长（秒）

	OnValueChanged func(on bool)

	isOn  bool
	knob  float64
	tween *gween.Tween
}

// NewToggleSlider 创建开关，初始为关闭
func NewToggleSlider(id, label string, rect image.Rectangle, duration float32) *ToggleSlider {
	return &ToggleSlider{ID: id, Label: label, Rect: rect, Duration: duration}
}

// IsOn 当前开关值
func (t *ToggleSlider) IsOn() bool { return t.isOn }

// Knob 滑块位置（0 关，1 开）
func (t *ToggleSlider) Knob() float64 { return t.knob }

// SetState 设置开关值，不触发 OnValueChanged
func (t *ToggleSlider) SetState(on, instant bool) {
	t.isOn = on
	t.slide(instant)
}

// Click 翻转开关并通知
func (t *ToggleSlider) Click() {
	t.isOn = !t.isOn
	t.slide(false)
	if t.OnValueChanged != nil {
		t.OnValueChanged(t.isOn)
	}
}

// Contains 点是否落在开关内
func (t *ToggleSlider) Contains(x, y int) bool {
	return image.Pt(x, y).In(t.Rect)
}

// Update 推进滑块动画
func (t *ToggleSlider) Update(dt float64) {
	if t.tween == nil {
		return
	}
	v, finished := t.tween.Update(float32(dt))
	t.knob = float64(v)
	if finished {
		t.tween = nil
		t.knob = t.target()
	}
}

// Draw 绘制开关：底槽颜色随滑块位置在关/开颜色之间插值
func (t *ToggleSlider) Draw(dst *ebiten.Image, m motion) {
	drawText(dst, t.Label, t.Rect.Min.X-150, t.Rect.Min.Y+t.Rect.Dy()/2-8, m)
	fillRect(dst, t.Rect, m, lerpColor(toggleOffColor, buttonColor, t.knob))
	strokeRect(dst, t.Rect, m, borderColor)

	size := t.Rect.Dy() - 6
	travel := t.Rect.Dx() - size - 6
	x := t.Rect.Min.X + 3 + int(float64(travel)*t.knob)
	knob := image.Rect(x, t.Rect.Min.Y+3, x+size, t.Rect.Min.Y+3+size)
	fillRect(dst, knob, m, panelColor)
}

func (t *ToggleSlider) target() float64 {
	if t.isOn {
		return 1
	}
	return 0
}

func (t *ToggleSlider) slide(instant bool) {
	target := t.target()
	duration := float32(math.Abs(target-t.knob)) * t.Duration
	if instant || duration <= 0 {
		t.tween = nil
		t.knob = target
		return
	}
	t.tween = gween.New(float32(t.knob), float32(target), duration, ease.OutQuad)
}
