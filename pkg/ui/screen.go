package ui

import (
	"image"
	"image/color"
	"log"

	"github.com/decker502/casualui/pkg/anim"
	"github.com/hajimehoshi/ebiten/v2"
)

// Animator 屏幕子元素的动画协作者
//
// Play 在动画结束时调用 onComplete；再次 Play 会替换未完成的回调。
// Snap 直接跳到终点且不回调。
type Animator interface {
	Play(dir anim.Direction, onComplete func())
	Snap(dir anim.Direction)
	Update(dt float64)
}

// ScreenInitData 屏幕初始化数据（标记接口）
type ScreenInitData interface {
	screenInitData()
}

// Screen 可显示/隐藏的界面单元
type Screen interface {
	ID() ScreenID
	Init(data ScreenInitData)
	Show(animate bool, onComplete func())
	Hide(animate bool, onComplete func())
	IsShown() bool
	IsActive() bool

	// RegisterListener 绑定监听者实现的能力接口，不匹配的接口直接忽略
	RegisterListener(listener any)
	// UnregisterListener 解绑监听者，仅当它就是当前绑定的对象时生效
	UnregisterListener(listener any)

	Update(dt float64)
	Draw(dst *ebiten.Image)
	HandleClick(x, y int) bool
}

// transition 一次进行中的显示/隐藏过渡
//
// 所有子元素播放完毕且延迟耗尽后结束。被新的过渡替换后，
// 旧过渡的子元素回调会因为 token 不匹配而被忽略。
type transition struct {
	direction anim.Direction
	waiting   int     // 尚未完成的子元素数量
	delay     float64 // 剩余的完成延迟（与子元素动画同时计时）
	onFinish  func()
}

// BaseScreen 屏幕公共实现：激活状态、子元素动画、自定义事件与按钮
type BaseScreen struct {
	id     ScreenID
	Bounds image.Rectangle // 面板区域，点击落在其中时被本屏幕吸收
	Title  string

	elements []Animator
	triggers []*TriggerSource
	buttons  []*Button

	showDelay float64
	hideDelay float64

	shown   bool
	active  bool
	pending *transition
}

func newBaseScreen(id ScreenID, bounds image.Rectangle) BaseScreen {
	return BaseScreen{id: id, Bounds: bounds, Title: id.String()}
}

// ID 屏幕标识
func (s *BaseScreen) ID() ScreenID { return s.id }

// Init 基础屏幕没有初始化数据
func (s *BaseScreen) Init(ScreenInitData) {}

// IsShown 是否处于显示状态
func (s *BaseScreen) IsShown() bool { return s.shown }

// IsActive 是否激活（参与绘制和 Update）
func (s *BaseScreen) IsActive() bool { return s.active }

// RegisterListener 基础屏幕不接受任何监听者
func (s *BaseScreen) RegisterListener(any) {}

// UnregisterListener 基础屏幕不接受任何监听者
func (s *BaseScreen) UnregisterListener(any) {}

// AddElement 追加一个动画子元素
func (s *BaseScreen) AddElement(a Animator) {
	s.elements = append(s.elements, a)
}

// AddTriggerSource 追加一组自定义事件
func (s *BaseScreen) AddTriggerSource(src *TriggerSource) {
	s.triggers = append(s.triggers, src)
}

// SetDelays 设置显示/隐藏完成前的额外延迟（秒）
func (s *BaseScreen) SetDelays(show, hide float64) {
	s.showDelay = show
	s.hideDelay = hide
}

// AddButton 追加按钮
func (s *BaseScreen) AddButton(b *Button) *Button {
	s.buttons = append(s.buttons, b)
	return b
}

// Button 按ID查找按钮
func (s *BaseScreen) Button(id string) *Button {
	for _, b := range s.buttons {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Transitioning 是否有进行中的过渡
func (s *BaseScreen) Transitioning() bool {
	return s.pending != nil
}

// Show 显示屏幕
//
// 取消进行中的过渡（其回调不再触发），立即激活并标记为显示。
// animate 且存在子元素时播放入场动画并触发 0 号事件组，全部完成（含延迟）后回调；
// 否则子元素直接跳到显示状态并立即回调。
func (s *BaseScreen) Show(animate bool, onComplete func()) {
	s.cancelTransition()
	s.active = true
	s.shown = true

	if !animate || len(s.elements) == 0 {
		s.snapElements(anim.Show)
		if onComplete != nil {
			onComplete()
		}
		return
	}

	s.startTransition(anim.Show, s.showDelay, onComplete)
	s.fireTriggers(0)
}

// Hide 隐藏屏幕
//
// 与 Show 对称：完成时先取消激活并标记为隐藏，再调用 onComplete。
func (s *BaseScreen) Hide(animate bool, onComplete func()) {
	s.cancelTransition()

	// 已隐藏的屏幕直接完成
	if !animate || len(s.elements) == 0 || !s.active {
		s.snapElements(anim.Hide)
		s.deactivate()
		if onComplete != nil {
			onComplete()
		}
		return
	}

	s.startTransition(anim.Hide, s.hideDelay, onComplete)
	s.fireTriggers(1)
}

// Update 推进子元素动画、自定义事件延迟与过渡计时
func (s *BaseScreen) Update(dt float64) {
	for _, e := range s.elements {
		e.Update(dt)
	}
	for _, src := range s.triggers {
		src.Update(dt)
	}
	if tr := s.pending; tr != nil {
		tr.delay -= dt
		s.tryFinish(tr)
	}
}

// HandleClick 分发点击；返回点击是否被本屏幕消费
func (s *BaseScreen) HandleClick(x, y int) bool {
	if !s.interactive() {
		return false
	}
	for _, b := range s.buttons {
		if b.Contains(x, y) {
			b.Click()
			return true
		}
	}
	return image.Pt(x, y).In(s.Bounds)
}

// Draw 绘制面板、标题与按钮
func (s *BaseScreen) Draw(dst *ebiten.Image) {
	if !s.active {
		return
	}
	s.drawChrome(dst, panelColor)
}

func (s *BaseScreen) drawChrome(dst *ebiten.Image, bg color.RGBA) {
	m := s.motion()
	fillRect(dst, s.Bounds, m, bg)
	strokeRect(dst, s.Bounds, m, borderColor)
	drawText(dst, s.Title, s.Bounds.Min.X+12, s.Bounds.Min.Y+10, m)
	for _, b := range s.buttons {
		b.Draw(dst, m)
	}
}

// motion 取第一个可读属性的子元素作为整块面板的位移与透明度
func (s *BaseScreen) motion() motion {
	for _, e := range s.elements {
		if r, ok := e.(propertyReader); ok {
			return motionOf(r)
		}
	}
	return motion{alpha: 1}
}

// interactive 激活且不在退场过程中
func (s *BaseScreen) interactive() bool {
	if !s.active {
		return false
	}
	return s.pending == nil || s.pending.direction != anim.Hide
}

func (s *BaseScreen) startTransition(dir anim.Direction, delay float64, onComplete func()) {
	tr := &transition{
		direction: dir,
		waiting:   len(s.elements),
		delay:     delay,
		onFinish:  onComplete,
	}
	s.pending = tr

	for _, e := range s.elements {
		e.Play(dir, func() {
			if s.pending != tr {
				return
			}
			tr.waiting--
			s.tryFinish(tr)
		})
	}
}

func (s *BaseScreen) tryFinish(tr *transition) {
	if s.pending != tr || tr.waiting > 0 || tr.delay > 0 {
		return
	}
	s.pending = nil

	if tr.direction == anim.Hide {
		s.deactivate()
	}
	if tr.onFinish != nil {
		tr.onFinish()
	}
}

func (s *BaseScreen) cancelTransition() {
	if s.pending != nil {
		log.Printf("[Screen] %s: cancelling pending %s transition", s.id, s.pending.direction)
		s.pending = nil
	}
}

func (s *BaseScreen) deactivate() {
	s.active = false
	s.shown = false
}

func (s *BaseScreen) snapElements(dir anim.Direction) {
	for _, e := range s.elements {
		e.Snap(dir)
	}
}

func (s *BaseScreen) fireTriggers(index int) {
	for _, src := range s.triggers {
		src.FireIndex(index)
	}
}
