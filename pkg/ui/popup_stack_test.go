package ui

import (
	"errors"
	"math/rand"
	"testing"
)

type listenerToken struct{ name string }

// recordingLayers 记录 BringToFront 调用顺序
type recordingLayers struct {
	raised []ScreenID
}

func (r *recordingLayers) BringToFront(s Screen) { r.raised = append(r.raised, s.ID()) }

type stackFixture struct {
	stack    *PopupStack
	bg       *stubBackground
	listener *listenerToken
	layers   *recordingLayers
	screens  []*stubScreen
}

func newStackFixture(n int) *stackFixture {
	f := &stackFixture{
		bg:       newStubBackground(),
		listener: &listenerToken{name: "controller"},
		layers:   &recordingLayers{},
	}
	ids := []ScreenID{ScreenSettings, ScreenLanguage, ScreenTermsAndConditions, ScreenPrivacy, ScreenAdPopup}
	for i := 0; i < n; i++ {
		f.screens = append(f.screens, newStubScreen(ids[i%len(ids)], &fakeAnimator{duration: 0.2}))
	}
	f.stack = NewPopupStack(f.bg, f.listener, f.layers)
	return f
}

func (f *stackFixture) update(dt float64) {
	f.bg.Update(dt)
	for _, s := range f.screens {
		s.Update(dt)
	}
}

func (f *stackFixture) settle() { tick(f.update, 1) }

// checkInvariants 栈顶是唯一显示且绑定监听者的条目；背景显示当且仅当栈非空
func (f *stackFixture) checkInvariants(t *testing.T, step int) {
	t.Helper()
	entries := f.stack.Entries()
	for i, e := range entries {
		s := e.(*stubScreen)
		isTop := i == len(entries)-1
		if s.IsShown() != isTop {
			t.Errorf("step %d: entry %d (%s) shown=%v, top=%v", step, i, s.ID(), s.IsShown(), isTop)
		}
		if (s.listener != nil) != isTop {
			t.Errorf("step %d: entry %d (%s) registered=%v, top=%v", step, i, s.ID(), s.listener != nil, isTop)
		}
	}
	if f.bg.IsShown() != (len(entries) > 0) {
		t.Errorf("step %d: background shown=%v with %d entries", step, f.bg.IsShown(), len(entries))
	}
}

// TestPopupStackRandomSequence 任意 push/pop 序列下不变量成立
func TestPopupStackRandomSequence(t *testing.T) {
	f := newStackFixture(5)
	rng := rand.New(rand.NewSource(7))

	for step := 0; step < 200; step++ {
		if f.stack.Len() < len(f.screens) && (f.stack.Len() == 0 || rng.Intn(2) == 0) {
			f.stack.Push(f.screens[f.stack.Len()])
		} else if _, err := f.stack.Pop(); err != nil {
			t.Fatalf("step %d: unexpected pop error: %v", step, err)
		}
		f.settle()
		f.checkInvariants(t, step)
	}
}

// TestPushPopRestoresPreviousTop pop 紧跟 push 恢复之前的栈顶
func TestPushPopRestoresPreviousTop(t *testing.T) {
	f := newStackFixture(2)
	a, b := f.screens[0], f.screens[1]

	f.stack.Push(a)
	f.settle()
	f.stack.Push(b)
	if a.IsShown() {
		t.Error("previous top should be hidden immediately on push")
	}
	if a.listener != nil {
		t.Error("previous top should be unregistered on push")
	}
	f.settle()

	popped, err := f.stack.Pop()
	if err != nil {
		t.Fatalf("Pop() error: %v", err)
	}
	if popped != b {
		t.Errorf("Pop() returned %s, want %s", popped.ID(), b.ID())
	}
	if b.listener != nil {
		t.Error("popped screen should be unregistered immediately")
	}
	f.settle()

	if f.stack.Peek() != a {
		t.Fatal("previous top should be back on top")
	}
	if !a.IsShown() || a.listener != f.listener {
		t.Errorf("previous top: shown=%v listener=%v", a.IsShown(), a.listener)
	}
	if a.registrations != 2 {
		t.Errorf("registrations: got %d, want 2", a.registrations)
	}
	f.checkInvariants(t, 0)
}

// TestPopEmptyStack 空栈 Pop 返回 ErrEmptyStack
func TestPopEmptyStack(t *testing.T) {
	f := newStackFixture(0)
	if _, err := f.stack.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("Pop() error: got %v, want ErrEmptyStack", err)
	}
	if f.stack.Peek() != nil {
		t.Error("Peek() on empty stack should be nil")
	}
}

// TestBackgroundLifecycle 背景只在第一次 push 时准备，最后一次 pop 后隐藏
func TestBackgroundLifecycle(t *testing.T) {
	f := newStackFixture(2)

	f.stack.Push(f.screens[0])
	if f.bg.prepared != 1 || !f.bg.IsShown() {
		t.Fatalf("after first push: prepared=%d shown=%v", f.bg.prepared, f.bg.IsShown())
	}
	f.stack.Push(f.screens[1])
	if f.bg.prepared != 1 {
		t.Errorf("background prepared again on nested push: %d", f.bg.prepared)
	}
	f.settle()

	f.stack.Pop()
	f.settle()
	if !f.bg.IsShown() {
		t.Error("background hidden while a popup remains")
	}

	f.stack.Pop()
	if !f.bg.IsShown() {
		t.Error("background should stay until the last popup finished hiding")
	}
	f.settle()
	if f.bg.IsShown() {
		t.Error("background should be hidden once the stack is empty")
	}
}

// TestPushWhileBackgroundHiding 背景退场过程中再次 push 会取消退场
func TestPushWhileBackgroundHiding(t *testing.T) {
	f := newStackFixture(2)

	f.stack.Push(f.screens[0])
	f.settle()
	f.stack.Pop()
	// 弹窗退场结束，背景开始退场
	tick(f.update, 0.21)
	f.stack.Push(f.screens[1])
	f.settle()

	if !f.bg.IsShown() {
		t.Error("background should be shown after re-push")
	}
	if f.bg.prepared != 2 {
		t.Errorf("background prepared %d times, want 2", f.bg.prepared)
	}
	f.checkInvariants(t, 0)
}

// TestPushRaisesBackgroundThenPopup 绘制顺序：背景在下，新弹窗在上
func TestPushRaisesBackgroundThenPopup(t *testing.T) {
	f := newStackFixture(2)
	f.stack.Push(f.screens[0])
	f.stack.Push(f.screens[1])

	want := []ScreenID{ScreenPopupBackground, f.screens[0].ID(), f.screens[1].ID()}
	if len(f.layers.raised) != len(want) {
		t.Fatalf("raised: got %v, want %v", f.layers.raised, want)
	}
	for i := range want {
		if f.layers.raised[i] != want[i] {
			t.Errorf("raised[%d]: got %s, want %s", i, f.layers.raised[i], want[i])
		}
	}
}

// TestPushSameScreenTwice 重复 push 同一屏幕被忽略
func TestPushSameScreenTwice(t *testing.T) {
	f := newStackFixture(1)
	f.stack.Push(f.screens[0])
	f.stack.Push(f.screens[0])
	if f.stack.Len() != 1 {
		t.Errorf("Len(): got %d, want 1", f.stack.Len())
	}
}

// TestClear 清空后所有弹窗与背景都隐藏并解绑
func TestClear(t *testing.T) {
	f := newStackFixture(3)
	for _, s := range f.screens {
		f.stack.Push(s)
	}
	f.settle()

	f.stack.Clear()
	if f.stack.Len() != 0 {
		t.Fatalf("Len() after Clear: %d", f.stack.Len())
	}
	for _, s := range f.screens {
		if s.IsShown() || s.listener != nil {
			t.Errorf("%s: shown=%v registered=%v", s.ID(), s.IsShown(), s.listener != nil)
		}
	}
	if f.bg.IsShown() {
		t.Error("background shown after Clear")
	}
}
