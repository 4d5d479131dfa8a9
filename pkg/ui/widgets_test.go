package ui

import (
	"image"
	"testing"
)

type footerEvent struct {
	index            int
	locked, selected bool
}

func newTestFooter() (*FooterControl, *[]footerEvent) {
	f := NewFooterControl(footerLabels, image.Rect(0, 0, 500, 100))
	events := &[]footerEvent{}
	f.OnSlotClicked = func(index int, locked, selected bool) {
		*events = append(*events, footerEvent{index, locked, selected})
	}
	f.SetAllLockStates([]bool{true, false, false, false, true})
	return f, events
}

// TestFooterAtMostOneSelected 任意点击序列下最多一个选中
func TestFooterAtMostOneSelected(t *testing.T) {
	f, _ := newTestFooter()
	for _, i := range []int{1, 2, 0, 3, 3, 4, 2, 1} {
		f.Click(i)
		selected := 0
		for j := 0; j < f.Len(); j++ {
			if f.Slot(j).Selected {
				selected++
			}
		}
		if selected > 1 {
			t.Fatalf("after click %d: %d slots selected", i, selected)
		}
	}
	if f.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex(): got %d, want 1", f.SelectedIndex())
	}
}

// TestFooterEmitsPreClickState 事件携带点击前的状态，锁定的按钮组不会被选中
func TestFooterEmitsPreClickState(t *testing.T) {
	f, events := newTestFooter()

	f.Click(0) // 锁定
	f.Click(3)
	f.Click(3)

	want := []footerEvent{
		{0, true, false},
		{3, false, false},
		{3, false, true},
	}
	if len(*events) != len(want) {
		t.Fatalf("events: got %v, want %v", *events, want)
	}
	for i := range want {
		if (*events)[i] != want[i] {
			t.Errorf("event %d: got %+v, want %+v", i, (*events)[i], want[i])
		}
	}
	if f.Slot(0).Selected {
		t.Error("locked slot became selected")
	}
}

func TestFooterClearSelectionAndLocks(t *testing.T) {
	f, _ := newTestFooter()
	f.Click(2)
	f.ClearSelection()
	if f.SelectedIndex() != -1 || f.Slot(2).Selected {
		t.Error("ClearSelection did not clear the selected slot")
	}

	f.SetAllLockStates([]bool{false, false, false, false, false, true, true})
	f.SetLock(4, true)
	f.SetLock(9, false)
	if f.Slot(0).Locked || !f.Slot(4).Locked {
		t.Errorf("lock states: slot0=%v slot4=%v", f.Slot(0).Locked, f.Slot(4).Locked)
	}

	f.Click(-1)
	f.Click(7)
	if f.SelectedIndex() != -1 {
		t.Error("out-of-range click changed selection")
	}
}

func TestFooterHandleClickHitTest(t *testing.T) {
	f, events := newTestFooter()
	if !f.HandleClick(350, 50, motion{alpha: 1}) {
		t.Fatal("click inside slot 3 missed")
	}
	if f.HandleClick(50, 150, motion{alpha: 1}) {
		t.Error("click outside footer hit a slot")
	}
	if len(*events) != 1 || (*events)[0].index != 3 {
		t.Errorf("events: %v", *events)
	}
}

// TestToggleSlider 点击翻转并通知，SetState 不通知
func TestToggleSlider(t *testing.T) {
	s := NewToggleSlider("sound", "SOUND", image.Rect(0, 0, 80, 36), 0.15)
	var got []bool
	s.OnValueChanged = func(on bool) { got = append(got, on) }

	s.SetState(true, true)
	if !s.IsOn() || s.Knob() != 1 || len(got) != 0 {
		t.Fatalf("SetState: on=%v knob=%v notifications=%v", s.IsOn(), s.Knob(), got)
	}

	s.Click()
	if s.IsOn() || len(got) != 1 || got[0] {
		t.Fatalf("Click: on=%v notifications=%v", s.IsOn(), got)
	}
	if s.Knob() != 1 {
		t.Errorf("knob should not jump before Update, got %v", s.Knob())
	}
	tick(s.Update, 0.05)
	if k := s.Knob(); k <= 0 || k >= 1 {
		t.Errorf("knob mid-slide out of range: %v", k)
	}
	tick(s.Update, 0.2)
	if s.Knob() != 0 {
		t.Errorf("knob after slide: got %v, want 0", s.Knob())
	}
}

// TestEventTriggerDelay 延迟触发与重新触发
func TestEventTriggerDelay(t *testing.T) {
	fired := 0
	tr := &EventTrigger{Name: "pulse", Delay: 0.2, Action: func() { fired++ }}

	tr.Fire()
	tick(tr.Update, 0.15)
	tr.Fire() // 重新计时
	tick(tr.Update, 0.15)
	if fired != 0 {
		t.Fatalf("re-fired trigger went off early: %d", fired)
	}
	tick(tr.Update, 0.1)
	if fired != 1 {
		t.Errorf("fired: got %d, want 1", fired)
	}

	tr.Fire()
	tr.Cancel()
	tick(tr.Update, 0.5)
	if fired != 1 || tr.Pending() {
		t.Errorf("cancelled trigger fired: %d pending=%v", fired, tr.Pending())
	}

	immediate := 0
	src := NewTriggerSource(&EventTrigger{Action: func() { immediate++ }})
	src.FireIndex(0)
	src.FireIndex(3)
	src.FireIndex(-1)
	if immediate != 1 {
		t.Errorf("immediate trigger: got %d, want 1", immediate)
	}
}
