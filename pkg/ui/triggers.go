package ui

import "log"

// EventTrigger 一个可延迟触发的自定义事件
//
// 延迟触发期间再次 Fire 会取消上一次等待中的触发并重新计时。
type EventTrigger struct {
	Name   string
	Delay  float64 // 秒，<= 0 时立即触发
	Action func()

	remaining float64
	armed     bool
}

// Fire 触发事件
func (t *EventTrigger) Fire() {
	if t.Delay <= 0 {
		t.invoke()
		return
	}
	t.remaining = t.Delay
	t.armed = true
}

// Cancel 取消等待中的触发
func (t *EventTrigger) Cancel() {
	t.armed = false
}

// Pending 是否有等待中的触发
func (t *EventTrigger) Pending() bool {
	return t.armed
}

// Update 推进延迟计时
func (t *EventTrigger) Update(dt float64) {
	if !t.armed {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.armed = false
		t.invoke()
	}
}

func (t *EventTrigger) invoke() {
	if t.Action == nil {
		log.Printf("[EventTrigger] %q has no action", t.Name)
		return
	}
	t.Action()
}

// TriggerSource 一组按索引分组的自定义事件
//
// 屏幕约定：索引 0 在入场动画开始时触发，索引 1 在退场动画开始时触发。
type TriggerSource struct {
	Events []*EventTrigger
}

// NewTriggerSource 创建触发源
func NewTriggerSource(events ...*EventTrigger) *TriggerSource {
	return &TriggerSource{Events: events}
}

// FireIndex 触发指定索引的事件，越界时忽略
func (s *TriggerSource) FireIndex(index int) {
	if index < 0 || index >= len(s.Events) {
		return
	}
	s.Events[index].Fire()
}

// Update 推进所有事件的延迟
func (s *TriggerSource) Update(dt float64) {
	for _, e := range s.Events {
		e.Update(dt)
	}
}
