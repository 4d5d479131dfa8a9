package ui

import (
	"image"

	"github.com/decker502/casualui/pkg/anim"
	"github.com/decker502/casualui/pkg/config"
	"github.com/decker502/casualui/pkg/game"
)

// fakeAnimator 按固定时长完成的动画
type fakeAnimator struct {
	duration  float64
	plays     []anim.Direction
	snaps     []anim.Direction
	pending   func()
	remaining float64
}

func (f *fakeAnimator) Play(dir anim.Direction, onComplete func()) {
	f.plays = append(f.plays, dir)
	f.pending = nil
	if f.duration <= 0 {
		if onComplete != nil {
			onComplete()
		}
		return
	}
	f.pending = onComplete
	f.remaining = f.duration
}

func (f *fakeAnimator) Snap(dir anim.Direction) {
	f.snaps = append(f.snaps, dir)
	f.pending = nil
}

func (f *fakeAnimator) Update(dt float64) {
	if f.pending == nil {
		return
	}
	f.remaining -= dt
	if f.remaining <= 0 {
		cb := f.pending
		f.pending = nil
		if cb != nil {
			cb()
		}
	}
}

// stubScreen 记录监听者注册情况的屏幕
type stubScreen struct {
	BaseScreen
	listener      any
	registrations int
}

func newStubScreen(id ScreenID, elements ...Animator) *stubScreen {
	s := &stubScreen{BaseScreen: newBaseScreen(id, image.Rect(0, 0, 100, 100))}
	for _, e := range elements {
		s.AddElement(e)
	}
	return s
}

func (s *stubScreen) RegisterListener(l any) {
	s.listener = l
	s.registrations++
}

func (s *stubScreen) UnregisterListener(l any) {
	if s.listener == l {
		s.listener = nil
	}
}

// stubBackground 记录背景准备次数
type stubBackground struct {
	stubScreen
	prepared int
}

func (b *stubBackground) PrepareBackdrop() { b.prepared++ }

func newStubBackground() *stubBackground {
	b := &stubBackground{}
	b.stubScreen = *newStubScreen(ScreenPopupBackground, &fakeAnimator{duration: 0.2})
	return b
}

// fakeAudio 记录播放的音效
type fakeAudio struct {
	on     map[game.AudioType]bool
	sounds []string
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{on: map[game.AudioType]bool{
		game.AudioTypeMusic: true,
		game.AudioTypeSound: true,
	}}
}

func (a *fakeAudio) Toggle(channel game.AudioType, on bool) { a.on[channel] = on }
func (a *fakeAudio) IsOn(channel game.AudioType) bool      { return a.on[channel] }
func (a *fakeAudio) PlaySound(id string) bool {
	a.sounds = append(a.sounds, id)
	return true
}

// fakeRecorder 记录设置持久化调用
type fakeRecorder struct {
	vibration, notifications bool
	language                 int
	saves                    int
}

func (r *fakeRecorder) SetVibrationEnabled(v bool)     { r.vibration = v }
func (r *fakeRecorder) SetNotificationsEnabled(v bool) { r.notifications = v }
func (r *fakeRecorder) SetLanguage(i int)              { r.language = i }
func (r *fakeRecorder) Save() error {
	r.saves++
	return nil
}

// fakeCapturer 记录截屏调用
type fakeCapturer struct {
	inits, captures int
}

func (c *fakeCapturer) InitTexture()    { c.inits++ }
func (c *fakeCapturer) CaptureAndBlur() { c.captures++ }

// countingHome 统计 SetCoinsText 调用次数
type countingHome struct {
	*HomeScreen
	setCalls int
}

func (h *countingHome) SetCoinsText(text string) {
	h.setCalls++
	h.HomeScreen.SetCoinsText(text)
}

// tick 以固定帧长推进 seconds 秒
func tick(update func(float64), seconds float64) {
	frames := int(seconds/config.FrameDeltaTime) + 1
	for i := 0; i < frames; i++ {
		update(config.FrameDeltaTime)
	}
}

// settle 推进足够长时间让所有动画结束
func settle(r *ScreenRegistry) {
	tick(r.Update, 2)
}

// testHarness 使用默认模板的完整导航环境
type testHarness struct {
	registry   *ScreenRegistry
	audio      *fakeAudio
	recorder   *fakeRecorder
	capturer   *fakeCapturer
	controller *NavigationController
	home       *countingHome
	openedURLs []string
}

func newTestHarness() *testHarness {
	h := &testHarness{
		audio:    newFakeAudio(),
		recorder: &fakeRecorder{},
		capturer: &fakeCapturer{},
	}
	templates := DefaultTemplates(TemplateOptions{BlurBackground: true, Capturer: h.capturer})
	templates[ScreenHome] = func() Screen {
		h.home = &countingHome{HomeScreen: NewHomeScreen()}
		return h.home
	}
	h.registry = NewScreenRegistry(templates)
	h.controller = NewNavigationController(ControllerConfig{
		Registry: h.registry,
		Audio:    h.audio,
		InitData: config.DefaultInitGameData(),
		Settings: h.recorder,
		OpenURL: func(url string) error {
			h.openedURLs = append(h.openedURLs, url)
			return nil
		},
	})
	return h
}

func (h *testHarness) boot() {
	if err := h.controller.Boot(false); err != nil {
		panic(err)
	}
	settle(h.registry)
}

func (h *testHarness) screen(id ScreenID) Screen {
	s, ok := h.registry.Lookup(id)
	if !ok {
		return nil
	}
	return s
}

func (h *testHarness) stackIDs() []ScreenID {
	var ids []ScreenID
	for _, s := range h.controller.Popups().Entries() {
		ids = append(ids, s.ID())
	}
	return ids
}
