package ui

import (
	"errors"
	"testing"
)

// TestGetOrCreateReturnsSameInstance 同一标识总是返回同一实例
func TestGetOrCreateReturnsSameInstance(t *testing.T) {
	created := 0
	r := NewScreenRegistry(map[ScreenID]ScreenFactory{
		ScreenSettings: func() Screen {
			created++
			return newStubScreen(ScreenSettings)
		},
	})

	s1, err := r.GetOrCreate(ScreenSettings)
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	s2, err := r.GetOrCreate(ScreenSettings)
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	if s1 != s2 {
		t.Error("GetOrCreate returned different instances")
	}
	if created != 1 {
		t.Errorf("factory calls: got %d, want 1", created)
	}
}

// TestGetOrCreateUnknownIdentity 未注册模板的标识返回错误且不创建
func TestGetOrCreateUnknownIdentity(t *testing.T) {
	r := NewScreenRegistry(map[ScreenID]ScreenFactory{})

	s, err := r.GetOrCreate(ScreenPrivacy)
	if !errors.Is(err, ErrUnknownScreenIdentity) {
		t.Errorf("error: got %v, want ErrUnknownScreenIdentity", err)
	}
	if s != nil {
		t.Error("expected nil screen")
	}
	if len(r.Screens()) != 0 {
		t.Error("registry should stay empty")
	}
}

// TestLookupDoesNotCreate Lookup 不触发创建
func TestLookupDoesNotCreate(t *testing.T) {
	r := NewScreenRegistry(map[ScreenID]ScreenFactory{
		ScreenHome: func() Screen { return newStubScreen(ScreenHome) },
	})
	if _, ok := r.Lookup(ScreenHome); ok {
		t.Error("Lookup found a screen before creation")
	}
	r.GetOrCreate(ScreenHome)
	if _, ok := r.Lookup(ScreenHome); !ok {
		t.Error("Lookup missed a created screen")
	}
}

// TestBringToFront 绘制顺序按创建顺序，BringToFront 移到最上层
func TestBringToFront(t *testing.T) {
	ids := []ScreenID{ScreenHome, ScreenPopupBackground, ScreenSettings}
	templates := map[ScreenID]ScreenFactory{}
	for _, id := range ids {
		id := id
		templates[id] = func() Screen { return newStubScreen(id) }
	}
	r := NewScreenRegistry(templates)
	for _, id := range ids {
		r.GetOrCreate(id)
	}

	home, _ := r.Lookup(ScreenHome)
	r.BringToFront(home)
	r.BringToFront(newStubScreen(ScreenPrivacy)) // 不在注册表中，忽略

	want := []ScreenID{ScreenPopupBackground, ScreenSettings, ScreenHome}
	got := r.Screens()
	if len(got) != len(want) {
		t.Fatalf("Screens(): got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID() != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, got[i].ID(), want[i])
		}
	}
}

// TestDefaultTemplates 默认模板覆盖所有标识且 ID 一致
func TestDefaultTemplates(t *testing.T) {
	r := NewScreenRegistry(DefaultTemplates(TemplateOptions{}))
	ids := []ScreenID{
		ScreenHome, ScreenEndGame, ScreenPopupBackground, ScreenSettings,
		ScreenTermsAndConditions, ScreenAdPopup, ScreenPrivacy, ScreenLanguage,
	}
	for _, id := range ids {
		s, err := r.GetOrCreate(id)
		if err != nil {
			t.Errorf("GetOrCreate(%s) error: %v", id, err)
			continue
		}
		if s.ID() != id {
			t.Errorf("GetOrCreate(%s).ID() = %s", id, s.ID())
		}
		if s.IsShown() {
			t.Errorf("%s should start hidden", id)
		}
	}
}
