package ui

import (
	"fmt"
	"log"

	"github.com/decker502/casualui/pkg/config"
)

var (
	_ Screen = (*HomeScreen)(nil)
	_ Screen = (*SettingsScreen)(nil)
	_ Screen = (*GenericPopupScreen)(nil)
	_ Screen = (*LanguageScreen)(nil)
	_ Screen = (*PopupBackgroundScreen)(nil)
	_ Screen = (*LevelCompleteScreen)(nil)
)

// ScreenFactory 创建一个屏幕实例
type ScreenFactory func() Screen

// TemplateOptions 默认模板表的可选协作者
type TemplateOptions struct {
	BlurBackground bool
	Capturer       BackdropCapturer
	Languages      []config.Language
}

// DefaultTemplates 返回全部屏幕的模板表
func DefaultTemplates(opts TemplateOptions) map[ScreenID]ScreenFactory {
	return map[ScreenID]ScreenFactory{
		ScreenHome:    func() Screen { return NewHomeScreen() },
		ScreenEndGame: func() Screen { return NewLevelCompleteScreen() },
		ScreenPopupBackground: func() Screen {
			return NewPopupBackgroundScreen(opts.BlurBackground, opts.Capturer)
		},
		ScreenSettings: func() Screen { return NewSettingsScreen() },
		ScreenTermsAndConditions: func() Screen {
			return NewGenericPopupScreen(ScreenTermsAndConditions, "TERMS", "Terms and conditions apply.")
		},
		ScreenAdPopup: func() Screen {
			return NewGenericPopupScreen(ScreenAdPopup, "AD", "Watch an ad to double your reward!")
		},
		ScreenPrivacy: func() Screen {
			return NewGenericPopupScreen(ScreenPrivacy, "PRIVACY", "We respect your privacy.")
		},
		ScreenLanguage: func() Screen { return NewLanguageScreen(opts.Languages) },
	}
}

// ScreenRegistry 按标识惰性创建并缓存屏幕实例
//
// 每个标识最多一个实例，创建后永不释放。visual order 记录绘制顺序（后者在上）。
type ScreenRegistry struct {
	templates map[ScreenID]ScreenFactory
	screens   map[ScreenID]Screen
	order     []Screen
}

// NewScreenRegistry 创建注册表
func NewScreenRegistry(templates map[ScreenID]ScreenFactory) *ScreenRegistry {
	return &ScreenRegistry{
		templates: templates,
		screens:   make(map[ScreenID]Screen),
	}
}

// GetOrCreate 返回缓存的实例，首次请求时从模板创建
func (r *ScreenRegistry) GetOrCreate(id ScreenID) (Screen, error) {
	if s, ok := r.screens[id]; ok {
		return s, nil
	}

	factory, ok := r.templates[id]
	if !ok || factory == nil {
		log.Printf("[ScreenRegistry] No template for screen %s", id)
		return nil, fmt.Errorf("screen %s: %w", id, ErrUnknownScreenIdentity)
	}

	s := factory()
	r.screens[id] = s
	r.order = append(r.order, s)
	log.Printf("[ScreenRegistry] Created screen %s", id)
	return s, nil
}

// Lookup 返回已创建的实例，不创建
func (r *ScreenRegistry) Lookup(id ScreenID) (Screen, bool) {
	s, ok := r.screens[id]
	return s, ok
}

// BringToFront 把屏幕移到绘制顺序最上层
func (r *ScreenRegistry) BringToFront(s Screen) {
	for i, existing := range r.order {
		if existing != s {
			continue
		}
		copy(r.order[i:], r.order[i+1:])
		r.order[len(r.order)-1] = s
		return
	}
}

// Screens 按绘制顺序（从下到上）返回所有已创建的屏幕
func (r *ScreenRegistry) Screens() []Screen {
	out := make([]Screen, len(r.order))
	copy(out, r.order)
	return out
}

// Update 推进所有屏幕
func (r *ScreenRegistry) Update(dt float64) {
	for _, s := range r.Screens() {
		s.Update(dt)
	}
}
