package ui

import (
	"image"
	"strconv"

	"github.com/decker502/casualui/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// languageButtonPrefix 语言按钮ID前缀，后接语言索引
const languageButtonPrefix = "language_"

// LanguageButtonID 返回指定语言索引的按钮ID
func LanguageButtonID(index int) string {
	return languageButtonPrefix + strconv.Itoa(index)
}

// LanguageScreen 语言选择弹窗
type LanguageScreen struct {
	GenericPopupScreen

	languages []config.Language
	selected  int
	listener  LanguageListener
}

// NewLanguageScreen 创建语言弹窗；languages 为空时使用内置列表
func NewLanguageScreen(languages []config.Language) *LanguageScreen {
	if len(languages) == 0 {
		languages = config.DefaultLanguages()
	}
	s := &LanguageScreen{languages: languages}
	s.GenericPopupScreen = GenericPopupScreen{Body: "Choose your language"}
	s.PopupScreen = newPopupScreen(ScreenLanguage, "LANGUAGE", popupBounds(480))
	s.addCloseButton()
	s.addBackButton()

	r := s.Bounds
	for i, lang := range languages {
		index := lang.Index
		y := r.Min.Y + 96 + i*56
		s.AddButton(NewButton(LanguageButtonID(index), lang.Name, image.Rect(r.Min.X+40, y, r.Max.X-40, y+44), func() {
			s.selected = index
			if s.listener != nil {
				s.listener.HandleLanguageSelected(index)
			}
		}))
	}
	return s
}

// Init 读取当前语言索引
func (s *LanguageScreen) Init(data ScreenInitData) {
	if d, ok := data.(*SettingsInitData); ok && d != nil {
		s.selected = d.LanguageIndex
	}
}

// Selected 当前选中的语言索引
func (s *LanguageScreen) Selected() int { return s.selected }

// Languages 可选语言
func (s *LanguageScreen) Languages() []config.Language { return s.languages }

// RegisterListener 绑定 LanguageListener 与 PopupScreenListener
func (s *LanguageScreen) RegisterListener(listener any) {
	if l, ok := listener.(LanguageListener); ok {
		s.listener = l
	}
	s.PopupScreen.RegisterListener(listener)
}

// UnregisterListener 解绑
func (s *LanguageScreen) UnregisterListener(listener any) {
	if l, ok := listener.(LanguageListener); ok && l == s.listener {
		s.listener = nil
	}
	s.PopupScreen.UnregisterListener(listener)
}

// Draw 选中的语言高亮
func (s *LanguageScreen) Draw(dst *ebiten.Image) {
	if !s.active {
		return
	}
	s.GenericPopupScreen.Draw(dst)
	if b := s.Button(LanguageButtonID(s.selected)); b != nil {
		strokeRect(dst, b.Rect.Inset(-3), s.motion(), selectedColor)
	}
}
