package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 用户在设置界面修改过的开关
type GameSettings struct {
	MusicEnabled         bool `yaml:"musicEnabled"`
	SoundEnabled         bool `yaml:"soundEnabled"`
	VibrationEnabled     bool `yaml:"vibrationEnabled"`
	NotificationsEnabled bool `yaml:"notificationsEnabled"`
	LanguageIndex        int  `yaml:"languageIndex"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicEnabled:         true,
		SoundEnabled:         true,
		VibrationEnabled:     true,
		NotificationsEnabled: true,
		LanguageIndex:        0,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings
	loaded       bool // 是否从存储中读到了已保存的设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，会回退到默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
func (sm *SettingsManager) Load() error {
	sm.loaded = false
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loadedSettings := DefaultSettings()
	if err := yaml.Unmarshal(data, loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loadedSettings
	sm.loaded = true
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.loaded = true
	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// HasSaved 是否存在已保存的设置（用于决定是否覆盖启动快照中的开关）
func (sm *SettingsManager) HasSaved() bool {
	return sm.loaded
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicEnabled 设置音乐开关（仅内存，需调用 Save 持久化）
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetVibrationEnabled 设置震动开关
func (sm *SettingsManager) SetVibrationEnabled(enabled bool) {
	sm.settings.VibrationEnabled = enabled
}

// SetNotificationsEnabled 设置通知开关
func (sm *SettingsManager) SetNotificationsEnabled(enabled bool) {
	sm.settings.NotificationsEnabled = enabled
}

// SetLanguage 设置语言索引
func (sm *SettingsManager) SetLanguage(index int) {
	if index < 0 {
		index = 0
	}
	sm.settings.LanguageIndex = index
}
