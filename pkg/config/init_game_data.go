package config

import (
	"fmt"
	"os"

	"github.com/decker502/casualui/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// InitGameDataPath 内嵌的启动数据快照路径
const InitGameDataPath = "data/init_game_data.yaml"

// InitGameData 启动时提供的只读游戏数据快照
//
// 只在启动时读取一次，用于构建各屏幕的初始化数据。
// 会话中的变化（当前金币、开关状态）保存在 NavigationController 中，不回写此结构。
type InitGameData struct {
	CoinsCount              int    `yaml:"coinsCount"`
	LivesCount              int    `yaml:"livesCount"`
	MaxLivesCount           int    `yaml:"maxLivesCount"`
	StarCount               int    `yaml:"starCount"`
	FooterButtonsLockStates []bool `yaml:"footerButtonsLockStates"`

	SoundOn       bool `yaml:"soundOn"`
	MusicOn       bool `yaml:"musicOn"`
	VibrationOn   bool `yaml:"vibrationOn"`
	NotifsOn      bool `yaml:"notifsOn"`
	LanguageIndex int  `yaml:"languageIndex"`

	RewardStarCount  int `yaml:"rewardStarCount"`
	RewardCoinCount  int `yaml:"rewardCoinCount"`
	RewardCrownCount int `yaml:"rewardCrownCount"`
}

// DefaultInitGameData 返回没有快照时使用的硬编码默认值
func DefaultInitGameData() *InitGameData {
	return &InitGameData{
		CoinsCount:              300,
		LivesCount:              5,
		MaxLivesCount:           5,
		StarCount:               8,
		FooterButtonsLockStates: []bool{true, false, false, false, true},
		SoundOn:                 true,
		MusicOn:                 true,
		VibrationOn:             true,
		NotifsOn:                true,
		LanguageIndex:           0,
		RewardStarCount:         20,
		RewardCoinCount:         100,
		RewardCrownCount:        8,
	}
}

// ParseInitGameData 解析 YAML 格式的启动数据
//
// 未出现在 YAML 中的字段保留默认值。
func ParseInitGameData(data []byte) (*InitGameData, error) {
	d := DefaultInitGameData()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal init game data: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadInitGameData 加载启动数据
//
// 参数：
//   - path: 外部 YAML 文件路径；为空时读取内嵌的 data/init_game_data.yaml
func LoadInitGameData(path string) (*InitGameData, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = embedded.ReadFile(InitGameDataPath)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read init game data: %w", err)
	}
	return ParseInitGameData(data)
}

// Validate 校验数据范围
func (d *InitGameData) Validate() error {
	if d.CoinsCount < 0 || d.LivesCount < 0 || d.StarCount < 0 {
		return fmt.Errorf("init game data: counts must be non-negative")
	}
	if d.LivesCount > d.MaxLivesCount {
		return fmt.Errorf("init game data: livesCount %d exceeds maxLivesCount %d", d.LivesCount, d.MaxLivesCount)
	}
	if len(d.FooterButtonsLockStates) > FooterSlotCount {
		return fmt.Errorf("init game data: %d footer lock states, at most %d slots", len(d.FooterButtonsLockStates), FooterSlotCount)
	}
	return nil
}

// FooterLockStates 返回底部按钮锁定状态的副本
func (d *InitGameData) FooterLockStates() []bool {
	out := make([]bool, len(d.FooterButtonsLockStates))
	copy(out, d.FooterButtonsLockStates)
	return out
}

// WithSettings 返回叠加了已保存开关状态的副本，不修改原快照
func (d *InitGameData) WithSettings(soundOn, musicOn, vibrationOn, notifsOn bool, languageIndex int) *InitGameData {
	c := *d
	c.FooterButtonsLockStates = d.FooterLockStates()
	c.SoundOn = soundOn
	c.MusicOn = musicOn
	c.VibrationOn = vibrationOn
	c.NotifsOn = notifsOn
	c.LanguageIndex = languageIndex
	return &c
}
