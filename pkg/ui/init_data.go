package ui

import "github.com/decker502/casualui/pkg/config"

// HomeInitData 主界面初始化数据
type HomeInitData struct {
	Coins       int
	Lives       int
	MaxLives    int
	Stars       int
	FooterLocks []bool
}

func (*HomeInitData) screenInitData() {}

// NewHomeInitData 从启动快照构建；data 为 nil 时使用默认值
func NewHomeInitData(data *config.InitGameData) *HomeInitData {
	if data == nil {
		data = config.DefaultInitGameData()
	}
	return &HomeInitData{
		Coins:       data.CoinsCount,
		Lives:       data.LivesCount,
		MaxLives:    data.MaxLivesCount,
		Stars:       data.StarCount,
		FooterLocks: data.FooterLockStates(),
	}
}

// SettingsInitData 设置界面初始化数据，每次打开设置时根据当前状态重建
type SettingsInitData struct {
	SoundOn       bool
	MusicOn       bool
	VibrationOn   bool
	NotifsOn      bool
	LanguageIndex int
}

func (*SettingsInitData) screenInitData() {}

// LevelCompleteInitData 结算界面奖励数据
type LevelCompleteInitData struct {
	Stars  int
	Coins  int
	Crowns int
}

func (*LevelCompleteInitData) screenInitData() {}

// NewLevelCompleteInitData 从启动快照构建；data 为 nil 时使用默认奖励
func NewLevelCompleteInitData(data *config.InitGameData) *LevelCompleteInitData {
	if data == nil {
		data = config.DefaultInitGameData()
	}
	return &LevelCompleteInitData{
		Stars:  data.RewardStarCount,
		Coins:  data.RewardCoinCount,
		Crowns: data.RewardCrownCount,
	}
}
