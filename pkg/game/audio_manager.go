package game

import (
	"bytes"
	"log"

	"github.com/decker502/casualui/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioType 音频通道
type AudioType int

const (
	// AudioTypeMusic 背景音乐通道（循环播放）
	AudioTypeMusic AudioType = iota
	// AudioTypeSound 音效通道（单次播放）
	AudioTypeSound
)

// String 返回通道名称（用于日志）
func (t AudioType) String() string {
	if t == AudioTypeMusic {
		return "music"
	}
	return "sound"
}

// 通道音量（线性），关闭的通道降到 muteVolume
const (
	channelOnVolume = 1.0
	muteVolume      = 0.0
)

// AudioManager 音频管理器
// 职责：
//   - 音乐/音效两个通道的开关（类似混音器的通道音量）
//   - 单次播放提示音
//   - 循环播放主题音乐
//
// audioContext 为 nil 时进入静音降级模式：通道状态照常维护，但不发声。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager // 可为 nil

	soundBank    map[string][]byte        // 音效ID -> PCM
	soundPlayers map[string]*audio.Player // 正在使用的单次播放器
	musicPlayer  *audio.Player

	volumes map[AudioType]float64
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（可为 nil，静音降级模式）
//   - sm: SettingsManager 实例（可为 nil），用于读取初始开关并回写变化
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		volumes: map[AudioType]float64{
			AudioTypeMusic: channelOnVolume,
			AudioTypeSound: channelOnVolume,
		},
	}
	if ctx != nil {
		am.soundBank = buildSoundBank(ctx.SampleRate())
	}
	if sm != nil {
		s := sm.GetSettings()
		am.setChannel(AudioTypeMusic, s.MusicEnabled)
		am.setChannel(AudioTypeSound, s.SoundEnabled)
	}
	return am
}

// Toggle 打开或关闭通道
func (am *AudioManager) Toggle(channel AudioType, on bool) {
	am.setChannel(channel, on)

	if am.settingsManager != nil {
		switch channel {
		case AudioTypeMusic:
			am.settingsManager.SetMusicEnabled(on)
		case AudioTypeSound:
			am.settingsManager.SetSoundEnabled(on)
		}
	}
	log.Printf("[AudioManager] %s channel -> %v", channel, on)
}

// IsOn 通道是否打开（音量高于静音值）
func (am *AudioManager) IsOn(channel AudioType) bool {
	return am.volumes[channel] > muteVolume
}

// PlaySound 单次播放音效
//
// 返回：
//   - bool: 是否实际播放（通道关闭、静音模式或未知ID返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.IsOn(AudioTypeSound) || am.audioContext == nil {
		return false
	}

	pcm, ok := am.soundBank[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	player, exists := am.soundPlayers[soundID]
	if !exists {
		player = am.audioContext.NewPlayerFromBytes(pcm)
		am.soundPlayers[soundID] = player
	}
	player.SetVolume(am.volumes[AudioTypeSound])
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 开始循环播放主题音乐（已在播放时不重复开始）
func (am *AudioManager) PlayMusic() bool {
	if am.audioContext == nil {
		return false
	}
	if am.musicPlayer == nil {
		pcm := SynthesizeTone(musicSpec.freqs, musicSpec.duration, musicSpec.decay, am.audioContext.SampleRate())
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		player, err := am.audioContext.NewPlayer(loop)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to create music player %s: %v", config.MusicMainTheme, err)
			return false
		}
		am.musicPlayer = player
	}
	am.musicPlayer.SetVolume(am.volumes[AudioTypeMusic])
	if !am.musicPlayer.IsPlaying() {
		am.musicPlayer.Play()
		log.Printf("[AudioManager] Playing music: %s", config.MusicMainTheme)
	}
	return true
}

// StopMusic 停止背景音乐
func (am *AudioManager) StopMusic() {
	if am.musicPlayer != nil {
		am.musicPlayer.Pause()
	}
}

func (am *AudioManager) setChannel(channel AudioType, on bool) {
	v := muteVolume
	if on {
		v = channelOnVolume
	}
	am.volumes[channel] = v

	if channel == AudioTypeMusic && am.musicPlayer != nil {
		am.musicPlayer.SetVolume(v)
	}
}
