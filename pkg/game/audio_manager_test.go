package game

import (
	"testing"

	"github.com/decker502/casualui/pkg/config"
)

// 测试中不创建 audio.Context（一个进程只能有一个），统一使用静音降级模式。

// TestAudioManagerDefaults 测试无设置管理器时两个通道默认打开
func TestAudioManagerDefaults(t *testing.T) {
	am := NewAudioManager(nil, nil)

	if !am.IsOn(AudioTypeMusic) {
		t.Error("music channel should be on by default")
	}
	if !am.IsOn(AudioTypeSound) {
		t.Error("sound channel should be on by default")
	}
}

// TestAudioManagerReadsSettings 测试初始通道状态来自设置
func TestAudioManagerReadsSettings(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetMusicEnabled(false)

	am := NewAudioManager(nil, sm)
	if am.IsOn(AudioTypeMusic) {
		t.Error("music channel should start muted")
	}
	if !am.IsOn(AudioTypeSound) {
		t.Error("sound channel should start on")
	}
}

// TestAudioManagerToggle 测试开关往返并回写设置
func TestAudioManagerToggle(t *testing.T) {
	sm := NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	tests := []struct {
		channel AudioType
		on      bool
	}{
		{AudioTypeSound, false},
		{AudioTypeSound, true},
		{AudioTypeMusic, false},
		{AudioTypeMusic, true},
		{AudioTypeMusic, false},
	}

	for _, tt := range tests {
		am.Toggle(tt.channel, tt.on)
		if got := am.IsOn(tt.channel); got != tt.on {
			t.Errorf("Toggle(%v, %v): IsOn = %v", tt.channel, tt.on, got)
		}
	}

	s := sm.GetSettings()
	if s.MusicEnabled {
		t.Error("settings MusicEnabled should be false")
	}
	if !s.SoundEnabled {
		t.Error("settings SoundEnabled should be true")
	}
}

// TestPlaySoundSilentMode 测试无音频上下文时不发声
func TestPlaySoundSilentMode(t *testing.T) {
	am := NewAudioManager(nil, nil)

	if am.PlaySound(config.SoundClick) {
		t.Error("PlaySound should report false without an audio context")
	}
	if am.PlayMusic() {
		t.Error("PlayMusic should report false without an audio context")
	}
	am.StopMusic()
}

func TestAudioTypeString(t *testing.T) {
	if AudioTypeMusic.String() != "music" || AudioTypeSound.String() != "sound" {
		t.Errorf("unexpected names: %q %q", AudioTypeMusic, AudioTypeSound)
	}
}

// TestSynthesizeTone 测试 PCM 长度与格式
func TestSynthesizeTone(t *testing.T) {
	pcm := SynthesizeTone([]float64{440, 880}, 0.1, 10, SampleRate)

	// 2 个音符 × 4800 帧 × 4 字节
	want := 2 * 4800 * 4
	if len(pcm) != want {
		t.Fatalf("PCM length: got %d, want %d", len(pcm), want)
	}

	// 左右声道相同
	for i := 0; i+3 < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}

	if SynthesizeTone(nil, 0.1, 1, SampleRate) != nil {
		t.Error("empty frequency list should produce nil")
	}
	if SynthesizeTone([]float64{440}, 0, 1, SampleRate) != nil {
		t.Error("zero duration should produce nil")
	}
}

// TestSoundBankCoversCueIDs 测试所有提示音都能合成
func TestSoundBankCoversCueIDs(t *testing.T) {
	bank := buildSoundBank(SampleRate)
	ids := []string{
		config.SoundClick,
		config.SoundClickBloop,
		config.SoundClickError,
		config.SoundCoin,
		config.SoundToggleOn,
		config.SoundToggleOff,
	}
	for _, id := range ids {
		if len(bank[id]) == 0 {
			t.Errorf("sound bank missing %s", id)
		}
	}
}
