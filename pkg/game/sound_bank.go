package game

import (
	"encoding/binary"
	"math"

	"github.com/decker502/casualui/pkg/config"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// toneSpec 合成音效参数
type toneSpec struct {
	freqs    []float64 // 依次播放的频率（Hz）
	duration float64   // 每个音符时长（秒）
	decay    float64   // 指数衰减系数
}

// soundSpecs 音效资源ID -> 合成参数
//
// 项目不携带音频素材，所有提示音在启动时合成为 16-bit 立体声 PCM。
var soundSpecs = map[string]toneSpec{
	config.SoundClick:      {freqs: []float64{880}, duration: 0.05, decay: 40},
	config.SoundClickBloop: {freqs: []float64{523.25, 784}, duration: 0.06, decay: 25},
	config.SoundClickError: {freqs: []float64{196, 185}, duration: 0.09, decay: 12},
	config.SoundCoin:       {freqs: []float64{987.77, 1318.51}, duration: 0.07, decay: 18},
	config.SoundToggleOn:   {freqs: []float64{659.25, 880}, duration: 0.05, decay: 30},
	config.SoundToggleOff:  {freqs: []float64{880, 659.25}, duration: 0.05, decay: 30},
}

// musicSpec 主题音乐（循环播放的琶音）
var musicSpec = toneSpec{
	freqs:    []float64{261.63, 329.63, 392.0, 523.25, 392.0, 329.63},
	duration: 0.3,
	decay:    3,
}

// SynthesizeTone 按参数合成 PCM 数据（16-bit little-endian 立体声）
func SynthesizeTone(freqs []float64, duration, decay float64, sampleRate int) []byte {
	perNote := int(duration * float64(sampleRate))
	if perNote <= 0 || len(freqs) == 0 {
		return nil
	}

	buf := make([]byte, perNote*len(freqs)*4)
	offset := 0
	for _, f := range freqs {
		for i := 0; i < perNote; i++ {
			t := float64(i) / float64(sampleRate)
			amp := math.Exp(-decay*t) * 0.3
			v := int16(amp * math.Sin(2*math.Pi*f*t) * math.MaxInt16)
			binary.LittleEndian.PutUint16(buf[offset:], uint16(v))
			binary.LittleEndian.PutUint16(buf[offset+2:], uint16(v))
			offset += 4
		}
	}
	return buf
}

// buildSoundBank 合成全部音效
func buildSoundBank(sampleRate int) map[string][]byte {
	bank := make(map[string][]byte, len(soundSpecs))
	for id, tone := range soundSpecs {
		bank[id] = SynthesizeTone(tone.freqs, tone.duration, tone.decay, sampleRate)
	}
	return bank
}
