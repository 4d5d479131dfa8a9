package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/casualui/pkg/embedded"
)

// TestDefaultInitGameData 测试硬编码默认值
func TestDefaultInitGameData(t *testing.T) {
	d := DefaultInitGameData()

	if d.CoinsCount != 300 {
		t.Errorf("CoinsCount: got %d, want 300", d.CoinsCount)
	}
	if d.LivesCount != 5 || d.MaxLivesCount != 5 {
		t.Errorf("Lives: got %d/%d, want 5/5", d.LivesCount, d.MaxLivesCount)
	}
	want := []bool{true, false, false, false, true}
	if len(d.FooterButtonsLockStates) != len(want) {
		t.Fatalf("FooterButtonsLockStates len: got %d, want %d", len(d.FooterButtonsLockStates), len(want))
	}
	for i := range want {
		if d.FooterButtonsLockStates[i] != want[i] {
			t.Errorf("FooterButtonsLockStates[%d]: got %v, want %v", i, d.FooterButtonsLockStates[i], want[i])
		}
	}
	if d.RewardStarCount != 20 || d.RewardCoinCount != 100 || d.RewardCrownCount != 8 {
		t.Errorf("Rewards: got %d/%d/%d, want 20/100/8", d.RewardStarCount, d.RewardCoinCount, d.RewardCrownCount)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

// TestParseInitGameData 测试部分字段覆盖，其余保留默认值
func TestParseInitGameData(t *testing.T) {
	d, err := ParseInitGameData([]byte("coinsCount: 1200\nmusicOn: false\n"))
	if err != nil {
		t.Fatalf("ParseInitGameData() error: %v", err)
	}
	if d.CoinsCount != 1200 {
		t.Errorf("CoinsCount: got %d, want 1200", d.CoinsCount)
	}
	if d.MusicOn {
		t.Error("MusicOn: got true, want false")
	}
	if !d.SoundOn {
		t.Error("SoundOn should keep default true")
	}
	if d.StarCount != 8 {
		t.Errorf("StarCount should keep default 8, got %d", d.StarCount)
	}
}

// TestParseInitGameDataInvalid 测试非法数据
func TestParseInitGameDataInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "coinsCount: [1, 2"},
		{"negative coins", "coinsCount: -5"},
		{"lives over max", "livesCount: 9\nmaxLivesCount: 5"},
		{"too many footer slots", "footerButtonsLockStates: [true, true, true, true, true, true]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseInitGameData([]byte(tt.yaml)); err == nil {
				t.Errorf("ParseInitGameData(%q) expected error", tt.yaml)
			}
		})
	}
}

// TestLoadInitGameData 测试从内嵌数据与外部文件加载
func TestLoadInitGameData(t *testing.T) {
	embedded.Init(fstest.MapFS{
		InitGameDataPath: &fstest.MapFile{Data: []byte("coinsCount: 42\n")},
	})
	defer embedded.Init(nil)

	d, err := LoadInitGameData("")
	if err != nil {
		t.Fatalf("LoadInitGameData(\"\") error: %v", err)
	}
	if d.CoinsCount != 42 {
		t.Errorf("embedded CoinsCount: got %d, want 42", d.CoinsCount)
	}

	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte("starCount: 3\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	d, err = LoadInitGameData(path)
	if err != nil {
		t.Fatalf("LoadInitGameData(path) error: %v", err)
	}
	if d.StarCount != 3 {
		t.Errorf("file StarCount: got %d, want 3", d.StarCount)
	}

	if _, err := LoadInitGameData(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestWithSettingsDoesNotMutate 测试 WithSettings 返回副本
func TestWithSettingsDoesNotMutate(t *testing.T) {
	d := DefaultInitGameData()
	c := d.WithSettings(false, false, false, true, 2)

	if !d.SoundOn || !d.MusicOn || !d.VibrationOn || d.LanguageIndex != 0 {
		t.Error("WithSettings mutated the original snapshot")
	}
	if c.SoundOn || c.MusicOn || c.VibrationOn || !c.NotifsOn || c.LanguageIndex != 2 {
		t.Errorf("WithSettings copy has wrong toggles: %+v", c)
	}

	c.FooterButtonsLockStates[0] = false
	if !d.FooterButtonsLockStates[0] {
		t.Error("WithSettings copy shares the footer lock slice")
	}
}
