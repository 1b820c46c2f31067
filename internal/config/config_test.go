package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points the user and local search paths at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultTetrominoConfig() {
		t.Errorf("embedded = %+v\nhardcoded = %+v", cfg, DefaultTetrominoConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadTetrominoWithSource("")
	if err != nil {
		t.Fatalf("LoadTetrominoWithSource: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, expected embedded", source)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("board = %+v", cfg.Board)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", ConfigFile), []byte("board:\n  width: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadTetrominoWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Width != 12 || source != filepath.Join("configs", ConfigFile) {
		t.Errorf("local config not used: width=%d source=%q", cfg.Board.Width, source)
	}

	userDir := filepath.Join(home, ".tetromino", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	userPath := filepath.Join(userDir, ConfigFile)
	if err := os.WriteFile(userPath, []byte("board:\n  width: 14\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err = LoadTetrominoWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Width != 14 || source != userPath {
		t.Errorf("user config should win: width=%d source=%q", cfg.Board.Width, source)
	}
	// Unset keys keep their defaults.
	if cfg.Board.Height != 20 || cfg.Speed.Level0MS != 800 {
		t.Errorf("partial file lost defaults: %+v", cfg)
	}
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", ConfigFile), []byte("board: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, source, err := LoadTetrominoWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, expected embedded", source)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("speed:\n  level0_ms: 900\n  level9_ms: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadTetromino(good)
	if err != nil {
		t.Fatalf("LoadTetromino: %v", err)
	}
	if cfg.Speed.Level0MS != 900 || cfg.Speed.SoftDropMS != 50 {
		t.Errorf("speed = %+v", cfg.Speed)
	}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"missing file", "", "failed to read"},
		{"bad yaml", "board: [", "failed to parse"},
		{"invalid board", "board:\n  width: 2\n", "smaller than"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if tc.content != "" {
				if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
					t.Fatal(err)
				}
			}
			_, err := LoadTetromino(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*TetrominoConfig)
		ok     bool
	}{
		{"default", func(*TetrominoConfig) {}, true},
		{"minimum board", func(c *TetrominoConfig) { c.Board = BoardConfig{Width: 4, Height: 4} }, true},
		{"narrow board", func(c *TetrominoConfig) { c.Board.Width = 3 }, false},
		{"zero level0", func(c *TetrominoConfig) { c.Speed.Level0MS = 0 }, false},
		{"negative soft drop", func(c *TetrominoConfig) { c.Speed.SoftDropMS = -1 }, false},
		{"inverted curve", func(c *TetrominoConfig) { c.Speed.Level9MS = 900 }, false},
		{"no release window", func(c *TetrominoConfig) { c.Input.SoftDropReleaseMS = 0 }, false},
		{"unknown preset", func(c *TetrominoConfig) { c.Difficulty.Preset = "insane" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrominoConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestApplyTetrominoPreset(t *testing.T) {
	for _, preset := range Presets() {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultTetrominoConfig()
			ApplyTetrominoPreset(&cfg, preset)

			if cfg.Difficulty.Preset != preset {
				t.Errorf("preset = %q", cfg.Difficulty.Preset)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	easy, hard := DefaultTetrominoConfig(), DefaultTetrominoConfig()
	ApplyTetrominoPreset(&easy, DifficultyEasy)
	ApplyTetrominoPreset(&hard, DifficultyHard)
	if easy.Speed.Level0MS <= hard.Speed.Level0MS {
		t.Errorf("easy (%dms) should be slower than hard (%dms)", easy.Speed.Level0MS, hard.Speed.Level0MS)
	}

	fixed := DefaultTetrominoConfig()
	ApplyTetrominoPreset(&fixed, DifficultyFixed)
	speed := fixed.Speed.Engine()
	if speed.LevelInterval(15) != speed.LevelInterval(0) {
		t.Error("fixed preset should not speed up with level")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("Hard"); err == nil {
		t.Error("preset names are case sensitive")
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultTetrominoConfig()
	opts := cfg.EngineOptions()

	if opts.Width != 10 || opts.Height != 20 {
		t.Errorf("size = %dx%d", opts.Width, opts.Height)
	}
	if opts.Speed.Level0 != 800*time.Millisecond || opts.Speed.SoftDrop != 50*time.Millisecond {
		t.Errorf("speed = %+v", opts.Speed)
	}
	if cfg.Input.SoftDropRelease() != 150*time.Millisecond {
		t.Errorf("release = %v", cfg.Input.SoftDropRelease())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTetrominoConfig()
	ApplyTetrominoPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "preset: hard") {
		t.Errorf("YAML missing preset:\n%s", data)
	}
	back, err := decode(data)
	if err != nil || back != cfg {
		t.Errorf("round trip = %+v, %v", back, err)
	}
}
