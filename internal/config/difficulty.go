package config

import "fmt"

// DifficultyPreset represents a named speed curve.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets returns every preset name.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// speedForPreset returns the gravity curve for a preset.
func speedForPreset(preset DifficultyPreset) SpeedConfig {
	switch preset {
	case DifficultyEasy:
		return SpeedConfig{Level0MS: 1000, Level9MS: 300, SoftDropMS: 50}
	case DifficultyHard:
		return SpeedConfig{Level0MS: 500, Level9MS: 120, SoftDropMS: 30}
	case DifficultyFixed:
		return SpeedConfig{Level0MS: 800, Level9MS: 800, SoftDropMS: 50, Fixed: true}
	default:
		return SpeedConfig{Level0MS: 800, Level9MS: 200, SoftDropMS: 50}
	}
}

// ApplyTetrominoPreset replaces the speed curve with the preset's.
func ApplyTetrominoPreset(cfg *TetrominoConfig, preset DifficultyPreset) {
	cfg.Speed = speedForPreset(preset)
	cfg.Difficulty.Preset = preset
}
