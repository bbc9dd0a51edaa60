package ports

import "github.com/okaneco/posterust/internal/domain"

// PresetLoader resolves a named preset from a preset file.
type PresetLoader interface {
	LoadPreset(path, name string) (domain.Preset, error)
	ListPresets(path string) ([]domain.Preset, error)
}
