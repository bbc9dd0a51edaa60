// Package preset loads named posterization presets from a YAML file.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okaneco/posterust/internal/domain"
	"github.com/okaneco/posterust/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.PresetLoader = (*Loader)(nil)

func (l *Loader) LoadPreset(path, name string) (domain.Preset, error) {
	presets, err := l.ListPresets(path)
	if err != nil {
		return domain.Preset{}, err
	}
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return domain.Preset{}, &domain.OpError{
		Op:   "preset.load",
		Kind: domain.KindNotFound,
		Path: path,
		Err:  fmt.Errorf("preset %q not defined", name),
	}
}

func (l *Loader) ListPresets(path string) ([]domain.Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "preset.read",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLPresetFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "preset.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	out := make([]domain.Preset, 0, len(dto.Presets))
	for _, p := range dto.Presets {
		if p.Name == "" {
			return nil, &domain.OpError{
				Op:   "preset.parse",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("preset without a name"),
			}
		}
		out = append(out, mapPreset(p))
	}
	return out, nil
}
