package preset

import "github.com/okaneco/posterust/internal/domain"

// YAMLPresetFile is the on-disk shape of a preset file.
//
//	presets:
//	  - name: notan
//	    levels: [0, 10]
//	  - name: five-step
//	    split: 5
//	  - name: sunset
//	    levels: [1, 4, 8]
//	    keep: true
//	    colors: ["#2b1b4e", "#c4452c", "#f2b705"]
type YAMLPresetFile struct {
	Presets []YAMLPreset `yaml:"presets"`
}

type YAMLPreset struct {
	Name   string   `yaml:"name"`
	Levels []int    `yaml:"levels,omitempty"`
	Split  int      `yaml:"split,omitempty"`
	Keep   bool     `yaml:"keep,omitempty"`
	Colors []string `yaml:"colors,omitempty"`
}

func mapPreset(dto YAMLPreset) domain.Preset {
	return domain.Preset{
		Name:   dto.Name,
		Levels: dto.Levels,
		Split:  dto.Split,
		Keep:   dto.Keep,
		Colors: dto.Colors,
	}
}
