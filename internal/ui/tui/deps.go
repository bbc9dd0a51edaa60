package tui

import (
	"log/slog"

	"github.com/okaneco/posterust/internal/domain"
)

type Deps struct {
	Files   []string
	Presets []domain.Preset

	Logger *slog.Logger
}
