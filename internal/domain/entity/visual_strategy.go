// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// VisualStrategy is the rendering mode chosen for a program's stamp strip.
type VisualStrategy string

const (
	// StrategyIconicGrid draws the stamp grid itself as the strip.
	StrategyIconicGrid VisualStrategy = "iconic_grid"
	// StrategyHeroMinimalist shows a single uploaded hero image, swapped on completion.
	StrategyHeroMinimalist VisualStrategy = "hero_minimalist"
	// StrategyProgressiveStory shows one image per progress step.
	StrategyProgressiveStory VisualStrategy = "progressive_story"
)

// ErrUnknownVisualStrategy is returned when a stored strategy is not one of the known values.
var ErrUnknownVisualStrategy = errors.New("unknown visual strategy")

// ParseVisualStrategy converts a stored value to a VisualStrategy.
// An empty value means the program never chose one and maps to StrategyIconicGrid.
func ParseVisualStrategy(raw string) (VisualStrategy, error) {
	switch VisualStrategy(strings.TrimSpace(strings.ToLower(raw))) {
	case "", StrategyIconicGrid:
		return StrategyIconicGrid, nil
	case StrategyHeroMinimalist:
		return StrategyHeroMinimalist, nil
	case StrategyProgressiveStory:
		return StrategyProgressiveStory, nil
	default:
		return "", errors.Wrapf(ErrUnknownVisualStrategy, "%q", raw)
	}
}

// ProgramType decides how a card balance is presented.
type ProgramType string

const (
	ProgramTypeStamps   ProgramType = "stamps"
	ProgramTypePoints   ProgramType = "points"
	ProgramTypeCashback ProgramType = "cashback"
)

// ErrUnknownProgramType is returned when a stored program type is not recognised.
var ErrUnknownProgramType = errors.New("unknown program type")

// ParseProgramType converts a stored value to a ProgramType. Empty means stamps.
func ParseProgramType(raw string) (ProgramType, error) {
	switch ProgramType(strings.TrimSpace(strings.ToLower(raw))) {
	case "", ProgramTypeStamps:
		return ProgramTypeStamps, nil
	case ProgramTypePoints:
		return ProgramTypePoints, nil
	case ProgramTypeCashback:
		return ProgramTypeCashback, nil
	default:
		return "", errors.Wrapf(ErrUnknownProgramType, "%q", raw)
	}
}
