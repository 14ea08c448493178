// Package ntsc models an analog NTSC signal degradation effect over planar
// YIQ frames: its settings, the JSON settings codec, and the engine that
// applies an effect to a frame.
package ntsc

import (
	"fmt"

	"github.com/justyntemme/frei0rgo/pkg/yiq"
)

// UseField selects which field of each frame the effect processes.
type UseField int

const (
	// UseFieldAlternating processes the upper field on even frames and the
	// lower field on odd frames.
	UseFieldAlternating UseField = iota
	// UseFieldUpper always processes rows 0, 2, 4, ...
	UseFieldUpper
	// UseFieldLower always processes rows 1, 3, 5, ...
	UseFieldLower
	// UseFieldBoth processes every row (progressive).
	UseFieldBoth
)

var useFieldNames = map[UseField]string{
	UseFieldAlternating: "alternating",
	UseFieldUpper:       "upper",
	UseFieldLower:       "lower",
	UseFieldBoth:        "both",
}

// String returns the preset name of the field mode.
func (u UseField) String() string {
	if name, ok := useFieldNames[u]; ok {
		return name
	}
	return fmt.Sprintf("UseField(%d)", int(u))
}

// Field returns the field to sample for the given frame number.
func (u UseField) Field(frameNum uint64) yiq.Field {
	switch u {
	case UseFieldUpper:
		return yiq.FieldUpper
	case UseFieldLower:
		return yiq.FieldLower
	case UseFieldBoth:
		return yiq.FieldBoth
	default:
		if frameNum&1 == 0 {
			return yiq.FieldUpper
		}
		return yiq.FieldLower
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u UseField) MarshalText() ([]byte, error) {
	name, ok := useFieldNames[u]
	if !ok {
		return nil, fmt.Errorf("unknown use_field %d", int(u))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UseField) UnmarshalText(text []byte) error {
	for field, name := range useFieldNames {
		if name == string(text) {
			*u = field
			return nil
		}
	}
	return fmt.Errorf("unknown use_field %q", text)
}

// ChromaLowpassSettings band-limits the chroma signal.
type ChromaLowpassSettings struct {
	Enabled   bool    `json:"enabled"`
	Bandwidth float64 `json:"bandwidth"` // cutoff in cycles per pixel
}

// NoiseSettings configures an additive noise source.
type NoiseSettings struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
}

// Settings is the full record decoded from a preset document.
type Settings struct {
	RandomSeed            int64                 `json:"random_seed"`
	UseField              UseField              `json:"use_field"`
	ChromaLowpass         ChromaLowpassSettings `json:"chroma_lowpass"`
	ChromaDelayHorizontal float64               `json:"chroma_delay_horizontal"`
	LumaSmear             float64               `json:"luma_smear"`
	ChromaPhaseError      float64               `json:"chroma_phase_error"`
	CompositeNoise        NoiseSettings         `json:"composite_noise"`
	ChromaNoise           NoiseSettings         `json:"chroma_noise"`
	SnowIntensity         float64               `json:"snow_intensity"`
}

// DefaultSettings returns settings with every stage disabled. An effect
// built from them leaves frames unchanged.
func DefaultSettings() Settings {
	return Settings{
		UseField: UseFieldAlternating,
		ChromaLowpass: ChromaLowpassSettings{
			Bandwidth: 0.25,
		},
		CompositeNoise: NoiseSettings{Intensity: 0.05},
		ChromaNoise:    NoiseSettings{Intensity: 0.05},
	}
}

// Effect builds the immutable effect configuration for these settings.
func (s Settings) Effect() *Effect {
	return &Effect{settings: s}
}
