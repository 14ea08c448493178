package ntsc

import (
	"encoding/json"
	"fmt"
)

// SettingsVersion is the newest preset document version this package reads.
const SettingsVersion = 1

// Descriptor describes one numeric setting and its accepted range.
type Descriptor struct {
	Key   string
	Label string
	Min   float64
	Max   float64
	// MaxExclusive rejects values equal to Max.
	MaxExclusive bool
	value        func(*Settings) float64
}

// Value reads the setting from s.
func (d Descriptor) Value(s *Settings) float64 {
	return d.value(s)
}

func (d Descriptor) check(s *Settings) error {
	v := d.value(s)
	if v < d.Min || v > d.Max || (d.MaxExclusive && v == d.Max) {
		closing := "]"
		if d.MaxExclusive {
			closing = ")"
		}
		return fmt.Errorf("%s = %g out of range [%g, %g%s", d.Key, v, d.Min, d.Max, closing)
	}
	return nil
}

// SettingsList is the settings codec: it knows every setting's key and
// range and converts between preset documents and Settings.
type SettingsList struct {
	descriptors []Descriptor
}

// NewSettingsList returns the codec for the current settings version.
func NewSettingsList() *SettingsList {
	return &SettingsList{
		descriptors: []Descriptor{
			{
				Key: "chroma_lowpass.bandwidth", Label: "Chroma bandwidth",
				Min: 0.001, Max: 0.5, MaxExclusive: true,
				value: func(s *Settings) float64 { return s.ChromaLowpass.Bandwidth },
			},
			{
				Key: "chroma_delay_horizontal", Label: "Chroma delay (pixels)",
				Min: -100, Max: 100,
				value: func(s *Settings) float64 { return s.ChromaDelayHorizontal },
			},
			{
				Key: "luma_smear", Label: "Luma smear",
				Min: 0, Max: 1, MaxExclusive: true,
				value: func(s *Settings) float64 { return s.LumaSmear },
			},
			{
				Key: "chroma_phase_error", Label: "Chroma phase error (degrees)",
				Min: -180, Max: 180,
				value: func(s *Settings) float64 { return s.ChromaPhaseError },
			},
			{
				Key: "composite_noise.intensity", Label: "Composite noise",
				Min: 0, Max: 1,
				value: func(s *Settings) float64 { return s.CompositeNoise.Intensity },
			},
			{
				Key: "chroma_noise.intensity", Label: "Chroma noise",
				Min: 0, Max: 1,
				value: func(s *Settings) float64 { return s.ChromaNoise.Intensity },
			},
			{
				Key: "snow_intensity", Label: "Snow",
				Min: 0, Max: 1,
				value: func(s *Settings) float64 { return s.SnowIntensity },
			},
		},
	}
}

// Descriptors returns the known settings in document order.
func (l *SettingsList) Descriptors() []Descriptor {
	return append([]Descriptor(nil), l.descriptors...)
}

// Validate checks every setting against its range.
func (l *SettingsList) Validate(s Settings) error {
	for _, d := range l.descriptors {
		if err := d.check(&s); err != nil {
			return err
		}
	}
	if _, ok := useFieldNames[s.UseField]; !ok {
		return fmt.Errorf("unknown use_field %d", int(s.UseField))
	}
	return nil
}

type document struct {
	Version int `json:"version"`
	Settings
}

// FromJSON decodes a preset document. Keys that are absent keep their
// DefaultSettings value; unknown keys are ignored. A missing version is
// read as the current one.
func (l *SettingsList) FromJSON(data []byte) (Settings, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Settings{}, fmt.Errorf("decode preset: %w", err)
	}
	if probe == nil {
		return Settings{}, fmt.Errorf("decode preset: document is not a JSON object")
	}
	if raw, ok := probe["version"]; ok {
		var version int
		if err := json.Unmarshal(raw, &version); err != nil {
			return Settings{}, fmt.Errorf("decode preset version: %w", err)
		}
		if version < 1 || version > SettingsVersion {
			return Settings{}, fmt.Errorf("unsupported preset version %d (supported: 1..%d)", version, SettingsVersion)
		}
	}

	doc := document{Settings: DefaultSettings()}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Settings{}, fmt.Errorf("decode preset: %w", err)
	}
	if err := l.Validate(doc.Settings); err != nil {
		return Settings{}, fmt.Errorf("invalid preset: %w", err)
	}
	return doc.Settings, nil
}

// ToJSON encodes settings as a versioned, indented preset document.
func (l *SettingsList) ToJSON(s Settings) ([]byte, error) {
	if err := l.Validate(s); err != nil {
		return nil, err
	}
	return json.MarshalIndent(document{Version: SettingsVersion, Settings: s}, "", "  ")
}
