// Package preset loads NTSC effect presets from JSON files.
package preset

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/justyntemme/frei0rgo/pkg/ntsc"
)

// Kind classifies a load failure.
type Kind int

const (
	// KindInvalidPathEncoding means the path is not valid UTF-8 text.
	KindInvalidPathEncoding Kind = iota + 1
	// KindIO means the file could not be read as text.
	KindIO
	// KindConfigParse means the file is not a valid preset document.
	KindConfigParse
)

func (k Kind) String() string {
	switch k {
	case KindInvalidPathEncoding:
		return "invalid path encoding"
	case KindIO:
		return "io error"
	case KindConfigParse:
		return "config parse error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels for errors.Is; every *Error matches the one of its kind.
var (
	ErrInvalidPathEncoding = &Error{Kind: KindInvalidPathEncoding}
	ErrIO                  = &Error{Kind: KindIO}
	ErrConfigParse         = &Error{Kind: KindConfigParse}
)

// Error is returned by Load.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %q: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Load reads the preset at path and builds its effect. The file is read
// once; the returned effect does not depend on the file afterwards.
func Load(path string) (*ntsc.Effect, error) {
	return NewLoader(ntsc.NewSettingsList()).Load(path)
}

// Loader decodes presets with a settings codec.
type Loader struct {
	codec *ntsc.SettingsList
}

// NewLoader creates a loader for codec.
func NewLoader(codec *ntsc.SettingsList) *Loader {
	return &Loader{codec: codec}
}

// Load reads the preset at path and builds its effect.
func (l *Loader) Load(path string) (*ntsc.Effect, error) {
	if !utf8.ValidString(path) {
		return nil, &Error{
			Kind: KindInvalidPathEncoding,
			Path: path,
			Err:  errors.New("preset path is not valid UTF-8"),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: path, Err: errors.Wrap(err, "read preset")}
	}
	if !utf8.Valid(data) {
		return nil, &Error{Kind: KindIO, Path: path, Err: errors.New("preset file is not valid UTF-8")}
	}

	settings, err := l.codec.FromJSON(data)
	if err != nil {
		return nil, &Error{Kind: KindConfigParse, Path: path, Err: errors.WithStack(err)}
	}
	return settings.Effect(), nil
}
