// Package plugin describes a plugin to its host.
package plugin

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
)

// ColorModel is the pixel layout a plugin expects, numbered as in frei0r.
type ColorModel int

const (
	ColorModelBGRA8888 ColorModel = 0
	ColorModelRGBA8888 ColorModel = 1
	ColorModelPacked32 ColorModel = 2
)

func (c ColorModel) String() string {
	switch c {
	case ColorModelBGRA8888:
		return "BGRA8888"
	case ColorModelRGBA8888:
		return "RGBA8888"
	case ColorModelPacked32:
		return "PACKED32"
	default:
		return fmt.Sprintf("ColorModel(%d)", int(c))
	}
}

// Type is the kind of plugin, numbered as in frei0r.
type Type int

const (
	TypeFilter Type = 0
	TypeSource Type = 1
	TypeMixer2 Type = 2
	TypeMixer3 Type = 3
)

func (t Type) String() string {
	switch t {
	case TypeFilter:
		return "filter"
	case TypeSource:
		return "source"
	case TypeMixer2:
		return "mixer2"
	case TypeMixer3:
		return "mixer3"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Info contains plugin metadata
type Info struct {
	Name         string // Symbolic name, unique among the host's plugins
	Author       string
	Explanation  string // Human readable description
	Type         Type
	ColorModel   ColorModel
	MajorVersion int
	MinorVersion int
}

// Validate checks the fields hosts depend on.
func (i Info) Validate() error {
	if i.Name == "" {
		return errors.New("plugin name cannot be empty")
	}
	if strings.ContainsRune(i.Name, 0) || strings.ContainsRune(i.Author, 0) || strings.ContainsRune(i.Explanation, 0) {
		return errors.New("plugin strings cannot contain NUL bytes")
	}
	if i.MajorVersion < 0 || i.MinorVersion < 0 {
		return fmt.Errorf("invalid version %d.%d", i.MajorVersion, i.MinorVersion)
	}
	return nil
}

// Version returns the major and minor version of the main module from the
// binary's build info, or the fallback when the binary carries no tagged
// version (development builds, tests).
func Version(fallbackMajor, fallbackMinor int) (major, minor int) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return fallbackMajor, fallbackMinor
	}
	if major, minor, ok := parseVersion(bi.Main.Version); ok {
		return major, minor
	}
	return fallbackMajor, fallbackMinor
}

// parseVersion reads "vMAJOR.MINOR[.PATCH][-pre][+build]".
func parseVersion(v string) (major, minor int, ok bool) {
	v, found := strings.CutPrefix(v, "v")
	if !found {
		return 0, 0, false
	}
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return 0, 0, false
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return 0, 0, false
	}
	return major, minor, true
}
