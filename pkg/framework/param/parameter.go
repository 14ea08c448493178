// Package param describes plugin parameters and dispatches host get/set
// calls to typed accessors on the instance.
package param

import "fmt"

// Type is the host-visible parameter type.
type Type int

// Parameter types, numbered as in the frei0r ABI.
const (
	TypeBool     Type = 0
	TypeDouble   Type = 1
	TypeColor    Type = 2
	TypePosition Type = 3
	TypeString   Type = 4
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeDouble:
		return "double"
	case TypeColor:
		return "color"
	case TypePosition:
		return "position"
	case TypeString:
		return "string"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Info is what the host sees of a parameter.
type Info struct {
	Name        string
	Type        Type
	Explanation string
}

// Parameter is a string parameter of instances of type T. Get and Set are
// usually method expressions such as (*Filter).PresetPath.
type Parameter[T any] struct {
	Info
	Get func(T) string
	Set func(T, string)
}
