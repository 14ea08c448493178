package param

import "fmt"

// Table maps parameter indices and names to typed accessors. A Table is
// immutable after NewTable and safe to share between instances.
type Table[T any] struct {
	params []Parameter[T]
	byName map[string]int
}

// NewTable builds a table in index order. Names must be unique and every
// parameter needs both accessors.
func NewTable[T any](params ...Parameter[T]) (*Table[T], error) {
	t := &Table[T]{
		params: make([]Parameter[T], 0, len(params)),
		byName: make(map[string]int, len(params)),
	}

	for _, p := range params {
		if _, exists := t.byName[p.Name]; exists {
			return nil, fmt.Errorf("parameter %q already exists", p.Name)
		}
		if p.Get == nil || p.Set == nil {
			return nil, fmt.Errorf("parameter %q is missing an accessor", p.Name)
		}
		t.byName[p.Name] = len(t.params)
		t.params = append(t.params, p)
	}

	return t, nil
}

// MustTable is NewTable that panics on error, for package-level tables.
func MustTable[T any](params ...Parameter[T]) *Table[T] {
	t, err := NewTable(params...)
	if err != nil {
		panic(err)
	}
	return t
}

// Count returns the number of parameters
func (t *Table[T]) Count() int {
	return len(t.params)
}

// Info returns the host descriptor of the parameter at index.
func (t *Table[T]) Info(index int) (Info, bool) {
	if index < 0 || index >= len(t.params) {
		return Info{}, false
	}
	return t.params[index].Info, true
}

// Infos returns all descriptors in order.
func (t *Table[T]) Infos() []Info {
	result := make([]Info, len(t.params))
	for i, p := range t.params {
		result[i] = p.Info
	}
	return result
}

// Index returns the index of the named parameter.
func (t *Table[T]) Index(name string) (int, bool) {
	i, ok := t.byName[name]
	return i, ok
}

// Get reads the parameter at index from target.
func (t *Table[T]) Get(target T, index int) (string, bool) {
	if index < 0 || index >= len(t.params) {
		return "", false
	}
	return t.params[index].Get(target), true
}

// Set writes the parameter at index on target.
func (t *Table[T]) Set(target T, index int, value string) bool {
	if index < 0 || index >= len(t.params) {
		return false
	}
	t.params[index].Set(target, value)
	return true
}
