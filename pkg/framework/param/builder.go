package param

// Builder provides a fluent API for creating parameters
type Builder[T any] struct {
	param Parameter[T]
}

// String starts a string parameter.
func String[T any](name string) *Builder[T] {
	return &Builder[T]{
		param: Parameter[T]{
			Info: Info{Name: name, Type: TypeString},
		},
	}
}

// Explanation sets the text hosts show next to the parameter.
func (b *Builder[T]) Explanation(text string) *Builder[T] {
	b.param.Explanation = text
	return b
}

// Accessors sets the get/set pair.
func (b *Builder[T]) Accessors(get func(T) string, set func(T, string)) *Builder[T] {
	b.param.Get = get
	b.param.Set = set
	return b
}

// Build returns the parameter.
func (b *Builder[T]) Build() Parameter[T] {
	return b.param
}
