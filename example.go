package regular

// Example is one sample value handed to the checker, together with the
// label the caller used for it. The rendering is taken when the Example is
// created, so diagnostics still show the original value if a broken
// operation later modifies storage the value shares.
type Example[T any] struct {
	value    T
	label    string
	rendered string
}

// NewExample snapshots v. An empty label is replaced by the rendering.
func NewExample[T any](v T, label string, format func(T) string) Example[T] {
	rendered := format(v)
	if label == "" {
		label = rendered
	}
	return Example[T]{value: v, label: label, rendered: rendered}
}

func (e Example[T]) Value() T         { return e.value }
func (e Example[T]) Label() string    { return e.label }
func (e Example[T]) Rendered() string { return e.rendered }

// String returns the label, followed by the rendered value when the two
// differ:
//
//	example1
//	    Which is: [0]
func (e Example[T]) String() string {
	if e.rendered == e.label {
		return e.label
	}
	return e.label + "\n    Which is: " + e.rendered
}
