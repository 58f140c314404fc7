package route

// Thrown is a marker naming the failure channel E of a composition. It is
// passed to the factory variants that cannot infer E from their arguments.
type Thrown[E error] struct{}

// Throws returns the marker of the failure channel E.
func Throws[E error]() Thrown[E] {
	return Thrown[E]{}
}
