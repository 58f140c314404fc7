// Package flows holds lazy transformations of Emittings. A flow is applied
// to an Emitting and returns another one; nothing is pulled until the result
// is consumed, and consuming it pulls exactly as much of the input as it
// needs.
//
//	numbers := sources.Slice([]int{1, 2, 3, 4}).Build()
//	even := flows.Filter(func(x int) (bool, error) { return x%2 == 0, nil }).Build()
//	for v, err := range flows.SourceToFlow(numbers, even).Emit() {
//		...
//	}
package flows
