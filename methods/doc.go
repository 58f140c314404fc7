// Package methods holds the traverse methods: the walking algorithms that
// decide how many values of a traversal reach its handler and what the
// traversal reports when it ends.
//
// A method never sees the values themselves. It drives a primitives.Walker,
// stepping or skipping, and returns true when the walk located or consumed a
// terminal result:
//
//	done, err := emittable.Traverse(methods.Limit(10), handler, ctx)
//
// Methods can also be described by a Config, decoded from the "traverse"
// entry of an association (see FromContext).
package methods
