// Package traverse holds the Emittable, the adapter presenting a pull-based
// Traversable under the push-based Emittable contract, and Run, the generic
// glue letting a non-generic TraverseMethod drive a typed Traversable.
//
// Traversal is synchronous: Traverse runs on the caller's goroutine until the
// method returns. The subscription methods exist for structural
// compatibility only and always fail with ErrSubscribeUnsupported, after
// checking their arguments (ErrInvalidArgument).
package traverse
