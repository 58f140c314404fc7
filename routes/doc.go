// Package routes is the composition root: it binds a route of arity N to N
// values and returns a *traverse.Emittable ready to be traversed.
//
// Every arity from zero to eight has four entry points:
//
//	StreamN(route, v1..vN)                    // route returns route.Emitting[V]
//	StreamNWith(route.Throws[E](), route, ...) // same, E named explicitly
//	ActionN(route, v1..vN)                    // route returns route.Flowing
//	ActionNWith(route.Throws[E](), route, ...)
//
// N is omitted for arity zero. Binding is positional and total and never runs
// the route: the route body runs on every traversal of the returned
// Emittable, with a fresh *route.Flow built from the traversal's context.
//
// Action traversals have the value type route.Void and yield no value; the
// route's Flowing runs during the walk and its failure is a route failure.
package routes
