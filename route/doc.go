// Package route defines the route family and the Flow they run in.
//
// A route is a plain function of fixed arity, from zero to eight free inputs,
// taking the traversal's *Flow first:
//
//	func sumPair(flow *route.Flow[struct{}, error], a, b int) (route.Emitting[int], error) {
//		return route.Emit(a + b), nil
//	}
//
// Stream routes return an Emitting, action routes return a Flowing. Routes
// are bound to values and turned into traversables by the routes package;
// they never run at binding time.
package route
