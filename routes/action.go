package routes

import (
	"github.com/arielf-camacho/route-stream/route"
	"github.com/arielf-camacho/route-stream/traverse"
)

// Action binds a route without free inputs. The resulting Emittable
// runs the route and its Flowing on each traversal and yields no value.
func Action[S any, E error](
	r route.Route[*route.Flow[S, E], route.Flowing],
) *traverse.Emittable[route.Void, E] {
	mustRoute(r == nil)

	return action(func(flow *route.Flow[S, E]) (route.Flowing, error) {
		return r(flow)
	})
}

// ActionWith is Action with the failure channel E named explicitly.
func ActionWith[S any, E error](
	_ route.Thrown[E],
	r route.Route[*route.Flow[S, E], route.Flowing],
) *traverse.Emittable[route.Void, E] {
	return Action[S, E](r)
}

// Action1 binds a route of one free input to its value. See Action.
func Action1[S, I any, E error](
	r route.Route1[*route.Flow[S, E], I, route.Flowing],
	value I,
) *traverse.Emittable[route.Void, E] {
	mustRoute(r == nil)

	return action(func(flow *route.Flow[S, E]) (route.Flowing, error) {
		return r(flow, value)
	})
}

// Action1With is Action1 with the failure channel E named explicitly.
func Action1With[S, I any, E error](
	_ route.Thrown[E],
	r route.Route1[*route.Flow[S, E], I, route.Flowing],
	value I,
) *traverse.Emittable[route.Void, E] {
	return Action1[S, I, E](r, value)
}

// Action2 binds a route of two free inputs to their values. See Action.
func Action2[S, I1, I2 any, E error](
	r route.Route2[*route.Flow[S, E], I1, I2, route.Flowing],
	value1 I1,
	value2 I2,
) *traverse.Emittable[route.Void, E] {
	mustRoute(r == nil)

	return action(func(flow *route.Flow[S, E]) (route.Flowing, error) {
		return r(flow, value1, value2)
	})
}

// Action2With is Action2 with the failure channel E named explicitly.
func Action2With[S, I1, I2 any, E error](
	_ route.Thrown[E],
	r route.Route2[*route.Flow[S, E], I1, I2, route.Flowing],
	value1 I1,
	value2 I2,
) *traverse.Emittable[route.Void, E] {
	return Action2[S, I1, I2, E](r, value1, value2)
}

// Action3 binds a route of three free inputs to their values. See Action.
func Action3[S, I1, I2, I3 any, E error](
	r route.Route3[*route.Flow[S, E], I1, I2, I3, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
) *traverse.Emittable[route.Void, E] {
	mustRoute(r == nil)

	return action(func(flow *route.Flow[S, E]) (route.Flowing, error) {
		return r(flow, value1, value2, value3)
	})
}

// Action3With is Action3 with the failure channel E named explicitly.
func Action3With[S, I1, I2, I3 any, E error](
	_ route.Thrown[E],
	r route.Route3[*route.Flow[S, E], I1, I2, I3, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
) *traverse.Emittable[route.Void, E] {
	return Action3[S, I1, I2, I3, E](r, value1, value2, value3)
}

// Action4 binds a route of four free inputs to their values. See Action.
func Action4[S, I1, I2, I3, I4 any, E error](
	r route.Route4[*route.Flow[S, E], I1, I2, I3, I4, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
) *traverse.Emittable[route.Void, E] {
	mustRoute(r == nil)

	return action(func(flow *route.Flow[S, E]) (route.Flowing, error) {
		return r(flow, value1, value2, value3, value4)
	})
}

// Action4With is Action4 with the failure channel E named explicitly.
func Action4With[S, I1, I2, I3, I4 any, E error](
	_ route.Thrown[E],
	r route.Route4[*route.Flow[S, E], I1, I2, I3, I4, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
) *traverse.Emittable[route.Void, E] {
	return Action4[S, I1, I2, I3, I4, E](r, value1, value2, value3, value4)
}

// Action5 binds a route of five free inputs to their values. See Action.
func Action5[S, I1, I2, I3, I4, I5 any, E error](
	r route.Route5[*route.Flow[S, E], I1, I2, I3, I4, I5, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
) *traverse.Emittable[route.Void, E] {
	mustRoute(r == nil)

	return action(func(flow *route.Flow[S, E]) (route.Flowing, error) {
		return r(flow, value1, value2, value3, value4, value5)
	})
}

// Action5With is Action5 with the failure channel E named explicitly.
func Action5With[S, I1, I2, I3, I4, I5 any, E error](
	_ route.Thrown[E],
	r route.Route5[*route.Flow[S, E], I1, I2, I3, I4, I5, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
) *traverse.Emittable[route.Void, E] {
	return Action5[S, I1, I2, I3, I4, I5, E](r, value1, value2, value3, value4, value5)
}

// Action6 binds a route of six free inputs to their values. See Action.
func Action6[S, I1, I2, I3, I4, I5, I6 any, E error](
	r route.Route6[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
) *traverse.Emittable[route.Void, E] {
	mustRoute(r == nil)

	return action(func(flow *route.Flow[S, E]) (route.Flowing, error) {
		return r(flow, value1, value2, value3, value4, value5, value6)
	})
}

// Action6With is Action6 with the failure channel E named explicitly.
func Action6With[S, I1, I2, I3, I4, I5, I6 any, E error](
	_ route.Thrown[E],
	r route.Route6[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
) *traverse.Emittable[route.Void, E] {
	return Action6[S, I1, I2, I3, I4, I5, I6, E](r, value1, value2, value3, value4, value5, value6)
}

// Action7 binds a route of seven free inputs to their values. See Action.
func Action7[S, I1, I2, I3, I4, I5, I6, I7 any, E error](
	r route.Route7[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, I7, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
	value7 I7,
) *traverse.Emittable[route.Void, E] {
	mustRoute(r == nil)

	return action(func(flow *route.Flow[S, E]) (route.Flowing, error) {
		return r(flow, value1, value2, value3, value4, value5, value6, value7)
	})
}

// Action7With is Action7 with the failure channel E named explicitly.
func Action7With[S, I1, I2, I3, I4, I5, I6, I7 any, E error](
	_ route.Thrown[E],
	r route.Route7[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, I7, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
	value7 I7,
) *traverse.Emittable[route.Void, E] {
	return Action7[S, I1, I2, I3, I4, I5, I6, I7, E](r, value1, value2, value3, value4, value5, value6, value7)
}

// Action8 binds a route of eight free inputs to their values. See Action.
func Action8[S, I1, I2, I3, I4, I5, I6, I7, I8 any, E error](
	r route.Route8[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, I7, I8, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
	value7 I7,
	value8 I8,
) *traverse.Emittable[route.Void, E] {
	mustRoute(r == nil)

	return action(func(flow *route.Flow[S, E]) (route.Flowing, error) {
		return r(flow, value1, value2, value3, value4, value5, value6, value7, value8)
	})
}

// Action8With is Action8 with the failure channel E named explicitly.
func Action8With[S, I1, I2, I3, I4, I5, I6, I7, I8 any, E error](
	_ route.Thrown[E],
	r route.Route8[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, I7, I8, route.Flowing],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
	value7 I7,
	value8 I8,
) *traverse.Emittable[route.Void, E] {
	return Action8[S, I1, I2, I3, I4, I5, I6, I7, I8, E](r, value1, value2, value3, value4, value5, value6, value7, value8)
}
