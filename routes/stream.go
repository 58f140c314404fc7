package routes

import (
	"github.com/arielf-camacho/route-stream/route"
	"github.com/arielf-camacho/route-stream/traverse"
)

// Stream binds a route without free inputs. The resulting Emittable
// runs the route on each traversal and yields the values of its Emitting.
func Stream[S, V any, E error](
	r route.Route[*route.Flow[S, E], route.Emitting[V]],
) *traverse.Emittable[V, E] {
	mustRoute(r == nil)

	return stream(func(flow *route.Flow[S, E]) (route.Emitting[V], error) {
		return r(flow)
	})
}

// StreamWith is Stream with the failure channel E named explicitly.
func StreamWith[S, V any, E error](
	_ route.Thrown[E],
	r route.Route[*route.Flow[S, E], route.Emitting[V]],
) *traverse.Emittable[V, E] {
	return Stream[S, V, E](r)
}

// Stream1 binds a route of one free input to its value. See Stream.
func Stream1[S, I, V any, E error](
	r route.Route1[*route.Flow[S, E], I, route.Emitting[V]],
	value I,
) *traverse.Emittable[V, E] {
	mustRoute(r == nil)

	return stream(func(flow *route.Flow[S, E]) (route.Emitting[V], error) {
		return r(flow, value)
	})
}

// Stream1With is Stream1 with the failure channel E named explicitly.
func Stream1With[S, I, V any, E error](
	_ route.Thrown[E],
	r route.Route1[*route.Flow[S, E], I, route.Emitting[V]],
	value I,
) *traverse.Emittable[V, E] {
	return Stream1[S, I, V, E](r, value)
}

// Stream2 binds a route of two free inputs to their values. See Stream.
func Stream2[S, I1, I2, V any, E error](
	r route.Route2[*route.Flow[S, E], I1, I2, route.Emitting[V]],
	value1 I1,
	value2 I2,
) *traverse.Emittable[V, E] {
	mustRoute(r == nil)

	return stream(func(flow *route.Flow[S, E]) (route.Emitting[V], error) {
		return r(flow, value1, value2)
	})
}

// Stream2With is Stream2 with the failure channel E named explicitly.
func Stream2With[S, I1, I2, V any, E error](
	_ route.Thrown[E],
	r route.Route2[*route.Flow[S, E], I1, I2, route.Emitting[V]],
	value1 I1,
	value2 I2,
) *traverse.Emittable[V, E] {
	return Stream2[S, I1, I2, V, E](r, value1, value2)
}

// Stream3 binds a route of three free inputs to their values. See Stream.
func Stream3[S, I1, I2, I3, V any, E error](
	r route.Route3[*route.Flow[S, E], I1, I2, I3, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
) *traverse.Emittable[V, E] {
	mustRoute(r == nil)

	return stream(func(flow *route.Flow[S, E]) (route.Emitting[V], error) {
		return r(flow, value1, value2, value3)
	})
}

// Stream3With is Stream3 with the failure channel E named explicitly.
func Stream3With[S, I1, I2, I3, V any, E error](
	_ route.Thrown[E],
	r route.Route3[*route.Flow[S, E], I1, I2, I3, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
) *traverse.Emittable[V, E] {
	return Stream3[S, I1, I2, I3, V, E](r, value1, value2, value3)
}

// Stream4 binds a route of four free inputs to their values. See Stream.
func Stream4[S, I1, I2, I3, I4, V any, E error](
	r route.Route4[*route.Flow[S, E], I1, I2, I3, I4, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
) *traverse.Emittable[V, E] {
	mustRoute(r == nil)

	return stream(func(flow *route.Flow[S, E]) (route.Emitting[V], error) {
		return r(flow, value1, value2, value3, value4)
	})
}

// Stream4With is Stream4 with the failure channel E named explicitly.
func Stream4With[S, I1, I2, I3, I4, V any, E error](
	_ route.Thrown[E],
	r route.Route4[*route.Flow[S, E], I1, I2, I3, I4, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
) *traverse.Emittable[V, E] {
	return Stream4[S, I1, I2, I3, I4, V, E](r, value1, value2, value3, value4)
}

// Stream5 binds a route of five free inputs to their values. See Stream.
func Stream5[S, I1, I2, I3, I4, I5, V any, E error](
	r route.Route5[*route.Flow[S, E], I1, I2, I3, I4, I5, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
) *traverse.Emittable[V, E] {
	mustRoute(r == nil)

	return stream(func(flow *route.Flow[S, E]) (route.Emitting[V], error) {
		return r(flow, value1, value2, value3, value4, value5)
	})
}

// Stream5With is Stream5 with the failure channel E named explicitly.
func Stream5With[S, I1, I2, I3, I4, I5, V any, E error](
	_ route.Thrown[E],
	r route.Route5[*route.Flow[S, E], I1, I2, I3, I4, I5, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
) *traverse.Emittable[V, E] {
	return Stream5[S, I1, I2, I3, I4, I5, V, E](r, value1, value2, value3, value4, value5)
}

// Stream6 binds a route of six free inputs to their values. See Stream.
func Stream6[S, I1, I2, I3, I4, I5, I6, V any, E error](
	r route.Route6[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
) *traverse.Emittable[V, E] {
	mustRoute(r == nil)

	return stream(func(flow *route.Flow[S, E]) (route.Emitting[V], error) {
		return r(flow, value1, value2, value3, value4, value5, value6)
	})
}

// Stream6With is Stream6 with the failure channel E named explicitly.
func Stream6With[S, I1, I2, I3, I4, I5, I6, V any, E error](
	_ route.Thrown[E],
	r route.Route6[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
) *traverse.Emittable[V, E] {
	return Stream6[S, I1, I2, I3, I4, I5, I6, V, E](r, value1, value2, value3, value4, value5, value6)
}

// Stream7 binds a route of seven free inputs to their values. See Stream.
func Stream7[S, I1, I2, I3, I4, I5, I6, I7, V any, E error](
	r route.Route7[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, I7, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
	value7 I7,
) *traverse.Emittable[V, E] {
	mustRoute(r == nil)

	return stream(func(flow *route.Flow[S, E]) (route.Emitting[V], error) {
		return r(flow, value1, value2, value3, value4, value5, value6, value7)
	})
}

// Stream7With is Stream7 with the failure channel E named explicitly.
func Stream7With[S, I1, I2, I3, I4, I5, I6, I7, V any, E error](
	_ route.Thrown[E],
	r route.Route7[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, I7, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
	value7 I7,
) *traverse.Emittable[V, E] {
	return Stream7[S, I1, I2, I3, I4, I5, I6, I7, V, E](r, value1, value2, value3, value4, value5, value6, value7)
}

// Stream8 binds a route of eight free inputs to their values. See Stream.
func Stream8[S, I1, I2, I3, I4, I5, I6, I7, I8, V any, E error](
	r route.Route8[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, I7, I8, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
	value7 I7,
	value8 I8,
) *traverse.Emittable[V, E] {
	mustRoute(r == nil)

	return stream(func(flow *route.Flow[S, E]) (route.Emitting[V], error) {
		return r(flow, value1, value2, value3, value4, value5, value6, value7, value8)
	})
}

// Stream8With is Stream8 with the failure channel E named explicitly.
func Stream8With[S, I1, I2, I3, I4, I5, I6, I7, I8, V any, E error](
	_ route.Thrown[E],
	r route.Route8[*route.Flow[S, E], I1, I2, I3, I4, I5, I6, I7, I8, route.Emitting[V]],
	value1 I1,
	value2 I2,
	value3 I3,
	value4 I4,
	value5 I5,
	value6 I6,
	value7 I7,
	value8 I8,
) *traverse.Emittable[V, E] {
	return Stream8[S, I1, I2, I3, I4, I5, I6, I7, I8, V, E](r, value1, value2, value3, value4, value5, value6, value7, value8)
}
