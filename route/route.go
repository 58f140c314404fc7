package route

// Route is a step function without free inputs. F is the flow type consumed,
// usually *Flow[S, E], and O is either Emitting[V] or Flowing.
type Route[F, O any] func(flow F) (O, error)

// Route1 is a step function taking one free input.
type Route1[F, I, O any] func(flow F, value I) (O, error)

// Route2 is a step function taking two free inputs.
type Route2[F, I1, I2, O any] func(flow F, value1 I1, value2 I2) (O, error)

// Route3 is a step function taking three free inputs.
type Route3[F, I1, I2, I3, O any] func(flow F, value1 I1, value2 I2, value3 I3) (O, error)

// Route4 is a step function taking four free inputs.
type Route4[F, I1, I2, I3, I4, O any] func(
	flow F, value1 I1, value2 I2, value3 I3, value4 I4,
) (O, error)

// Route5 is a step function taking five free inputs.
type Route5[F, I1, I2, I3, I4, I5, O any] func(
	flow F, value1 I1, value2 I2, value3 I3, value4 I4, value5 I5,
) (O, error)

// Route6 is a step function taking six free inputs.
type Route6[F, I1, I2, I3, I4, I5, I6, O any] func(
	flow F, value1 I1, value2 I2, value3 I3, value4 I4, value5 I5, value6 I6,
) (O, error)

// Route7 is a step function taking seven free inputs.
type Route7[F, I1, I2, I3, I4, I5, I6, I7, O any] func(
	flow F, value1 I1, value2 I2, value3 I3, value4 I4, value5 I5, value6 I6,
	value7 I7,
) (O, error)

// Route8 is a step function taking eight free inputs.
type Route8[F, I1, I2, I3, I4, I5, I6, I7, I8, O any] func(
	flow F, value1 I1, value2 I2, value3 I3, value4 I4, value5 I5, value6 I6,
	value7 I7, value8 I8,
) (O, error)
