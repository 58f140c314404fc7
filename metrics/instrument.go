package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.TraverseMethod(&InstrumentedMethod{})
var _ = primitives.Walker(&countingWalker{})

// InstrumentedMethod decorates a method with metrics: every walk counts as a
// traversal, every delivered element is counted, and the walk is timed.
type InstrumentedMethod struct {
	method    primitives.TraverseMethod
	collector *Collector
	name      string
}

// Instrument decorates method, recording its walks in collector under the
// given method label. An empty name uses the method's string form.
func Instrument(
	method primitives.TraverseMethod,
	collector *Collector,
	name string,
) *InstrumentedMethod {
	if method == nil {
		panic("method cannot be nil")
	}
	if collector == nil {
		panic("collector cannot be nil")
	}
	if name == "" {
		name = fmt.Sprint(method)
	}

	return &InstrumentedMethod{method: method, collector: collector, name: name}
}

// Walk delegates to the decorated method and records the outcome.
func (m *InstrumentedMethod) Walk(
	w primitives.Walker,
	ctx *assoc.Association,
) (bool, error) {
	timer := prometheus.NewTimer(m.collector.duration.WithLabelValues(m.name))
	defer timer.ObserveDuration()

	elements := m.collector.elements.WithLabelValues(m.name)
	done, err := m.method.Walk(&countingWalker{walker: w, elements: elements}, ctx)

	result := ResultExhausted
	switch {
	case err != nil:
		result = ResultFailed
	case done:
		result = ResultDone
	}
	m.collector.traversals.WithLabelValues(m.name, result).Inc()

	return done, err
}

func (m *InstrumentedMethod) String() string {
	return m.name
}

// countingWalker counts the elements handed to the handler.
type countingWalker struct {
	walker   primitives.Walker
	elements prometheus.Counter
}

func (w *countingWalker) Step() (primitives.Step, error) {
	step, err := w.walker.Step()
	if step != primitives.Exhausted {
		w.elements.Inc()
	}
	return step, err
}

func (w *countingWalker) Skip() (bool, error) {
	return w.walker.Skip()
}
