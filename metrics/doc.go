// Package metrics instruments traverse methods with prometheus metrics.
//
//	collector := metrics.MustNewCollector(prometheus.DefaultRegisterer)
//	method := metrics.Instrument(methods.Forward(), collector, "")
package metrics
