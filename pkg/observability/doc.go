/*
Package observability provides Prometheus instrumentation for the runoff engine.

Metrics are fed through domain.LifecycleHooks, so the engine itself never imports Prometheus:

	m := observability.NewMetrics(prometheus.NewRegistry())
	el, _ := runoff.New(names, ballots, runoff.WithLifecycleHooks(m.Hooks()))
*/
package observability
