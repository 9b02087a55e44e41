// Package metrics exposes Prometheus counters for authentication outcomes,
// labelled by operation (login, register, refresh, identify, logout) and
// outcome, together with a /metrics handler.
package metrics
