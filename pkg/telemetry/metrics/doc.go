// Package metrics exposes Prometheus metrics for naming operations:
// solve/parse counts by rule and status, session store operations by
// backend, and watch-mode reload counts. The collector registers on
// its own registry and serves it over promhttp in watch mode.
package metrics
