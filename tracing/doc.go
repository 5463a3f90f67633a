// Package tracing wraps OpenTelemetry so that the solver and batch driver
// can open spans without importing the SDK directly.
package tracing
