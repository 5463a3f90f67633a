// Package progress keeps aggregated counters of a batch run (instances total,
// completed, failed, running).  The tracker travels in the context so every
// worker can update it without a global registry.
package progress
