// Package idgen issues opaque identifiers for batch runs, run reports and
// queue messages.
package idgen
