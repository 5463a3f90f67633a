// Package processor runs a batch of named instances on a pool of workers.
// Each job is downloaded, solved, written back and recorded as a report;
// a failing instance is logged and dead-lettered while the batch goes on.
package processor
