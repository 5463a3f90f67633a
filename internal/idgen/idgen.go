package idgen

import "github.com/google/uuid"

// NewFunc generates report, run and message ids. Override in tests for determinism.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new identifier.
func New() string { return NewFunc() }
