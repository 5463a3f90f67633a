// Package dao defines persistence contracts for batch run reports.
package dao

import (
	"context"
)

// Service persists entities of type T keyed by K.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	// List returns entities matching every parameter, oldest first.
	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
