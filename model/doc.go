// Package model contains the in-memory representation of a book scanning
// instance and of the solution produced for it.
//
// A Problem is immutable once built: allocators never touch it directly and
// work on the mutable copy provided by the `state` sub-package instead.  The
// root model package only holds plain data types and their validation so
// that readers, writers and allocators can share them with a single import.
package model
