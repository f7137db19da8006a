// Package storage persists uploaded material artifacts on the local file
// system or in an S3 compatible bucket.
package storage

import "errors"

var (
	// ErrObjectExists is returned by Save when name is already taken.
	ErrObjectExists = errors.New("object already exists")
	// ErrObjectNotFound is returned by Read when the artifact is missing.
	ErrObjectNotFound = errors.New("object not found")
)
