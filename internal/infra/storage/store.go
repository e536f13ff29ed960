// Package storage holds the Persistence Gateway: whole-collection stores that
// load and save a named collection as a single JSON document.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by a Store when the collection was never saved.
var ErrNotFound = errors.New("collection not found")

// Store reads and writes whole collections. Implementations must make Save
// atomic with respect to Load: a reader sees either the old or the new
// document, never a partial one.
type Store interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}

// ReadPolicy decides what happens when a collection cannot be read or decoded.
type ReadPolicy int

const (
	// Strict propagates read and decode failures to the caller.
	Strict ReadPolicy = iota
	// Lenient logs the failure and continues with an empty collection.
	Lenient
)

func (p ReadPolicy) String() string {
	if p == Lenient {
		return "lenient"
	}
	return "strict"
}

func ParseReadPolicy(s string) (ReadPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return Strict, fmt.Errorf("unknown read policy %q", s)
	}
}
