package graph

import "errors"

// ErrNotFound reports a query against an entity that is not in the graph.
var ErrNotFound = errors.New("entity not found in the graph")

// ErrEmptyField reports an add whose source, relationship, or target is
// empty after trimming.
var ErrEmptyField = errors.New("entity names and relationship must be non-empty")
