package graph

import "errors"

// Common sentinel errors
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNotTea       = errors.New("node is not a tea")
	ErrSelfEdge     = errors.New("self edges are not allowed")
	ErrEdgePair     = errors.New("edge pair not allowed")
)
