// ABOUTME: Main searchgraph package providing version information and package documentation
// ABOUTME: This is the root package for the de-duplicating search graph library

// Package searchgraph provides a de-duplicating, incrementally built directed
// graph for state-space search. Vertices are canonical representatives of
// application states, edges may be expanded lazily with cycle detection, and
// a mark-compact collector prunes everything unreachable from a root set.
// The core lives in the graph subpackage.
package searchgraph

// Version is the semantic version of the searchgraph library
const Version = "0.1.0-dev"
