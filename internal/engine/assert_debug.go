//go:build debug

package engine

// debugAssertions turns world invariant violations into panics.
const debugAssertions = true
