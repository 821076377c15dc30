//go:build !debug

package engine

const debugAssertions = false
