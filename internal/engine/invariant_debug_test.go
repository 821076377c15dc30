//go:build debug

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

func TestExtraPlayersPanic(t *testing.T) {
	p := arena(core.Entity{Kind: core.KindPlayer, Pos: core.V(30, 10), Shape: core.Box(2, 2)})
	w := NewWorld(p, 1, nil)

	assert.Panics(t, func() { w.Step(dt, core.InputSnapshot{}) })
}
