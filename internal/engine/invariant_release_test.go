//go:build !debug

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

func TestExtraPlayersDegradeToFirst(t *testing.T) {
	p := arena(core.Entity{Kind: core.KindPlayer, Pos: core.V(30, 10), Shape: core.Box(2, 2)})
	w := NewWorld(p, 1, nil)
	require.Equal(t, 2, w.Count(core.KindPlayer))

	w.Step(dt, core.InputSnapshot{})

	assert.Equal(t, 1, w.Count(core.KindPlayer))
	assert.Equal(t, core.EntityID(1), w.Player().ID)
}
