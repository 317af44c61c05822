package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gomhd/types"
)

func TestIsNan(t *testing.T) {
	var (
		nan = math.NaN()
	)
	assert.False(t, IsNan(1.))
	assert.True(t, IsNan(nan))
	assert.False(t, IsNan([]float64{1, 2}))
	assert.True(t, IsNan([]float64{1, nan}))
	assert.False(t, IsNan(types.ConservedState{D: 1}))
	assert.True(t, IsNan(types.ConservedState{D: 1, Bz: nan}))
	assert.True(t, IsNan([]types.PrimitiveState{{D: 1}, {Vy: nan}}))
	assert.False(t, IsNan([]types.ConservedState{{D: 1}, {E: 2}}))
	assert.False(t, IsNan("not a number"))
	assert.Panics(t, func() { IsNanPanic(types.PrimitiveState{E: nan}) })
	assert.Contains(t, GetMemUsage(), "MiB")
}
