package eos

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/notargets/gomhd/types"
)

var srStates = []types.PrimitiveState{
	{D: 1, E: 1.5},
	{D: 1, Vx: 0.3, Vy: -0.2, Vz: 0.1, E: 0.8, Bx: 0.5, By: 0.4, Bz: -0.3},
	{D: 0.5, Vx: 0.6, Vy: 0.4, E: 0.3, Bx: 0.6, By: 0.2, Bz: 0.1},
	{D: 0.01, Vx: 0.1, E: 10, Bx: 0.3},
	{D: 1, E: 1, Bx: 0.5, By: 0.5, Bz: 0.5},
	{D: 1, Vx: 2, Vy: 0.5, E: 1, Bx: 0.1, By: 0.1},
	{D: 1, Vx: 0.5, E: 1.5},
}

func TestSRMHD(t *testing.T) {
	eos := newTestEOS(5. / 3.)
	{ // Fluid at rest without field
		u := SingleP2CIdealSRMHD(types.PrimitiveState{D: 1, E: 1.5}, eos.Gamma)
		assert.Equal(t, 1., u.D)
		assert.InDelta(t, 1.5, u.E, 1.e-14)
		w, uf, diag := SingleC2PIdealSRMHD(u, eos)
		assert.InDelta(t, 1., w.D, 1.e-10)
		assert.InDelta(t, 0., w.Vx, 1.e-10)
		assert.InDelta(t, 1.5, w.E, 1.e-10)
		assert.False(t, diag.FloorUsed())
		assert.Equal(t, u, uf)
	}
	{ // Round trip
		approx := cmpopts.EquateApprox(1.e-10, 1.e-10)
		for _, w := range srStates {
			u := SingleP2CIdealSRMHD(w, eos.Gamma)
			w2, _, diag := SingleC2PIdealSRMHD(u, eos)
			assert.False(t, diag.FloorUsed())
			assert.LessOrEqual(t, diag.Iterations, MaxIterations)
			assert.True(t, cmp.Equal(w, w2, approx), cmp.Diff(w, w2, approx))
		}
	}
	{ // Without a field the MHD inversion reduces to the hydro inversion
		approx := cmpopts.EquateApprox(1.e-10, 1.e-10)
		for _, w := range []types.PrimitiveState{
			{D: 1, Vx: 0.5, E: 1.5},
			{D: 1, Vx: 2, Vy: 1, Vz: -0.5, E: 0.2},
			{D: 0.1, Vx: 0.3, Vy: 0.3, Vz: 0.3, E: 3},
			{D: 1, Vx: 5, E: 1},
		} {
			u := SingleP2CIdealSRMHD(w, eos.Gamma)
			wm, _, _ := SingleC2PIdealSRMHD(u, eos)
			wh, _, _ := SingleC2PIdealSRHydro(u, eos)
			assert.True(t, cmp.Equal(wm, wh, approx), cmp.Diff(wm, wh, approx))
		}
	}
	{ // Floors
		u := types.ConservedState{D: 1.e-10, E: 1.e-12}
		w, uf, diag := SingleC2PIdealSRMHD(u, eos)
		assert.True(t, diag.DensityFloorUsed)
		assert.True(t, diag.EnergyFloorUsed)
		assert.Equal(t, eos.DFloor, uf.D)
		assert.Equal(t, eos.EFloor(), uf.E)
		assert.InDelta(t, eos.DFloor, w.D, 1.e-20)
		assert.InDelta(t, eos.EFloor(), w.E, 1.e-20)
		// The energy floor carries the magnetic energy
		u = types.ConservedState{D: 1, E: 1.e-12, Bx: 0.1}
		w, uf, diag = SingleC2PIdealSRMHD(u, eos)
		assert.False(t, diag.DensityFloorUsed)
		assert.True(t, diag.EnergyFloorUsed)
		assert.InDelta(t, eos.EFloor()+0.005, uf.E, 1.e-15)
		assert.Equal(t, 0.1, w.Bx)
		_, uf2, diag2 := SingleC2PIdealSRMHD(uf, eos)
		assert.Equal(t, uf, uf2)
		assert.False(t, diag2.DensityFloorUsed)
	}
}

func BenchmarkSingleC2PIdealSRMHD(b *testing.B) {
	var (
		eos = newTestEOS(5. / 3.)
		u   = SingleP2CIdealSRMHD(srStates[1], eos.Gamma)
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SingleC2PIdealSRMHD(u, eos)
	}
}
