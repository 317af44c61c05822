package hydro

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomhd/coordinates"
	"github.com/notargets/gomhd/types"
)

func TestFlowFunctions(t *testing.T) {
	var (
		eosData = newTestEOS(5. / 3.)
	)
	{ // Newtonian
		fs := FlowState{EOS: eosData, Relativity: types.Newtonian}
		w := types.PrimitiveState{D: 1, Vx: 0.5, Vy: -1, E: 1.5}
		assert.Equal(t, 1., fs.GetFlowFunction(w, nil, Density))
		assert.Equal(t, 0.5, fs.GetFlowFunction(w, nil, XVelocity))
		assert.Equal(t, -1., fs.GetFlowFunction(w, nil, YVelocity))
		assert.InDelta(t, 1., fs.GetFlowFunction(w, nil, Pressure), 1.e-15)
		assert.InDelta(t, math.Sqrt(5./3.), fs.GetFlowFunction(w, nil, SoundSpeed), 1.e-15)
		// without a field the fast speed is the sound speed
		assert.InDelta(t, math.Sqrt(5./3.), fs.GetFlowFunction(w, nil, FastSpeed), 1.e-15)
		assert.Equal(t, 1., fs.GetFlowFunction(w, nil, LorentzFactor))
		assert.True(t, math.IsInf(fs.GetFlowFunction(w, nil, PlasmaBeta), 1))
		w.Bx, w.By = 1, 1
		assert.Equal(t, 1., fs.GetFlowFunction(w, nil, MagneticPressure))
		assert.InDelta(t, 1., fs.GetFlowFunction(w, nil, PlasmaBeta), 1.e-15)
		// with the field along x the fast speed along x is max(cs, ca)
		w.By = 0
		assert.InDelta(t, math.Sqrt(5./3.), fs.GetFlowFunction(w, nil, FastSpeed), 1.e-14)
	}
	{ // Special relativity, u = W v
		fs := FlowState{EOS: eosData, Relativity: types.SpecialRelativistic}
		w := types.PrimitiveState{D: 1, Vx: 0.75, E: 1.5, Bx: 1}
		assert.InDelta(t, 1.25, fs.GetFlowFunction(w, nil, LorentzFactor), 1.e-15)
		assert.InDelta(t, 0.6, fs.GetFlowFunction(w, nil, XVelocity), 1.e-15)
		// the comoving field b^2 = (B^2 + (B.u)^2)/W^2
		assert.InDelta(t, 0.5, fs.GetFlowFunction(w, nil, MagneticPressure), 1.e-14)
		cs2 := (5. / 3.) * 1. / (1. + 2.5)
		assert.InDelta(t, math.Sqrt(cs2), fs.GetFlowFunction(w, nil, SoundSpeed), 1.e-15)
		ca2 := 1. / (1. + 2.5 + 1.)
		assert.InDelta(t, math.Sqrt(cs2+ca2-cs2*ca2), fs.GetFlowFunction(w, nil, FastSpeed), 1.e-14)
		assert.Less(t, fs.GetFlowFunction(w, nil, FastSpeed), 1.)
	}
	{ // General relativity in flat space matches special relativity
		fsr := FlowState{EOS: eosData, Relativity: types.SpecialRelativistic}
		fgr := FlowState{EOS: eosData, Relativity: types.GeneralRelativistic}
		g := coordinates.Minkowski()
		w := types.PrimitiveState{D: 0.5, Vx: 0.3, Vy: 0.6, Vz: -0.2, E: 0.7, Bx: 0.2, By: -0.4, Bz: 0.1}
		for pf := Density; pf <= PlasmaBeta; pf++ {
			assert.InDelta(t, fsr.GetFlowFunction(w, nil, pf), fgr.GetFlowFunction(w, &g, pf), 1.e-14, pf.String())
			assert.InDelta(t, fsr.GetFlowFunction(w, nil, pf), fgr.GetFlowFunction(w, nil, pf), 1.e-14, pf.String())
		}
	}
	{ // A lapse leaves the normal observer Lorentz factor alone
		fgr := FlowState{EOS: eosData, Relativity: types.GeneralRelativistic}
		g := coordinates.PureLapse(0.5)
		w := types.PrimitiveState{D: 1, Vx: 0.75, E: 1.5}
		assert.InDelta(t, 1.25, fgr.GetFlowFunction(w, &g, LorentzFactor), 1.e-15)
	}
	{
		assert.Equal(t, "Plasma Beta", PlasmaBeta.String())
		assert.Equal(t, "Density", Density.String())
	}
}

func TestNewTimeStep(t *testing.T) {
	ctx := context.Background()
	{ // Newtonian gas at rest, one cell moving
		p := NewPack(newTestEOS(5./3.), types.Newtonian, 20, 3, nil)
		for k := range p.Prim {
			p.Prim[k] = types.PrimitiveState{D: 1, E: 1.5}
		}
		p.Prim[7].Vx = 1
		dt, err := p.NewTimeStep(ctx, [3]float64{0.1, 0.1, 0.1}, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0.1/(1.+math.Sqrt(5./3.)), dt, 1.e-15)
	}
	{ // The field stiffens the transverse direction
		p := NewPack(newTestEOS(5./3.), types.Newtonian, 20, 3, nil)
		for k := range p.Prim {
			p.Prim[k] = types.PrimitiveState{D: 1, E: 1.5, Bx: 1}
		}
		dt, err := p.NewTimeStep(ctx, [3]float64{0.1, 0.1, 0.1}, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0.1/math.Sqrt(5./3.), dt, 1.e-14)
		dt, err = p.NewTimeStep(ctx, [3]float64{0.1, 0.1, 0.1}, 2)
		require.NoError(t, err)
		assert.InDelta(t, 0.1/math.Sqrt(8./3.), dt, 1.e-14)
	}
	{ // Relativistic signals are bounded by the light speed
		for _, rel := range []types.Relativity{types.SpecialRelativistic, types.GeneralRelativistic} {
			p := NewPack(newTestEOS(5./3.), rel, 20, 3, nil)
			dt, err := p.NewTimeStep(ctx, [3]float64{0.3, 0.2, 0.05}, 2)
			require.NoError(t, err)
			assert.Equal(t, 0.2, dt)
		}
	}
	{
		p := NewPack(newTestEOS(5./3.), types.Newtonian, 20, 3, nil)
		assert.Panics(t, func() { _, _ = p.NewTimeStep(ctx, [3]float64{1, 1, 1}, 4) })
	}
}
