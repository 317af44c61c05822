package eos

import (
	"math"

	"github.com/notargets/gomhd/types"
)

// hydroMaster is the master function with the magnetic terms removed
type hydroMaster struct {
	r, q, d, gamma, pfloor float64
}

func (f hydroMaster) Eval(mu float64) float64 {
	var (
		rbar = f.r * f.r
		z2   = mu * mu * rbar / math.Abs(1.-mu*mu*rbar)
		w    = math.Sqrt(1. + z2)
		wd   = f.d / w
		eps  = w*(f.q-mu*rbar) + z2/(w+1.)
	)
	eps = math.Max(f.pfloor/(wd*(f.gamma-1.)), eps)
	h := 1. + f.gamma*eps
	return mu - 1./(h/w+rbar*mu)
}

// SingleC2PIdealSRHydro converts one conserved state into primitives for
// special relativistic hydrodynamics. Without a magnetic field the upper
// bracket 1/sqrt(1+r^2) is known in closed form, so only one solve is needed.
// Any field in u is ignored and the primitive field is zero.
func SingleC2PIdealSRHydro(u types.ConservedState, eos *types.EOSData) (w types.PrimitiveState,
	uf types.ConservedState, diag types.Diagnostics) {
	var (
		gm1 = eos.Gamma - 1.
	)
	uf = u
	uf.Bx, uf.By, uf.Bz = 0, 0, 0
	if uf.D < eos.DFloor {
		uf.D = eos.DFloor
		diag.DensityFloorUsed = true
	}
	if uf.E < eos.PFloor/gm1 {
		uf.E = eos.PFloor / gm1
		diag.EnergyFloorUsed = true
	}
	var (
		q  = uf.E / uf.D
		r  = math.Sqrt(SQR(uf.Mx)+SQR(uf.My)+SQR(uf.Mz)) / uf.D
		zp = 1. / math.Sqrt(1.+r*r)
	)
	mu, iterations := FalsePosition(hydroMaster{r: r, q: q, d: uf.D, gamma: eos.Gamma, pfloor: eos.PFloor},
		0., zp, nil)
	diag.Iterations = iterations

	z2 := mu * mu * r * r / math.Abs(1.-mu*mu*r*r)
	lor := math.Sqrt(1. + z2)
	w.D = uf.D / lor
	eps := lor*(q-mu*r*r) + z2/(lor+1.)
	epsmin := eos.PFloor / (w.D * gm1)
	if eps <= epsmin {
		eps = epsmin
		diag.EnergyFloorUsed = true
	}
	h := 1. + eos.Gamma*eps
	conv := 1. / h
	w.Vx = conv * uf.Mx / uf.D
	w.Vy = conv * uf.My / uf.D
	w.Vz = conv * uf.Mz / uf.D
	w.E = w.D * eps
	return
}
