package eos

import (
	"math"

	"github.com/notargets/gomhd/types"
)

// upperBracket is fa(mu), eq. 49 of Kastaun et al. Its root is the largest mu
// for which the Lorentz factor stays real with specific enthalpy >= 1, and is
// the upper bracket for master.
type upperBracket struct {
	b2, rpar, r float64
}

func (f upperBracket) Eval(mu float64) float64 {
	var (
		x    = 1. / (1. + mu*f.b2)                      // (26)
		rbar = x*x*f.r*f.r + mu*x*(1.+x)*f.rpar*f.rpar // (38)
	)
	return mu*math.Sqrt(1.+rbar) - 1.
}

// master is f(mu), eq. 44 of Kastaun et al., whose root is the physical state
type master struct {
	rc     Recast
	d      float64
	gamma  float64
	pfloor float64
}

func (f master) Eval(mu float64) float64 {
	var (
		rbar, qbar, z2, w = f.rc.closure(mu)
		wd                = f.d / w // (34)
		eps               = w*(qbar-mu*rbar) + z2/(w+1.)
	)
	eps = math.Max(f.pfloor/(wd*(f.gamma-1.)), eps)
	h := 1. + f.gamma*eps        // (43)
	return mu - 1./(h/w+rbar*mu) // (45)
}

// closure evaluates the normalized invariants implied by a trial mu
func (rc Recast) closure(mu float64) (rbar, qbar, z2, lor float64) {
	var (
		x = 1. / (1. + mu*rc.B2) // (26)
	)
	rbar = x*x*rc.R*rc.R + mu*x*(1.+x)*rc.RPar*rc.RPar                 // (38)
	qbar = rc.Q - 0.5*rc.B2 - 0.5*(mu*mu*(rc.B2*rbar-rc.RPar*rc.RPar)) // (31)
	z2 = mu * mu * rbar / math.Abs(1.-mu*mu*rbar)                       // (32)
	lor = math.Sqrt(1. + z2)
	return
}

// solveMu brackets mu with fa, then finds the root of the master function
// inside that bracket
func solveMu(rc Recast, d float64, eos *types.EOSData, trace func(RootFindState)) (mu float64, iterations int) {
	var (
		it1, it2 int
		zp       float64
	)
	// mu = 1 corresponds to h = 1, the lowest specific enthalpy any EOS admits
	zp, it1 = FalsePosition(upperBracket{b2: rc.B2, rpar: rc.RPar, r: rc.R}, 0., 1., trace)
	mu, it2 = FalsePosition(master{rc: rc, d: d, gamma: eos.Gamma, pfloor: eos.PFloor}, 0., zp, trace)
	iterations = max(it1, it2)
	return
}

// kastaunInvert floors, recasts and solves a normal observer state, then builds
// the primitives. The magnetic field of the result is left for the caller,
// which knows the frame the field was given in.
func kastaunInvert(st eulerianState, eos *types.EOSData) (w types.PrimitiveState, stf eulerianState,
	diag types.Diagnostics) {
	stf, diag = applyRelativisticFloors(st, eos)
	rc := newRecast(stf)
	mu, iterations := solveMu(rc, stf.D, eos, nil)
	diag.Iterations = iterations

	rbar, qbar, z2, lor := rc.closure(mu)
	w.D = stf.D / lor // (34)
	eps := lor*(qbar-mu*rbar) + z2/(lor+1.)
	epsmin := eos.PFloor / (w.D * (eos.Gamma - 1.))
	if eps <= epsmin {
		eps = epsmin
		diag.EnergyFloorUsed = true
	}
	h := 1. + eos.Gamma*eps // (43)

	conv := lor / (h*lor + rc.B2) // (C26)
	hw := h * lor
	w.Vx = conv * (stf.S[0]/stf.D + rc.B[0]*rc.RPar/hw)
	w.Vy = conv * (stf.S[1]/stf.D + rc.B[1]*rc.RPar/hw)
	w.Vz = conv * (stf.S[2]/stf.D + rc.B[2]*rc.RPar/hw)
	w.E = w.D * eps
	return
}
