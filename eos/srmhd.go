package eos

import (
	"math"

	"github.com/notargets/gomhd/types"
)

// SingleC2PIdealSRMHD converts one conserved state into primitives for special
// relativistic MHD. u.E holds the total energy minus D.
func SingleC2PIdealSRMHD(u types.ConservedState, eos *types.EOSData) (w types.PrimitiveState,
	uf types.ConservedState, diag types.Diagnostics) {
	var st eulerianState
	w, st, diag = kastaunInvert(srEulerian(u), eos)
	uf = u
	uf.D, uf.E = st.D, st.Tau
	w.Bx, w.By, w.Bz = u.Bx, u.By, u.Bz
	return
}

// SingleP2CIdealSRMHD converts primitives into conserved variables for special
// relativistic MHD, storing E - D in the energy slot to keep precision in the
// non relativistic limit
func SingleP2CIdealSRMHD(w types.PrimitiveState, gam float64) (u types.ConservedState) {
	// Lorentz factor
	u0 := math.Sqrt(1. + SQR(w.Vx) + SQR(w.Vy) + SQR(w.Vz))

	// 4-magnetic field
	b0 := w.Bx*w.Vx + w.By*w.Vy + w.Bz*w.Vz
	b1 := (w.Bx + b0*w.Vx) / u0
	b2 := (w.By + b0*w.Vy) / u0
	b3 := (w.Bz + b0*w.Vz) / u0
	bSq := -SQR(b0) + SQR(b1) + SQR(b2) + SQR(b3)

	wtotU02 := (w.D + gam*w.E + bSq) * u0 * u0
	u.D = w.D * u0
	u.E = wtotU02 - b0*b0 - ((gam-1.)*w.E + 0.5*bSq) - u.D
	u.Mx = wtotU02*w.Vx/u0 - b0*b1
	u.My = wtotU02*w.Vy/u0 - b0*b2
	u.Mz = wtotU02*w.Vz/u0 - b0*b3
	u.Bx, u.By, u.Bz = w.Bx, w.By, w.Bz
	return
}
