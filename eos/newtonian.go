package eos

import (
	"github.com/notargets/gomhd/types"
)

// SingleC2PIdealMHD converts one conserved state into primitives for
// non-relativistic MHD. The returned conserved state carries the floor
// corrections; re-deriving kinetic + magnetic + internal energy from it gives
// back its total energy.
func SingleC2PIdealMHD(u types.ConservedState, eos *types.EOSData) (w types.PrimitiveState,
	uf types.ConservedState, diag types.Diagnostics) {
	var (
		ek, em float64
	)
	uf, ek, em, diag = applyFloors(u, eos)
	w.D = uf.D
	di := 1. / uf.D
	w.Vx = di * uf.Mx
	w.Vy = di * uf.My
	w.Vz = di * uf.Mz
	if diag.EnergyFloorUsed {
		w.E = eos.EFloor()
	} else {
		w.E = uf.E - ek - em
	}
	w.Bx, w.By, w.Bz = uf.Bx, uf.By, uf.Bz
	return
}

// SingleP2CIdealMHD is the exact algebraic inverse of SingleC2PIdealMHD
func SingleP2CIdealMHD(w types.PrimitiveState) (u types.ConservedState) {
	u.D = w.D
	u.Mx = w.D * w.Vx
	u.My = w.D * w.Vy
	u.Mz = w.D * w.Vz
	u.E = w.E + 0.5*(w.D*(SQR(w.Vx)+SQR(w.Vy)+SQR(w.Vz))+
		(SQR(w.Bx)+SQR(w.By)+SQR(w.Bz)))
	u.Bx, u.By, u.Bz = w.Bx, w.By, w.Bz
	return
}
