package eos

import (
	"github.com/notargets/gomhd/types"
)

// ApplyFloors clamps the density to DFloor and the internal energy implied by
// the total energy to PFloor/(Gamma-1). When the energy floor fires the total
// energy is raised to efloor + kinetic + magnetic so that the corrected state
// stays self consistent. The caller's state is never modified.
func ApplyFloors(u types.ConservedState, eos *types.EOSData) (uf types.ConservedState, diag types.Diagnostics) {
	uf, _, _, diag = applyFloors(u, eos)
	return
}

func applyFloors(u types.ConservedState, eos *types.EOSData) (uf types.ConservedState, ek, em float64,
	diag types.Diagnostics) {
	var (
		efloor = eos.EFloor()
	)
	uf = u
	// density floor, without changing momentum or energy
	if uf.D < eos.DFloor {
		uf.D = eos.DFloor
		diag.DensityFloorUsed = true
	}
	ek = 0.5 * (SQR(uf.Mx) + SQR(uf.My) + SQR(uf.Mz)) / uf.D
	em = 0.5 * (SQR(uf.Bx) + SQR(uf.By) + SQR(uf.Bz))
	if uf.E-ek-em < efloor {
		uf.E = efloor + ek + em
		diag.EnergyFloorUsed = true
	}
	return
}

// applyRelativisticFloors floors the normal observer density and energy. The
// energy floor includes the magnetic energy b2/2, which is stricter than the
// Newtonian floor.
func applyRelativisticFloors(st eulerianState, eos *types.EOSData) (stf eulerianState, diag types.Diagnostics) {
	var (
		efloor = eos.EFloor() + 0.5*st.B2
	)
	stf = st
	if stf.D < eos.DFloor {
		stf.D = eos.DFloor
		diag.DensityFloorUsed = true
	}
	if stf.Tau < efloor {
		stf.Tau = efloor
		diag.EnergyFloorUsed = true
	}
	return
}

func SQR(x float64) float64 { return x * x }
