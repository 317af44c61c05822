package eos

import (
	"math"

	"github.com/notargets/gomhd/types"
)

// eulerianState is a conserved state measured by the normal observer, the
// frame in which the relativistic inversion works. In special relativity it is
// the lab frame. S and B are contravariant, S2 = S_i S^i, B2 = B_i B^i and
// SB = S_i B^i.
type eulerianState struct {
	D, Tau     float64
	S, B       [3]float64
	S2, B2, SB float64
}

// Recast holds the dimensionless, density normalized invariants the root
// solver works with
type Recast struct {
	Q    float64    // tau/D
	R    float64    // |S|/D
	B    [3]float64 // B/sqrt(D)
	B2   float64    // |B|^2/D
	RPar float64    // S.B/D^(3/2)
}

func newRecast(st eulerianState) (rc Recast) {
	var (
		isqrtd = 1. / math.Sqrt(st.D)
	)
	rc.Q = st.Tau / st.D
	rc.R = math.Sqrt(st.S2) / st.D
	for i := 0; i < 3; i++ {
		rc.B[i] = st.B[i] * isqrtd
	}
	rc.B2 = st.B2 / st.D
	rc.RPar = (st.SB / st.D) * isqrtd
	return
}

// RecastSR applies the relativistic floors to an SR conserved state and returns
// the floored state with its recast invariants
func RecastSR(u types.ConservedState, eos *types.EOSData) (uf types.ConservedState, rc Recast,
	diag types.Diagnostics) {
	var st eulerianState
	st, diag = applyRelativisticFloors(srEulerian(u), eos)
	uf = u
	uf.D, uf.E = st.D, st.Tau
	rc = newRecast(st)
	return
}

func srEulerian(u types.ConservedState) (st eulerianState) {
	st.D, st.Tau = u.D, u.E
	st.S = [3]float64{u.Mx, u.My, u.Mz}
	st.B = [3]float64{u.Bx, u.By, u.Bz}
	st.S2 = SQR(u.Mx) + SQR(u.My) + SQR(u.Mz)
	st.B2 = SQR(u.Bx) + SQR(u.By) + SQR(u.Bz)
	st.SB = u.Mx*u.Bx + u.My*u.By + u.Mz*u.Bz
	return
}
