package eos

import (
	"math"

	"github.com/notargets/gomhd/types"
)

// grEulerian projects a coordinate frame GR conserved state onto the normal
// observer. With alpha = sqrt(-1/g^00):
//
//	D   = alpha u.D
//	S_i = alpha u.M_i
//	E   = -(u.E - u.D) + alpha^2 g^0i u.M_i
//	B^i = alpha u.B^i
//
// and spatial indices are raised with gamma^ij = g^ij - g^0i g^0j / g^00.
func grEulerian(g *types.Metric, u types.ConservedState) (st eulerianState, alpha float64) {
	var (
		gu    = &g.GUpper
		gl    = &g.GLower
		m     = [3]float64{u.Mx, u.My, u.Mz}
		sCov  [3]float64
		gamUp [3][3]float64
	)
	alpha = math.Sqrt(-1. / gu[0][0])
	st.D = alpha * u.D
	st.Tau = -(u.E - u.D) + alpha*alpha*(gu[0][1]*m[0]+gu[0][2]*m[1]+gu[0][3]*m[2]) - st.D
	for i := 0; i < 3; i++ {
		sCov[i] = alpha * m[i]
	}
	st.B = [3]float64{alpha * u.Bx, alpha * u.By, alpha * u.Bz}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			gamUp[i][j] = gu[i+1][j+1] - gu[0][i+1]*gu[0][j+1]/gu[0][0]
		}
	}
	for i := 0; i < 3; i++ {
		st.S[i] = gamUp[i][0]*sCov[0] + gamUp[i][1]*sCov[1] + gamUp[i][2]*sCov[2]
		st.S2 += sCov[i] * st.S[i]
		st.SB += sCov[i] * st.B[i]
		for j := 0; j < 3; j++ {
			st.B2 += gl[i+1][j+1] * st.B[i] * st.B[j]
		}
	}
	return
}

// SingleC2PIdealGRMHD converts one conserved state into primitives for general
// relativistic MHD. u.E holds T^t_t + D and the momenta are T^t_i. The
// returned velocity is W v^i of the normal observer, the form consumed by
// SingleP2CIdealGRMHD.
//
// Floors are applied to the normal observer density and energy, the same
// floors used in special relativity; when one fires the correction is mapped
// back onto the coordinate conserved state returned as uf.
func SingleC2PIdealGRMHD(g *types.Metric, u types.ConservedState, eos *types.EOSData) (w types.PrimitiveState,
	uf types.ConservedState, diag types.Diagnostics) {
	var (
		st, stf eulerianState
		alpha   float64
	)
	st, alpha = grEulerian(g, u)
	w, stf, diag = kastaunInvert(st, eos)
	uf = u
	if diag.DensityFloorUsed || stf.Tau != st.Tau {
		// u.E = alpha^2 g^0i u.M_i - E + u.D, where only E and u.D move
		uf.D = stf.D / alpha
		uf.E = u.E - ((stf.Tau + stf.D) - (st.Tau + st.D)) + (uf.D - u.D)
	}
	w.Bx, w.By, w.Bz = u.Bx, u.By, u.Bz
	return
}

// SingleP2CIdealGRMHD converts primitives into conserved variables for general
// relativistic MHD, contracting against the metric at the cell
func SingleP2CIdealGRMHD(g *types.Metric, w types.PrimitiveState, gam float64) (u types.ConservedState) {
	var (
		gl = &g.GLower
		gu = &g.GUpper
	)
	// 4-velocity, exploiting symmetry of the metric
	q := gl[1][1]*w.Vx*w.Vx + 2.*gl[1][2]*w.Vx*w.Vy + 2.*gl[1][3]*w.Vx*w.Vz +
		gl[2][2]*w.Vy*w.Vy + 2.*gl[2][3]*w.Vy*w.Vz +
		gl[3][3]*w.Vz*w.Vz
	alpha := math.Sqrt(-1. / gu[0][0])
	lor := math.Sqrt(1. + q)
	uu := [4]float64{
		lor / alpha,
		w.Vx - alpha*lor*gu[0][1],
		w.Vy - alpha*lor*gu[0][2],
		w.Vz - alpha*lor*gu[0][3],
	}
	ul := lower(gl, uu)

	// 4-magnetic field
	var bu [4]float64
	bu[0] = ul[1]*w.Bx + ul[2]*w.By + ul[3]*w.Bz
	bu[1] = (w.Bx + bu[0]*uu[1]) / uu[0]
	bu[2] = (w.By + bu[0]*uu[2]) / uu[0]
	bu[3] = (w.Bz + bu[0]*uu[3]) / uu[0]
	bl := lower(gl, bu)
	bSq := bu[0]*bl[0] + bu[1]*bl[1] + bu[2]*bl[2] + bu[3]*bl[3]

	wtot := w.D + gam*w.E + bSq
	ptot := (gam-1.)*w.E + 0.5*bSq
	u.D = w.D * uu[0]
	u.E = wtot*uu[0]*ul[0] - bu[0]*bl[0] + ptot + u.D // T^t_t + D
	u.Mx = wtot*uu[0]*ul[1] - bu[0]*bl[1]
	u.My = wtot*uu[0]*ul[2] - bu[0]*bl[2]
	u.Mz = wtot*uu[0]*ul[3] - bu[0]*bl[3]
	u.Bx, u.By, u.Bz = w.Bx, w.By, w.Bz
	return
}

func lower(gl *[4][4]float64, v [4]float64) (vl [4]float64) {
	for mu := 0; mu < 4; mu++ {
		vl[mu] = gl[mu][0]*v[0] + gl[mu][1]*v[1] + gl[mu][2]*v[2] + gl[mu][3]*v[3]
	}
	return
}
