package hydro

import (
	"math"

	"github.com/notargets/gomhd/coordinates"
	"github.com/notargets/gomhd/types"
)

type FlowFunction uint8

func (pf FlowFunction) String() string {
	strings := []string{
		"Density",
		"XVelocity",
		"YVelocity",
		"ZVelocity",
		"Internal Energy",
		"Pressure",
		"Sound Speed",
		"Fast Speed",
		"Lorentz Factor",
		"Magnetic Pressure",
		"Plasma Beta",
	}
	return strings[int(pf)]
}

const (
	Density          FlowFunction = iota
	XVelocity                     // 1
	YVelocity                     // 2
	ZVelocity                     // 3
	InternalEnergy                // 4
	Pressure                      // 5
	SoundSpeed                    // 6
	FastSpeed                     // 7
	LorentzFactor                 // 8
	MagneticPressure              // 9
	PlasmaBeta                    // 10
)

// FlowState evaluates derived quantities from primitive states. Velocities
// of relativistic states are 3-velocities seen by the normal observer, and
// speeds are measured in the fluid rest frame.
type FlowState struct {
	EOS        *types.EOSData
	Relativity types.Relativity
}

var (
	minkowski = coordinates.Minkowski()
)

// GetFlowFunction evaluates pf for one cell. g is only used in general
// relativity, where nil means flat space.
func (fs FlowState) GetFlowFunction(w types.PrimitiveState, g *types.Metric, pf FlowFunction) (f float64) {
	var (
		Gamma    = fs.EOS.Gamma
		GM1      = Gamma - 1.
		p        = GM1 * w.E
		lor      = 1.
		bsq      float64
		relative = fs.Relativity != types.Newtonian
	)
	if relative {
		if g == nil || fs.Relativity == types.SpecialRelativistic {
			g = &minkowski
		}
		lor, bsq = comovingField(g, w)
	} else {
		bsq = w.Bx*w.Bx + w.By*w.By + w.Bz*w.Bz
	}
	switch pf {
	case Density:
		f = w.D
	case XVelocity:
		f = w.Vx / lor
	case YVelocity:
		f = w.Vy / lor
	case ZVelocity:
		f = w.Vz / lor
	case InternalEnergy:
		f = w.E
	case Pressure:
		f = p
	case SoundSpeed:
		f = math.Sqrt(fs.soundSpeed2(w))
	case FastSpeed:
		cs2 := fs.soundSpeed2(w)
		if relative {
			ca2 := bsq / (w.D + Gamma*w.E + bsq)
			f = math.Sqrt(cs2 + ca2 - cs2*ca2)
		} else {
			f = fastMagnetosonic(cs2, w.D, bsq, w.Bx*w.Bx)
		}
	case LorentzFactor:
		f = lor
	case MagneticPressure:
		f = 0.5 * bsq
	case PlasmaBeta:
		if bsq == 0 {
			f = math.Inf(1)
		} else {
			f = p / (0.5 * bsq)
		}
	}
	return
}

func (fs FlowState) soundSpeed2(w types.PrimitiveState) float64 {
	var (
		Gamma = fs.EOS.Gamma
		p     = (Gamma - 1.) * w.E
	)
	if fs.Relativity == types.Newtonian {
		return math.Abs(Gamma * p / w.D)
	}
	return math.Abs(Gamma * p / (w.D + Gamma*w.E)) // rho h = rho + e + p
}

// fastMagnetosonic is the fast speed along a direction with normal field
// component squared bn2
func fastMagnetosonic(cs2, rho, bsq, bn2 float64) float64 {
	var (
		ca2 = bsq / rho
		sum = cs2 + ca2
	)
	return math.Sqrt(0.5 * (sum + math.Sqrt(math.Max(sum*sum-4.*cs2*bn2/rho, 0.))))
}

// comovingField returns the Lorentz factor and b^mu b_mu of a relativistic
// primitive state, with the 4-vectors built as in SingleP2CIdealGRMHD
func comovingField(g *types.Metric, w types.PrimitiveState) (lor, bsq float64) {
	var (
		gl    = &g.GLower
		gu    = &g.GUpper
		u     = [3]float64{w.Vx, w.Vy, w.Vz}
		b     = [3]float64{w.Bx, w.By, w.Bz}
		q     float64
		alpha = coordinates.Lapse(g)
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			q += gl[i+1][j+1] * u[i] * u[j]
		}
	}
	lor = math.Sqrt(1. + q)
	uu := [4]float64{lor / alpha}
	for i := 0; i < 3; i++ {
		uu[i+1] = u[i] - alpha*lor*gu[0][i+1]
	}
	var ul, bu, bl [4]float64
	for m := 0; m < 4; m++ {
		for n := 0; n < 4; n++ {
			ul[m] += gl[m][n] * uu[n]
		}
	}
	bu[0] = ul[1]*b[0] + ul[2]*b[1] + ul[3]*b[2]
	for i := 0; i < 3; i++ {
		bu[i+1] = (b[i] + bu[0]*uu[i+1]) / uu[0]
	}
	for m := 0; m < 4; m++ {
		for n := 0; n < 4; n++ {
			bl[m] += gl[m][n] * bu[n]
		}
	}
	for m := 0; m < 4; m++ {
		bsq += bu[m] * bl[m]
	}
	return
}

// FlowFunction evaluates pf at cell k of the pack
func (p *Pack) FlowFunction(k int, pf FlowFunction) float64 {
	var (
		g  *types.Metric
		fs = FlowState{EOS: p.EOS, Relativity: p.Relativity}
	)
	if p.Relativity == types.GeneralRelativistic {
		g = &p.Metric[k]
	}
	return fs.GetFlowFunction(p.Prim[k], g, pf)
}
