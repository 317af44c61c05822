package eos

import "math"

const (
	MaxIterations = 25
	Tolerance     = 1.e-12
)

// StageFunction evaluates a scalar function of mu whose root is sought
type StageFunction interface {
	Eval(mu float64) float64
}

// StageFunc adapts an ordinary function to a StageFunction
type StageFunc func(mu float64) float64

func (f StageFunc) Eval(mu float64) float64 { return f(mu) }

// RootFindState is the bracket carried between false position iterations.
// The endpoints are exchanged by the Illinois update, so Zm is not always the
// smaller one; the interval [min(Zm,Zp), max(Zm,Zp)] never widens.
type RootFindState struct {
	Zm, Zp     float64
	Fm, Fp     float64
	Iterations int
}

func (rs RootFindState) Lower() float64 { return math.Min(rs.Zm, rs.Zp) }
func (rs RootFindState) Upper() float64 { return math.Max(rs.Zm, rs.Zp) }

// FalsePosition finds the root of f in [zm, zp] with the Illinois variant of
// the false position method. f must change sign over the bracket. When the
// bracket is already converged no iterations are taken and the midpoint is
// returned. Reaching MaxIterations is not a failure, the last estimate is
// returned. trace, when non nil, observes the bracket before every iteration.
func FalsePosition[F StageFunction](f F, zm, zp float64, trace func(RootFindState)) (z float64, iterations int) {
	var (
		fm      = f.Eval(zm)
		fp      = f.Eval(zp)
		maxIter = MaxIterations
	)
	if math.Abs(zm-zp) < Tolerance || (math.Abs(fm)+math.Abs(fp)) < 2.*Tolerance {
		maxIter = 0
	}
	z = 0.5 * (zm + zp)
	for iterations = 0; iterations < maxIter; iterations++ {
		if trace != nil {
			trace(RootFindState{Zm: zm, Zp: zp, Fm: fm, Fp: fp, Iterations: iterations})
		}
		z = (zm*fp - zp*fm) / (fp - fm) // linear interpolation to f(z)=0
		fz := f.Eval(z)
		// both z and f are of order unity
		if math.Abs(zm-zp) < Tolerance || math.Abs(fz) < Tolerance {
			break
		}
		if fz*fp < 0. { // root bracketed by [z,zp]
			zm, fm = zp, fp
			zp, fp = z, fz
		} else { // root bracketed by [zm,z]
			fm = 0.5 * fm // Illinois
			zp, fp = z, fz
		}
	}
	return
}
