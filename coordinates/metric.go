package coordinates

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gomhd/types"
)

var (
	ErrSingularMetric  = errors.New("coordinates: singular metric")
	ErrNotLorentzian   = errors.New("coordinates: metric has no timelike normal, g^00 must be negative")
	ErrInsideExcision  = errors.New("coordinates: point lies inside the excision radius")
	minkowskiSignature = [4]float64{-1, 1, 1, 1}
)

// NewMetric builds the raised metric by inverting glower and checks that the
// result admits a lapse
func NewMetric(glower [4][4]float64) (g types.Metric, err error) {
	var (
		gl = mat.NewDense(4, 4, nil)
		gu mat.Dense
	)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			gl.Set(i, j, glower[i][j])
		}
	}
	if err = gu.Inverse(gl); err != nil {
		return g, fmt.Errorf("%w: %v", ErrSingularMetric, err)
	}
	g.GLower = glower
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			g.GUpper[i][j] = gu.At(i, j)
		}
	}
	if !(g.GUpper[0][0] < 0) {
		return g, ErrNotLorentzian
	}
	return
}

func Minkowski() (g types.Metric) {
	for i := 0; i < 4; i++ {
		g.GLower[i][i] = minkowskiSignature[i]
		g.GUpper[i][i] = minkowskiSignature[i]
	}
	return
}

// PureLapse is flat space with the clock rate scaled by alpha and no shift
func PureLapse(alpha float64) (g types.Metric) {
	g = Minkowski()
	g.GLower[0][0] = -alpha * alpha
	g.GUpper[0][0] = -1. / (alpha * alpha)
	return
}

// KerrSchild returns the Schwarzschild metric of a black hole of the given mass
// in Cartesian Kerr-Schild coordinates, g = eta + (2M/r) l l with
// l = (1, x/r, y/r, z/r). The raised metric comes from NewMetric.
func KerrSchild(mass, x, y, z float64) (g types.Metric, err error) {
	var (
		r      = math.Sqrt(x*x + y*y + z*z)
		glower [4][4]float64
	)
	if r <= 2.*mass {
		return g, fmt.Errorf("%w: r = %g, horizon at %g", ErrInsideExcision, r, 2.*mass)
	}
	var (
		f = 2. * mass / r
		l = [4]float64{1., x / r, y / r, z / r}
	)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			glower[i][j] = f * l[i] * l[j]
		}
		glower[i][i] += minkowskiSignature[i]
	}
	return NewMetric(glower)
}

func Lapse(g *types.Metric) float64 {
	return math.Sqrt(-1. / g.GUpper[0][0])
}

// Shift returns beta^i = alpha^2 g^0i
func Shift(g *types.Metric) (beta [3]float64) {
	var (
		a2 = -1. / g.GUpper[0][0]
	)
	for i := 0; i < 3; i++ {
		beta[i] = a2 * g.GUpper[0][i+1]
	}
	return
}
