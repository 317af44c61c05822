package hydro

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gomhd/types"
)

// NewTimeStep is the largest stable time step of the current primitives, the
// minimum over cells and the first ndim directions of dx/lambda. lambda is
// |v| plus the fast speed for the normal field component in Newtonian MHD,
// and the light speed for relativistic MHD.
func (p *Pack) NewTimeStep(ctx context.Context, dx [3]float64, ndim int) (dt float64, err error) {
	if ndim < 1 || ndim > 3 {
		panic(fmt.Sprintf("number of dimensions must be 1, 2 or 3, have %d", ndim))
	}
	p.checkLengths()
	var (
		dtMin = make([]float64, p.Partitions.ParallelDegree)
		fs    = FlowState{EOS: p.EOS, Relativity: p.Relativity}
	)
	err = p.forEachPartition(ctx, func(ctx context.Context, bn, kMin, kMax int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		dtMin[bn] = math.Inf(1)
		for k := kMin; k < kMax; k++ {
			if p.Relativity != types.Newtonian {
				for d := 0; d < ndim; d++ {
					dtMin[bn] = math.Min(dtMin[bn], dx[d])
				}
				continue
			}
			var (
				w   = p.Prim[k]
				v   = [3]float64{w.Vx, w.Vy, w.Vz}
				bn2 = [3]float64{w.Bx * w.Bx, w.By * w.By, w.Bz * w.Bz}
				bsq = bn2[0] + bn2[1] + bn2[2]
				cs2 = fs.soundSpeed2(w)
			)
			for d := 0; d < ndim; d++ {
				lambda := math.Abs(v[d]) + fastMagnetosonic(cs2, w.D, bsq, bn2[d])
				if lambda > 0 {
					dtMin[bn] = math.Min(dtMin[bn], dx[d]/lambda)
				}
			}
		}
		return nil
	})
	if err != nil {
		return
	}
	dt = floats.Min(dtMin)
	return
}
