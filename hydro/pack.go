package hydro

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/gomhd/eos"
	"github.com/notargets/gomhd/types"
	"github.com/notargets/gomhd/utils"
)

var (
	ErrNaN = errors.New("hydro: NaN in cell state")
)

// Pack is a one dimensional run of cells and the variable transforms applied
// to all of them. The physics variant is fixed for the life of the Pack.
type Pack struct {
	EOS            *types.EOSData
	Relativity     types.Relativity
	ParallelDegree int // Number of go routines to use for parallel execution
	Partitions     *utils.PartitionMap
	Cons           []types.ConservedState
	Prim           []types.PrimitiveState
	Metric         []types.Metric // One per cell, general relativity only
	Logger         *zap.Logger
}

// Report is the domain wide result of a ConsToPrim sweep
type Report struct {
	types.Diagnostics
	FlooredCells int // Cells where either floor fired
	CappedCells  int // Cells where the root solver reached eos.MaxIterations
}

func (r Report) Combine(o Report) Report {
	r.Diagnostics = r.Diagnostics.Combine(o.Diagnostics)
	r.FlooredCells += o.FlooredCells
	r.CappedCells += o.CappedCells
	return r
}

func NewPack(eosData *types.EOSData, rel types.Relativity, numCells, ProcLimit int, logger *zap.Logger) (p *Pack) {
	if numCells < 1 {
		panic(fmt.Sprintf("number of cells must be positive, have %d", numCells))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p = &Pack{
		EOS:        eosData,
		Relativity: rel,
		Cons:       make([]types.ConservedState, numCells),
		Prim:       make([]types.PrimitiveState, numCells),
		Logger:     logger,
	}
	if rel == types.GeneralRelativistic {
		p.Metric = make([]types.Metric, numCells)
	}
	p.SetParallelDegree(ProcLimit, numCells)
	return
}

func (p *Pack) SetParallelDegree(ProcLimit, numCells int) {
	if ProcLimit != 0 {
		p.ParallelDegree = ProcLimit
	} else {
		p.ParallelDegree = runtime.NumCPU()
	}
	if p.ParallelDegree > numCells {
		p.ParallelDegree = 1
	}
	p.Partitions = utils.NewPartitionMap(p.ParallelDegree, numCells)
}

func (p *Pack) NumCells() int { return len(p.Cons) }

// forEachPartition runs fn once per partition, each in its own goroutine, and
// returns the first error
func (p *Pack) forEachPartition(ctx context.Context, fn func(ctx context.Context, bn, kMin, kMax int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for np := 0; np < p.Partitions.ParallelDegree; np++ {
		np := np // per-iteration copy; go.mod targets go1.21 loop semantics
		kMin, kMax := p.Partitions.GetBucketRange(np)
		g.Go(func() error {
			return fn(gctx, np, kMin, kMax)
		})
	}
	return g.Wait()
}

func (p *Pack) checkLengths() {
	if len(p.Prim) != len(p.Cons) {
		panic(fmt.Sprintf("primitive and conserved lengths differ: %d, %d", len(p.Prim), len(p.Cons)))
	}
	if p.Relativity == types.GeneralRelativistic && len(p.Metric) != len(p.Cons) {
		panic(fmt.Sprintf("general relativity needs one metric per cell, have %d for %d cells",
			len(p.Metric), len(p.Cons)))
	}
}

// ConsToPrim recovers the primitives of every cell. Floor corrections are
// written back into Cons.
func (p *Pack) ConsToPrim(ctx context.Context) (report Report, err error) {
	p.checkLengths()
	var (
		reports = make([]Report, p.Partitions.ParallelDegree)
	)
	err = p.forEachPartition(ctx, func(ctx context.Context, bn, kMin, kMax int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var r Report
		for k := kMin; k < kMax; k++ {
			var (
				w  types.PrimitiveState
				uf types.ConservedState
				d  types.Diagnostics
			)
			switch p.Relativity {
			case types.Newtonian:
				w, uf, d = eos.SingleC2PIdealMHD(p.Cons[k], p.EOS)
			case types.SpecialRelativistic:
				w, uf, d = eos.SingleC2PIdealSRMHD(p.Cons[k], p.EOS)
			case types.GeneralRelativistic:
				w, uf, d = eos.SingleC2PIdealGRMHD(&p.Metric[k], p.Cons[k], p.EOS)
			default:
				panic(fmt.Sprintf("unknown relativity %v", p.Relativity))
			}
			p.Prim[k], p.Cons[k] = w, uf
			r.Diagnostics = r.Diagnostics.Combine(d)
			if d.FloorUsed() {
				r.FlooredCells++
			}
			if d.Iterations >= eos.MaxIterations {
				r.CappedCells++
			}
		}
		reports[bn] = r
		return nil
	})
	if err != nil {
		return
	}
	for _, r := range reports {
		report = report.Combine(r)
	}
	return
}

// PrimToCons builds the conserved variables of every cell from Prim
func (p *Pack) PrimToCons(ctx context.Context) (err error) {
	p.checkLengths()
	return p.forEachPartition(ctx, func(ctx context.Context, bn, kMin, kMax int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for k := kMin; k < kMax; k++ {
			switch p.Relativity {
			case types.Newtonian:
				p.Cons[k] = eos.SingleP2CIdealMHD(p.Prim[k])
			case types.SpecialRelativistic:
				p.Cons[k] = eos.SingleP2CIdealSRMHD(p.Prim[k], p.EOS.Gamma)
			case types.GeneralRelativistic:
				p.Cons[k] = eos.SingleP2CIdealGRMHD(&p.Metric[k], p.Prim[k], p.EOS.Gamma)
			default:
				panic(fmt.Sprintf("unknown relativity %v", p.Relativity))
			}
		}
		return nil
	})
}

// Validate scans the conserved and primitive states for NaNs
func (p *Pack) Validate(ctx context.Context) error {
	p.checkLengths()
	return p.forEachPartition(ctx, func(ctx context.Context, bn, kMin, kMax int) error {
		for k := kMin; k < kMax; k++ {
			if utils.IsNan(p.Cons[k]) || utils.IsNan(p.Prim[k]) {
				return fmt.Errorf("%w: cell %d", ErrNaN, k)
			}
			if k%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// ReportDiagnostics logs what a ConsToPrim sweep had to correct
func (p *Pack) ReportDiagnostics(r Report) {
	if r.FlooredCells != 0 {
		p.Logger.Warn("floors applied",
			zap.Int("cells", r.FlooredCells),
			zap.Bool("density", r.DensityFloorUsed),
			zap.Bool("energy", r.EnergyFloorUsed))
	}
	if r.CappedCells != 0 {
		p.Logger.Warn("root solver reached the iteration cap",
			zap.Int("cells", r.CappedCells),
			zap.Int("max_iterations", eos.MaxIterations))
	}
	p.Logger.Debug("conserved to primitive",
		zap.Stringer("relativity", p.Relativity),
		zap.Int("cells", p.NumCells()),
		zap.Int("parallel_degree", p.Partitions.ParallelDegree),
		zap.Int("iterations", r.Iterations))
}
