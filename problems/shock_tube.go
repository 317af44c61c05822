package problems

import (
	"fmt"
	"strings"

	"github.com/notargets/gomhd/coordinates"
	"github.com/notargets/gomhd/hydro"
	"github.com/notargets/gomhd/types"
)

type ProblemType uint8

const (
	BrioWu ProblemType = iota
	Balsara1
)

var (
	ProblemNameMap = map[string]ProblemType{
		"briowu":   BrioWu,
		"brio-wu":  BrioWu,
		"balsara1": Balsara1,
		"balsara":  Balsara1,
	}
	ProblemPrintNames = []string{"Brio-Wu", "Balsara 1"}
)

func (pt ProblemType) String() string {
	if int(pt) >= len(ProblemPrintNames) {
		return fmt.Sprintf("ProblemType(%d)", uint8(pt))
	}
	return ProblemPrintNames[pt]
}

func NewProblemType(label string) (pt ProblemType, err error) {
	var ok bool
	if pt, ok = ProblemNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown problem [%s], must be one of briowu, balsara1", label)
	}
	return
}

// ShockTube is a Riemann problem, two uniform states separated at X0. The
// states hold pressure in place of internal energy until they are placed on
// a grid with a known Gamma.
type ShockTube struct {
	Type        ProblemType
	Gamma       float64 // Gamma the problem is usually run with
	Left, Right types.PrimitiveState
	X0          float64 // Diaphragm position as a fraction of the domain
}

func NewShockTube(pt ProblemType) (st *ShockTube) {
	switch pt {
	case BrioWu:
		st = &ShockTube{
			Type:  BrioWu,
			Gamma: 2.,
			Left:  types.PrimitiveState{D: 1, E: 1, Bx: 0.75, By: 1},
			Right: types.PrimitiveState{D: 0.125, E: 0.1, Bx: 0.75, By: -1},
			X0:    0.5,
		}
	case Balsara1:
		st = &ShockTube{
			Type:  Balsara1,
			Gamma: 5. / 3.,
			Left:  types.PrimitiveState{D: 1, E: 1, Bx: 0.5, By: 1},
			Right: types.PrimitiveState{D: 0.125, E: 0.1, Bx: 0.5, By: -1},
			X0:    0.5,
		}
	default:
		panic(fmt.Sprintf("unknown problem type %d", pt))
	}
	return
}

// CellCenterX is the center of cell k of a uniform grid of n cells
func CellCenterX(k, n int, xmin, xmax float64) float64 {
	return xmin + (float64(k)+0.5)*(xmax-xmin)/float64(n)
}

// State is the primitive state at x with the pressure converted to internal
// energy density for the given Gamma
func (st *ShockTube) State(x, xmin, xmax, gamma float64) (w types.PrimitiveState) {
	if x < xmin+st.X0*(xmax-xmin) {
		w = st.Left
	} else {
		w = st.Right
	}
	w.E = w.E / (gamma - 1.)
	return
}

// Initialize places the problem on the cells of p and fills the metric with
// flat space when the pack is general relativistic. Conserved variables are
// left for the caller to build.
func (st *ShockTube) Initialize(p *hydro.Pack, xmin, xmax float64) {
	var (
		n = p.NumCells()
	)
	for k := 0; k < n; k++ {
		p.Prim[k] = st.State(CellCenterX(k, n, xmin, xmax), xmin, xmax, p.EOS.Gamma)
	}
	if p.Relativity == types.GeneralRelativistic {
		for k := range p.Metric {
			p.Metric[k] = coordinates.Minkowski()
		}
	}
}
