package types

// ConservedState holds the evolved variables of a single cell. The magnetic
// field is cell centered. In special relativity E holds the total energy minus
// D, in general relativity it holds T^t_t + D.
type ConservedState struct {
	D          float64
	Mx, My, Mz float64
	E          float64
	Bx, By, Bz float64
}

// PrimitiveState holds the recovered variables of a single cell. For the
// relativistic transforms V is the spatial part of the 4-velocity (W v^i,
// measured by the normal observer in GR). E is the internal energy density.
type PrimitiveState struct {
	D          float64
	Vx, Vy, Vz float64
	E          float64
	Bx, By, Bz float64
}

// EOSData parametrizes the ideal gas. It is shared read-only by every cell.
type EOSData struct {
	Gamma       float64
	DFloor      float64
	PFloor      float64
	IsAdiabatic bool
}

// EFloor is the internal energy density implied by the pressure floor
func (eos *EOSData) EFloor() float64 {
	return eos.PFloor / (eos.Gamma - 1.)
}

// Metric is the lowered and raised spacetime metric at a cell center
type Metric struct {
	GLower, GUpper [4][4]float64
}

// Diagnostics is the per cell side channel of every transform. Combine is
// associative and commutative and the zero value is its identity, so any
// domain reduction order gives the same answer.
type Diagnostics struct {
	DensityFloorUsed bool
	EnergyFloorUsed  bool
	Iterations       int // max root solver iterations over both stages, relativistic only
}

func (d Diagnostics) Combine(o Diagnostics) Diagnostics {
	d.DensityFloorUsed = d.DensityFloorUsed || o.DensityFloorUsed
	d.EnergyFloorUsed = d.EnergyFloorUsed || o.EnergyFloorUsed
	if o.Iterations > d.Iterations {
		d.Iterations = o.Iterations
	}
	return d
}

func (d Diagnostics) FloorUsed() bool {
	return d.DensityFloorUsed || d.EnergyFloorUsed
}
