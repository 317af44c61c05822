package utils

import (
	"fmt"
	"math"
	"runtime"

	"github.com/notargets/gomhd/types"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

func IsNanPanic(A any) {
	if IsNan(A) {
		panic("NAN found")
	}
}

// IsNan reports whether A holds a NaN in any of its components
func IsNan(A any) bool {
	switch v := A.(type) {
	case float64:
		return math.IsNaN(v)
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	case types.ConservedState:
		return IsNan([]float64{v.D, v.Mx, v.My, v.Mz, v.E, v.Bx, v.By, v.Bz})
	case types.PrimitiveState:
		return IsNan([]float64{v.D, v.Vx, v.Vy, v.Vz, v.E, v.Bx, v.By, v.Bz})
	case []types.ConservedState:
		for _, u := range v {
			if IsNan(u) {
				return true
			}
		}
	case []types.PrimitiveState:
		for _, w := range v {
			if IsNan(w) {
				return true
			}
		}
	}
	return false
}
