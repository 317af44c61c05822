package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomhd/types"
)

func TestInputParameters(t *testing.T) {
	{
		fileInput := []byte(`
Title: "Balsara 1"
EOS: adiabatic
Gamma: 1.6666666666666667
DFloor: 1.0e-10
PFloor: 1.0e-12
SpecialRel: true
Problem: balsara1 
NumCells: 64
XMin: -0.5
XMax: 0.5
ParallelDegree: 2
`)
		ip := NewInputParametersMHD()
		require.NoError(t, ip.Parse(fileInput))
		require.NoError(t, ip.Validate())
		assert.Equal(t, "Balsara 1", ip.Title)
		assert.Equal(t, 64, ip.NumCells)
		assert.Equal(t, -0.5, ip.XMin)
		assert.Equal(t, 2, ip.ParallelDegree)
		// Defaults survive for fields left out
		assert.Equal(t, "%13.5e", ip.DataFormat)
		rel, err := ip.Relativity()
		require.NoError(t, err)
		assert.Equal(t, types.SpecialRelativistic, rel)
		eos := ip.EOSData()
		assert.True(t, eos.IsAdiabatic)
		assert.Equal(t, 1.e-12, eos.PFloor)
		assert.InDelta(t, 5./3., eos.Gamma, 1.e-15)
		ip.Print()
	}
	{ // Defaults are valid
		assert.NoError(t, NewInputParametersMHD().Validate())
	}
	{
		check := func(mod func(ip *InputParametersMHD), target error) {
			ip := NewInputParametersMHD()
			mod(ip)
			err := ip.Validate()
			assert.Error(t, err)
			if target != nil {
				assert.ErrorIs(t, err, target)
			}
		}
		check(func(ip *InputParametersMHD) { ip.SpecialRel, ip.GeneralRel = true, true }, nil)
		check(func(ip *InputParametersMHD) { ip.EOS = "isothermal" }, ErrIsothermalMHD)
		check(func(ip *InputParametersMHD) { ip.EOS = "polytrope" }, ErrUnknownEOS)
		check(func(ip *InputParametersMHD) { ip.Gamma = 1 }, ErrBadGamma)
		check(func(ip *InputParametersMHD) { ip.PFloor = 0 }, ErrBadFloor)
		check(func(ip *InputParametersMHD) { ip.DFloor = -1 }, ErrBadFloor)
		check(func(ip *InputParametersMHD) { ip.NumCells = 0 }, ErrBadGrid)
		check(func(ip *InputParametersMHD) { ip.XMax = ip.XMin }, ErrBadGrid)
		check(func(ip *InputParametersMHD) { ip.ParallelDegree = -2 }, nil)
	}
	{ // Malformed YAML
		ip := NewInputParametersMHD()
		assert.Error(t, ip.Parse([]byte("NumCells: [1, 2")))
	}
}
