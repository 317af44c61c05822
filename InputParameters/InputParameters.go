package InputParameters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gomhd/types"
)

var (
	ErrUnknownEOS    = errors.New("unknown equation of state")
	ErrIsothermalMHD = errors.New("isothermal equation of state is not supported for MHD")
	ErrBadGamma      = errors.New("Gamma must be greater than 1")
	ErrBadFloor      = errors.New("floors must be positive")
	ErrBadGrid       = errors.New("grid needs at least one cell and XMax > XMin")
)

// Parameters obtained from the YAML input file
type InputParametersMHD struct {
	Title          string  `yaml:"Title"`
	EOS            string  `yaml:"EOS"` // adiabatic or isothermal
	Gamma          float64 `yaml:"Gamma"`
	DFloor         float64 `yaml:"DFloor"`
	PFloor         float64 `yaml:"PFloor"`
	SpecialRel     bool    `yaml:"SpecialRel"`
	GeneralRel     bool    `yaml:"GeneralRel"`
	Problem        string  `yaml:"Problem"`
	NumCells       int     `yaml:"NumCells"`
	XMin           float64 `yaml:"XMin"`
	XMax           float64 `yaml:"XMax"`
	ParallelDegree int     `yaml:"ParallelDegree"` // 0 uses every CPU
	DataFormat     string  `yaml:"DataFormat"`
}

// NewInputParametersMHD returns a deck holding the defaults used for any
// field the input file leaves out
func NewInputParametersMHD() *InputParametersMHD {
	return &InputParametersMHD{
		EOS:        "adiabatic",
		Gamma:      5. / 3.,
		DFloor:     1.e-10,
		PFloor:     1.e-12,
		Problem:    "briowu",
		NumCells:   400,
		XMin:       0,
		XMax:       1,
		DataFormat: "%13.5e",
	}
}

func (ip *InputParametersMHD) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersMHD) Validate() (err error) {
	if _, err = ip.Relativity(); err != nil {
		return
	}
	switch strings.ToLower(ip.EOS) {
	case "adiabatic":
	case "isothermal":
		return ErrIsothermalMHD
	default:
		return fmt.Errorf("%w: [%s]", ErrUnknownEOS, ip.EOS)
	}
	if !(ip.Gamma > 1.) {
		return fmt.Errorf("%w: have %g", ErrBadGamma, ip.Gamma)
	}
	if !(ip.DFloor > 0.) || !(ip.PFloor > 0.) {
		return fmt.Errorf("%w: DFloor = %g, PFloor = %g", ErrBadFloor, ip.DFloor, ip.PFloor)
	}
	if ip.NumCells < 1 || !(ip.XMax > ip.XMin) {
		return fmt.Errorf("%w: NumCells = %d, [%g, %g]", ErrBadGrid, ip.NumCells, ip.XMin, ip.XMax)
	}
	if ip.ParallelDegree < 0 {
		return fmt.Errorf("ParallelDegree must not be negative, have %d", ip.ParallelDegree)
	}
	return
}

func (ip *InputParametersMHD) Relativity() (types.Relativity, error) {
	return types.RelativityFromFlags(ip.SpecialRel, ip.GeneralRel)
}

func (ip *InputParametersMHD) EOSData() *types.EOSData {
	return &types.EOSData{
		Gamma:       ip.Gamma,
		DFloor:      ip.DFloor,
		PFloor:      ip.PFloor,
		IsAdiabatic: strings.EqualFold(ip.EOS, "adiabatic"),
	}
}

func (ip *InputParametersMHD) Print() {
	rel, _ := ip.Relativity()
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= EOS\n", ip.EOS)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("%8.2e\t\t= DFloor\n", ip.DFloor)
	fmt.Printf("%8.2e\t\t= PFloor\n", ip.PFloor)
	fmt.Printf("[%s]\t= Relativity\n", rel)
	fmt.Printf("[%s]\t\t= Problem\n", ip.Problem)
	fmt.Printf("[%d]\t\t\t= NumCells\n", ip.NumCells)
	fmt.Printf("[%8.5f, %8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Printf("[%d]\t\t\t= ParallelDegree\n", ip.ParallelDegree)
}
