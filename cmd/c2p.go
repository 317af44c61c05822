/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gomhd/InputParameters"
	"github.com/notargets/gomhd/hydro"
	"github.com/notargets/gomhd/outputs"
	"github.com/notargets/gomhd/problems"
	"github.com/notargets/gomhd/types"
	"github.com/notargets/gomhd/utils"
)

const exampleFile = `
########################################
Title: "Brio-Wu"
EOS: adiabatic
Gamma: 2.0
DFloor: 1.0e-10
PFloor: 1.0e-12
SpecialRel: false
GeneralRel: false
Problem: briowu # Can be "balsara1"
NumCells: 400
XMin: 0.0
XMax: 1.0
ParallelDegree: 0 # 0 uses every CPU
########################################
`

// C2PCmd represents the c2p command
var C2PCmd = &cobra.Command{
	Use:   "c2p",
	Short: "Recover primitive variables for a shock tube problem",
	Long: `
Places a shock tube problem on a uniform grid, builds its conserved variables,
recovers the primitives from them and writes a formatted table of the result.

gomhd c2p -I deck.yaml [-o out.tab] [--profile cpu]`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip      *InputParameters.InputParametersMHD
			ICFile  = viper.GetString("c2p.inputConditionsFile")
			outFile = viper.GetString("c2p.outputFile")
		)
		if ip, err = processInput(ICFile); err != nil {
			return
		}
		switch prof := viper.GetString("c2p.profile"); prof {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
		default:
			return fmt.Errorf("unknown profile type [%s], must be cpu or mem", prof)
		}
		if viper.GetBool("verbose") {
			ip.Print()
		}
		return RunC2P(context.Background(), ip, outFile, cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(C2PCmd)
	C2PCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Problem\n\t- Gamma\n\t- SpecialRel, GeneralRel")
	C2PCmd.Flags().StringP("outputFile", "o", "", "formatted table output file, standard output when empty")
	C2PCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
	for _, name := range []string{"inputConditionsFile", "outputFile", "profile"} {
		_ = viper.BindPFlag("c2p."+name, C2PCmd.Flags().Lookup(name))
	}
}

func processInput(ICFile string) (ip *InputParameters.InputParametersMHD, err error) {
	var (
		data []byte
	)
	if len(ICFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		return nil, fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
	}
	if data, err = os.ReadFile(ICFile); err != nil {
		return nil, fmt.Errorf("unable to read input parameters: %w", err)
	}
	ip = InputParameters.NewInputParametersMHD()
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", ICFile, err)
	}
	if err = ip.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input parameters in %s: %w", ICFile, err)
	}
	return
}

// RunC2P sets up the problem in the deck, recovers its primitives from the
// conserved variables and writes the table to outFile, or to w when outFile
// is empty
func RunC2P(ctx context.Context, ip *InputParameters.InputParametersMHD, outFile string, w io.Writer,
	log *zap.Logger) (err error) {
	var (
		rel     types.Relativity
		pt      problems.ProblemType
		eosData = ip.EOSData()
	)
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("run_id", uuid.New().String()))
	if rel, err = ip.Relativity(); err != nil {
		return
	}
	if pt, err = problems.NewProblemType(ip.Problem); err != nil {
		return
	}
	st := problems.NewShockTube(pt)
	if st.Gamma != ip.Gamma {
		log.Info("Gamma differs from the one the problem is usually run with",
			zap.Stringer("problem", pt), zap.Float64("gamma", ip.Gamma), zap.Float64("usual", st.Gamma))
	}

	p := hydro.NewPack(eosData, rel, ip.NumCells, ip.ParallelDegree, log)
	st.Initialize(p, ip.XMin, ip.XMax)
	initial := append([]types.PrimitiveState(nil), p.Prim...)
	if err = p.PrimToCons(ctx); err != nil {
		return
	}
	report, err := p.ConsToPrim(ctx)
	if err != nil {
		return
	}
	p.ReportDiagnostics(report)
	if err = p.Validate(ctx); err != nil {
		return
	}

	var (
		dx     = (ip.XMax - ip.XMin) / float64(ip.NumCells)
		errMax = make([]float64, len(initial))
	)
	for k, w0 := range initial {
		errMax[k] = maxDifference(w0, p.Prim[k])
	}
	dt, err := p.NewTimeStep(ctx, [3]float64{dx, dx, dx}, 1)
	if err != nil {
		return
	}
	log.Info("conserved to primitive complete",
		zap.Stringer("problem", pt),
		zap.Stringer("relativity", rel),
		zap.Int("cells", ip.NumCells),
		zap.Int("parallel_degree", p.ParallelDegree),
		zap.Int("max_iterations", report.Iterations),
		zap.Float64("round_trip_error", floats.Max(errMax)),
		zap.Float64("dt", dt))
	log.Debug("memory", zap.String("usage", utils.GetMemUsage()))

	fields := []hydro.FlowFunction{hydro.Pressure, hydro.FastSpeed, hydro.PlasmaBeta}
	if rel != types.Newtonian {
		fields = append(fields, hydro.LorentzFactor)
	}
	ft := outputs.NewFormattedTable(ip.DataFormat, fields...)
	if len(outFile) == 0 {
		return ft.Write(w, p, ip.XMin, ip.XMax, 0, 0)
	}
	return ft.WriteFile(outFile, p, ip.XMin, ip.XMax, 0, 0)
}

func maxDifference(a, b types.PrimitiveState) (d float64) {
	for _, pair := range [][2]float64{
		{a.D, b.D}, {a.Vx, b.Vx}, {a.Vy, b.Vy}, {a.Vz, b.Vz},
		{a.E, b.E}, {a.Bx, b.Bx}, {a.By, b.By}, {a.Bz, b.Bz},
	} {
		d = math.Max(d, math.Abs(pair[0]-pair[1]))
	}
	return
}
