package outputs

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/notargets/gomhd/hydro"
	"github.com/notargets/gomhd/problems"
)

var (
	primitiveLabels = []string{"dens", "velx", "vely", "velz", "eint", "bcc1", "bcc2", "bcc3"}
	FieldLabels     = map[hydro.FlowFunction]string{
		hydro.Density:          "dens",
		hydro.XVelocity:        "vx",
		hydro.YVelocity:        "vy",
		hydro.ZVelocity:        "vz",
		hydro.InternalEnergy:   "eint",
		hydro.Pressure:         "press",
		hydro.SoundSpeed:       "cs",
		hydro.FastSpeed:        "cf",
		hydro.LorentzFactor:    "lor",
		hydro.MagneticPressure: "pmag",
		hydro.PlasmaBeta:       "beta",
	}
)

// FormattedTable writes the primitives of a 1D pack as a text table, one row
// per cell. The stored primitives are written as they are, so relativistic
// velocity columns hold W v. Extra derived columns are appended in the order
// given.
type FormattedTable struct {
	DataFormat string
	Fields     []hydro.FlowFunction
}

func NewFormattedTable(dataFormat string, fields ...hydro.FlowFunction) *FormattedTable {
	if len(dataFormat) == 0 {
		dataFormat = "%13.5e"
	}
	return &FormattedTable{DataFormat: dataFormat, Fields: fields}
}

func (ft *FormattedTable) Write(w io.Writer, p *hydro.Pack, xmin, xmax, time float64, cycle int) (err error) {
	var (
		bw = bufio.NewWriter(w)
		n  = p.NumCells()
		df = ft.DataFormat
	)
	fmt.Fprintf(bw, "# gomhd data at time=%e  cycle=%d \n", time, cycle)
	fmt.Fprintf(bw, "# gid   i       x1v     ")
	for _, label := range primitiveLabels {
		fmt.Fprintf(bw, "    %s     ", label)
	}
	for _, pf := range ft.Fields {
		fmt.Fprintf(bw, "    %s     ", FieldLabels[pf])
	}
	fmt.Fprintf(bw, "\n")
	for k := 0; k < n; k++ {
		wp := p.Prim[k]
		fmt.Fprintf(bw, "%05d", 0)
		fmt.Fprintf(bw, " %04d", k)
		fmt.Fprintf(bw, df, problems.CellCenterX(k, n, xmin, xmax))
		for _, f := range []float64{wp.D, wp.Vx, wp.Vy, wp.Vz, wp.E, wp.Bx, wp.By, wp.Bz} {
			fmt.Fprintf(bw, df, f)
		}
		for _, pf := range ft.Fields {
			fmt.Fprintf(bw, df, p.FlowFunction(k, pf))
		}
		fmt.Fprintf(bw, "\n")
	}
	return bw.Flush()
}

func (ft *FormattedTable) WriteFile(fileName string, p *hydro.Pack, xmin, xmax, time float64, cycle int) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(fileName); err != nil {
		return fmt.Errorf("unable to create output table: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err = ft.Write(file, p, xmin, xmax, time, cycle); err != nil {
		return fmt.Errorf("unable to write output table %s: %w", fileName, err)
	}
	return
}
