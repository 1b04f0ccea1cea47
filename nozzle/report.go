package nozzle

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

/*
計算結果をコンソール形式で書き出す。

	Args:
		w: 出力先
		r: 計算結果

	Notes:
		全行を組み立ててから一度に書き込むため、途中までの出力は残らない。
		Me と Dt は入力値をそのまま (往復可能な最短表記で) 出力する。
*/
func WriteReport(w io.Writer, r Result) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "===== Isentropic Nozzle Calculations =====")
	fmt.Fprintf(&buf, "Exit Mach Number (Me): %s\n", asGiven(r.Inputs.ExitMach))
	fmt.Fprintf(&buf, "Pressure Ratio (Pe/P0): %.4f\n", r.PressureRatio)
	fmt.Fprintf(&buf, "Temperature Ratio (Te/T0): %.4f\n", r.TemperatureRatio)
	fmt.Fprintf(&buf, "Density Ratio (rho_e/rho_0): %.4f\n", r.DensityRatio)
	fmt.Fprintf(&buf, "Area Ratio (Ae/At): %.2f\n", r.AreaRatio)
	fmt.Fprintf(&buf, "Throat Diameter (Dt): %s mm\n", asGiven(r.Inputs.ThroatDiameter))
	fmt.Fprintf(&buf, "Exit Diameter (De): %.2f mm\n", r.ExitDiameter)
	fmt.Fprintf(&buf, "Nozzle Length (L): %.2f mm\n", r.NozzleLength)

	_, err := w.Write(buf.Bytes())
	return err
}

func asGiven(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
