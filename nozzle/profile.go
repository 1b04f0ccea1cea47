package nozzle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
円錐末広部の直径分布を求める。

	Args:
		n: 軸方向の分割点数 (スロートと出口を含む), n >= 2

	Returns:
		以下のタプル
			(1) スロートからの軸方向距離, mm, [n]
			(2) 各点の直径, mm, [n]

	Notes:
		直径は d(x) = Dt + 2 x tan(半頂角) で線形に広がり、x = L で De となる。
*/
func (r Result) DivergentProfile(n int) ([]float64, []float64, error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: profile needs at least 2 stations, got %d", ErrInvalidInput, n)
	}

	x_ns := floats.Span(make([]float64, n), 0, r.NozzleLength)

	slope := 2 * math.Tan(radians(r.Inputs.SemiAngleDeg))
	d_ns := make([]float64, n)
	for i, x := range x_ns {
		d_ns[i] = r.Inputs.ThroatDiameter + slope*x
	}
	// 丸め誤差で出口直径からずれないよう端点を固定する
	d_ns[n-1] = r.ExitDiameter

	return x_ns, d_ns, nil
}
