package nozzle

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Inputs holds the design point of a convergent-divergent nozzle.
type Inputs struct {
	ExitMach          float64 // 出口マッハ数, -
	SpecificHeatRatio float64 // 比熱比, -
	ThroatDiameter    float64 // スロート直径, mm
	SemiAngleDeg      float64 // 末広部の半頂角, degree
}

/*
基準となる設計点を返す。

	Returns:
		Me = 2.8, gamma = 1.22, Dt = 20 mm, 半頂角 15 度
*/
func DefaultInputs() Inputs {
	return Inputs{
		ExitMach:          2.8,
		SpecificHeatRatio: 1.22,
		ThroatDiameter:    20,
		SemiAngleDeg:      DefaultSemiAngleDeg,
	}
}

/*
入力値の範囲を検査する。

	Returns:
		範囲外の値があれば ErrInvalidInput を包んだエラー

	Notes:
		Me <= 0 では m2term の累乗が、gamma <= 1 では指数 1/(gamma-1) が定義できない。
		半頂角 0 度では長さの式がゼロ除算となり、90 度では tan が定義できない。
		NaN は比較が常に偽となるため、否定形で判定して弾く。
*/
func (in Inputs) Validate() error {
	switch {
	case !(in.ExitMach > 0) || math.IsInf(in.ExitMach, 0):
		return invalid("exit Mach number", in.ExitMach, "must be > 0")
	case !(in.SpecificHeatRatio > 1) || math.IsInf(in.SpecificHeatRatio, 0):
		return invalid("specific heat ratio", in.SpecificHeatRatio, "must be > 1")
	case !(in.ThroatDiameter > 0) || math.IsInf(in.ThroatDiameter, 0):
		return invalid("throat diameter", in.ThroatDiameter, "must be > 0")
	case !(in.SemiAngleDeg > 0 && in.SemiAngleDeg < 90):
		return invalid("semi-angle", in.SemiAngleDeg, "must be in (0, 90) degrees")
	}
	return nil
}

func invalid(field string, v float64, rule string) error {
	return fmt.Errorf("%w: %s %v %s", ErrInvalidInput, field, v, rule)
}
