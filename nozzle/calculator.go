package nozzle

// Result holds the isentropic exit state and conical geometry of a nozzle.
type Result struct {
	Inputs Inputs

	PressureRatio    float64 // Pe/P0, -
	TemperatureRatio float64 // Te/T0, -
	DensityRatio     float64 // rho_e/rho_0, -
	AreaRatio        float64 // Ae/At, -
	ExitDiameter     float64 // De, mm
	NozzleLength     float64 // L, mm
}

/*
等エントロピー流れのノズル計算を実行する。

	Args:
		in: 設計点

	Returns:
		計算結果。入力が範囲外の場合はゼロ値と ErrInvalidInput を包んだエラー。

	Notes:
		検査は計算の前に一度だけ行う。検査を通った入力に対しては失敗しない。
*/
func Calculate(in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	me, gamma := in.ExitMach, in.SpecificHeatRatio
	m2term := stagnationTerm(me, gamma)

	ae_at := areaRatio(me, m2term, gamma)
	de := exitDiameter(in.ThroatDiameter, ae_at)

	return Result{
		Inputs:           in,
		PressureRatio:    pressureRatio(m2term, gamma),
		TemperatureRatio: temperatureRatio(m2term),
		DensityRatio:     densityRatio(m2term, gamma),
		AreaRatio:        ae_at,
		ExitDiameter:     de,
		NozzleLength:     conicalLength(de, in.ThroatDiameter, in.SemiAngleDeg),
	}, nil
}
