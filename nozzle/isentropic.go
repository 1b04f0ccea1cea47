package nozzle

import "math"

/*
全温度比の逆数 1 + (gamma-1)/2 * M^2 を計算する。

	Args:
		me: マッハ数, -
		gamma: 比熱比, -

	Returns:
		T0/T, -
*/
func stagnationTerm(me, gamma float64) float64 {
	return 1 + ((gamma-1)/2)*me*me
}

/*
静圧と全圧の比 Pe/P0 を計算する。

	Args:
		m2term: 1 + (gamma-1)/2 * M^2
		gamma: 比熱比, -

	Returns:
		Pe/P0, -
*/
func pressureRatio(m2term, gamma float64) float64 {
	return math.Pow(m2term, -gamma/(gamma-1))
}

// 静温と全温の比 Te/T0
func temperatureRatio(m2term float64) float64 {
	return 1 / m2term
}

// 密度比 rho_e/rho_0
func densityRatio(m2term, gamma float64) float64 {
	return math.Pow(m2term, -1/(gamma-1))
}

/*
面積比 Ae/At を計算する。

	Args:
		me: 出口マッハ数, -
		m2term: 1 + (gamma-1)/2 * Me^2
		gamma: 比熱比, -

	Returns:
		Ae/At, -

	Notes:
		等エントロピー流れの面積-マッハ数関係。Me = 1 で 1 となる。
*/
func areaRatio(me, m2term, gamma float64) float64 {
	return (1 / me) * math.Pow((2/(gamma+1))*m2term, (gamma+1)/(2*(gamma-1)))
}
