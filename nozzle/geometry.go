package nozzle

import "math"

/*
面積比から出口直径を求める。

	Args:
		dt: スロート直径, mm
		ae_at: 面積比, -

	Returns:
		出口直径, mm
*/
func exitDiameter(dt, ae_at float64) float64 {
	return dt * math.Sqrt(ae_at)
}

/*
円錐ノズル末広部の長さを求める。

	Args:
		de: 出口直径, mm
		dt: スロート直径, mm
		semi_angle_deg: 半頂角, degree

	Returns:
		ノズル長さ, mm
*/
func conicalLength(de, dt, semi_angle_deg float64) float64 {
	return (de - dt) / (2 * math.Tan(radians(semi_angle_deg)))
}

func radians(deg float64) float64 {
	return deg * toRad
}
