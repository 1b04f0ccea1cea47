package nozzle

import "math"

// 円錐ノズルの標準半頂角, degree
const DefaultSemiAngleDeg = 15.0

// 度からラジアンへの換算係数
const toRad = math.Pi / 180
