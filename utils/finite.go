package utils

import (
	"math"

	"skirmish/bot/domain"
)

// FiniteVec は座標の全成分が有限値かどうかを返します。
// ネットワーク越しに受け取った座標をそのまま信用しないための検査です。
func FiniteVec(v domain.Vec3) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
