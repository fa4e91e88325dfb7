package domain

// Vec3 はワールド座標上の位置を表します。
type Vec3 struct {
	X, Y, Z float64
}

// PlanarDistSq は水平面 (X/Z) 上の距離の二乗を返します。
// 索敵判定は高さを無視するため、平方根は取りません。
func (v Vec3) PlanarDistSq(o Vec3) float64 {
	dx := v.X - o.X
	dz := v.Z - o.Z
	return dx*dx + dz*dz
}

// OffsetY は高さ方向に dy ずらした位置を返します。
func (v Vec3) OffsetY(dy float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y + dy, Z: v.Z}
}
