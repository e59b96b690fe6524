package xy

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// BaseMinDistanceToPoint2D finds the minimum squared Euclidean distance from
// a target point to a set of points (SoA layout). Used as a fast prefilter
// for nearest-vertex queries during snapping.
func BaseMinDistanceToPoint2D[T hwy.Floats](
	targetX, targetY T,
	xs, ys []T,
) T {
	size := min(len(xs), len(ys))
	if size == 0 {
		return T(math.MaxFloat64)
	}

	vTx := hwy.Set(targetX)
	vTy := hwy.Set(targetY)

	vMinDist := hwy.Set(T(math.MaxFloat64))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])

			dx := hwy.Sub(vx, vTx)
			dy := hwy.Sub(vy, vTy)

			distSq := hwy.Add(hwy.Mul(dx, dx), hwy.Mul(dy, dy))

			vMinDist = hwy.Min(vMinDist, distSq)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])

			dx := hwy.Sub(vx, vTx)
			dy := hwy.Sub(vy, vTy)

			distSq := hwy.Add(hwy.Mul(dx, dx), hwy.Mul(dy, dy))

			// Mask the result before min so the zero-padding lanes do not
			// become the minimum.
			maxVal := hwy.Set(T(math.MaxFloat64))
			distSq = hwy.IfThenElse(mask, distSq, maxVal)

			vMinDist = hwy.Min(vMinDist, distSq)
		},
	)

	return hwy.ReduceMin(vMinDist)
}
