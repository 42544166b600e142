package position

import "math"

const (
	rootMaxIterations = 64
	rootTolerance      = 1e-10
)

// FindRoot brackets a root of f in [lo, hi] using regula falsi (false
// position), per spec.md §6's "bracketed 1-D solver (e.g. a regula-falsi
// or Brent variant)". f(lo) and f(hi) must have opposite signs; no
// library in the retrieved pack offers a bracketed solver, so this is
// hand-written against the stdlib math package (justified in
// DESIGN.md).
func FindRoot(f func(float64) float64, lo, hi float64) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, ErrFailed
	}

	for i := 0; i < rootMaxIterations; i++ {
		mid := lo - flo*(hi-lo)/(fhi-flo)
		fmid := f(mid)

		if math.Abs(fmid) < rootTolerance || math.Abs(hi-lo) < rootTolerance {
			return mid, nil
		}

		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi, fhi = mid, fmid
		}
	}

	return 0, ErrFailed
}
