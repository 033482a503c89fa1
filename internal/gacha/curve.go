package gacha

import (
	"fmt"

	"github.com/osse101/WishBot_Go/internal/domain"
)

// WeightPoint is one control point of a pity curve.
type WeightPoint struct {
	Pity   int `yaml:"pity" json:"pity"`
	Weight int `yaml:"weight" json:"weight"`
}

// Curve is an ordered list of control points; thresholds strictly increase and the last
// weight is the plateau reached at hard pity.
type Curve []WeightPoint

// Lerp returns the weight for pity by piecewise-linear interpolation over points.
// Pity at or below the first threshold returns the first weight, at or above the last
// threshold the last weight. Between two thresholds the result is
// y0 + floor((pity-x0)*(y1-y0)/(x1-x0)).
func Lerp(pity int, points Curve) int {
	if len(points) == 0 {
		return 0
	}
	if pity <= points[0].Pity {
		return points[0].Weight
	}
	last := points[len(points)-1]
	if pity >= last.Pity {
		return last.Weight
	}

	for i := 0; i < len(points)-1; i++ {
		next := points[i+1]
		if pity == next.Pity {
			return next.Weight
		}
		if pity < next.Pity {
			prev := points[i]
			position := pity - prev.Pity
			fullDist := next.Pity - prev.Pity
			if fullDist == 0 {
				return position
			}
			return prev.Weight + floorDiv(position*(next.Weight-prev.Weight), fullDist)
		}
	}
	return 0
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Validate reports the first structural problem in the curve.
func (c Curve) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: curve has no control points", domain.ErrIllegalArgument)
	}
	for i, p := range c {
		if p.Weight < 0 {
			return fmt.Errorf("%w: negative weight %d at point %d", domain.ErrIllegalArgument, p.Weight, i)
		}
		if i == 0 {
			continue
		}
		prev := c[i-1]
		if p.Pity <= prev.Pity {
			return fmt.Errorf("%w: pity thresholds must strictly increase (point %d)", domain.ErrIllegalArgument, i)
		}
		if p.Weight < prev.Weight {
			return fmt.Errorf("%w: weights must not decrease (point %d)", domain.ErrIllegalArgument, i)
		}
	}
	return nil
}

// Clone returns a copy of the curve backed by a new array.
func (c Curve) Clone() Curve {
	if c == nil {
		return nil
	}
	return append(Curve(nil), c...)
}
