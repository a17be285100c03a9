package splitter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-splitter/internal/core"
)

// MaxStep is the largest time step, in seconds, a single tick may integrate.
const MaxStep = 0.033

// Ball is a moving disc. RegionID is a lookup key into the region store, not
// an owning reference; it is recomputed after every region mutation.
type Ball struct {
	X, Y     float64 // Center
	VX, VY   float64 // Velocity in surface units per second
	R        float64 // Radius, fixed at spawn
	RegionID int
}

// Speed returns the magnitude of the ball's velocity.
func (b Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// insetBounds returns the range the ball's center may occupy inside rect.
func (b Ball) insetBounds(rect core.Rect) (left, right, top, bottom float64) {
	return rect.X + b.R, rect.Right() - b.R, rect.Y + b.R, rect.Bottom() - b.R
}

// InBounds reports whether the ball's center lies within rect shrunk by its radius.
func (b Ball) InBounds(rect core.Rect) bool {
	left, right, top, bottom := b.insetBounds(rect)
	return b.X >= left && b.X <= right && b.Y >= top && b.Y <= bottom
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// SpawnBalls creates count balls inside region with uniformly random radius,
// position, heading and speed.
func SpawnBalls(rng *rand.Rand, region Region, count int, speedMin, speedMax, minR, maxR float64) []Ball {
	balls := make([]Ball, 0, count)
	for i := 0; i < count; i++ {
		r := uniform(rng, minR, maxR)
		angle := uniform(rng, 0, 2*math.Pi)
		speed := uniform(rng, speedMin, speedMax)
		balls = append(balls, Ball{
			X:        uniform(rng, region.X+r, region.Right()-r),
			Y:        uniform(rng, region.Y+r, region.Bottom()-r),
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			R:        r,
			RegionID: region.ID,
		})
	}
	return balls
}

// Advance integrates every ball by dt and reflects it off its region's edges.
// Balls whose region id is not in regions are left untouched. A positive
// rampRate scales velocities by (1 + rampRate*dt) before integration.
func Advance(balls []Ball, regions map[int]Region, dt, rampRate float64) {
	boost := 1.0
	if rampRate > 0 {
		boost = 1 + rampRate*dt
	}

	for i := range balls {
		b := &balls[i]
		region, ok := regions[b.RegionID]
		if !ok {
			continue
		}

		if boost != 1 {
			b.VX *= boost
			b.VY *= boost
		}

		b.X += b.VX * dt
		b.Y += b.VY * dt

		left, right, top, bottom := b.insetBounds(region.Rect)

		// Each axis reflects independently
		if b.X < left {
			b.X = left
			b.VX = -b.VX
		} else if b.X > right {
			b.X = right
			b.VX = -b.VX
		}

		if b.Y < top {
			b.Y = top
			b.VY = -b.VY
		} else if b.Y > bottom {
			b.Y = bottom
			b.VY = -b.VY
		}
	}
}

// ReassignAll recomputes each ball's region from its center. A ball on no
// region keeps its previous id.
func ReassignAll(balls []Ball, store *RegionStore) {
	for i := range balls {
		if r, ok := store.FindContaining(balls[i].X, balls[i].Y); ok {
			balls[i].RegionID = r.ID
		}
	}
}

// MaxRadiusIn returns the largest radius among balls in the region, never
// less than floor.
func MaxRadiusIn(balls []Ball, regionID int, floor float64) float64 {
	maxR := floor
	for _, b := range balls {
		if b.RegionID == regionID && b.R > maxR {
			maxR = b.R
		}
	}
	return maxR
}

// CountIn returns how many balls belong to the region.
func CountIn(balls []Ball, regionID int) int {
	n := 0
	for _, b := range balls {
		if b.RegionID == regionID {
			n++
		}
	}
	return n
}

// SpeedUp multiplies every ball's velocity by factor.
func SpeedUp(balls []Ball, factor float64) {
	for i := range balls {
		balls[i].VX *= factor
		balls[i].VY *= factor
	}
}

// RescaleBalls scales ball positions. Radii and velocities are unchanged.
func RescaleBalls(balls []Ball, sx, sy float64) {
	for i := range balls {
		balls[i].X *= sx
		balls[i].Y *= sy
	}
}

// clampInto pulls the ball's center back inside rect's inset bounds. A rect
// narrower than the ball centers it on that axis.
func (b *Ball) clampInto(rect core.Rect) {
	left, right, top, bottom := b.insetBounds(rect)
	if left > right {
		b.X = rect.X + rect.W*0.5
	} else {
		b.X = core.ClampF(b.X, left, right)
	}
	if top > bottom {
		b.Y = rect.Y + rect.H*0.5
	} else {
		b.Y = core.ClampF(b.Y, top, bottom)
	}
}
