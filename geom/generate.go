package geom

import "math"

// Generation layout constants: points live on a gridSize×gridSize grid
// snapped inside a disc, so instances look like plausible "city maps"
// rather than uniform noise.
const (
	// layoutCenter is the x and y coordinate of the disc center in the
	// normalized [0,1] square.
	layoutCenter = 0.5

	// layoutMaxRadius bounds the disc so every point keeps a margin from
	// the unit-square border.
	layoutMaxRadius = 0.45
)

// LCG is a minimal linear congruential generator.
//
// The constants (1103515245, 12345, mod 2³¹) are fixed so that a given
// seed reproduces the exact same instance across platforms and
// releases; math/rand gives no such cross-version guarantee for its
// stream.
type LCG struct {
	seed uint64
}

// NewLCG returns a generator with the given seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{seed: seed}
}

// Next returns the next pseudo-random float64 in [0, 1).
//
// Complexity: O(1).
func (l *LCG) Next() float64 {
	l.seed = (l.seed*1103515245 + 12345) % (1 << 31)

	return float64(l.seed) / float64(uint64(1)<<31)
}

// GenerateNormalizedPoints produces up to numPoints distinct points in
// the normalized [0,1] square, snapped to cell centers of a
// gridSize×gridSize grid and restricted to a disc around the center.
//
// Each point carries:
//   - ID: dense index 0..count-1 in emission order,
//   - Angle: signed-then-normalized angle from the disc center in
//     [0, 2π), consumed by the angular heuristics.
//
// Determinism: identical (numPoints, gridSize, seed) triples yield
// identical slices. When the disc holds fewer than numPoints grid
// cells, all available cells are returned.
//
// Complexity: O(gridSize²) time and space.
func GenerateNormalizedPoints(numPoints, gridSize int, seed uint64) []Point {
	if numPoints <= 0 || gridSize <= 0 {
		return nil
	}

	rng := NewLCG(seed)
	gridStep := 1.0 / float64(gridSize)

	// Stage 1: enumerate every grid cell whose center falls inside the
	// disc. Row-major order keeps the candidate list deterministic.
	type candidate struct {
		x, y, angle float64
	}
	candidates := make([]candidate, 0, gridSize*gridSize)

	var (
		gx, gy         int
		x, y, dx, dy   float64
		distFromCenter float64
		angle          float64
	)
	for gx = 0; gx < gridSize; gx++ {
		for gy = 0; gy < gridSize; gy++ {
			x = (float64(gx) + 0.5) * gridStep
			y = (float64(gy) + 0.5) * gridStep
			dx = x - layoutCenter
			dy = y - layoutCenter
			distFromCenter = math.Hypot(dx, dy)
			if distFromCenter > layoutMaxRadius {
				continue
			}
			angle = math.Atan2(dy, dx)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			candidates = append(candidates, candidate{x: x, y: y, angle: angle})
		}
	}

	// Stage 2: Fisher–Yates shuffle driven by the seeded LCG.
	var i, j int
	for i = len(candidates) - 1; i > 0; i-- {
		j = int(rng.Next() * float64(i+1))
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	// Stage 3: take the prefix and assign dense IDs.
	count := numPoints
	if count > len(candidates) {
		count = len(candidates)
	}
	points := make([]Point, count)
	for i = 0; i < count; i++ {
		points[i] = Point{
			ID:    i,
			X:     candidates[i].x,
			Y:     candidates[i].y,
			Angle: candidates[i].angle,
		}
	}

	return points
}
