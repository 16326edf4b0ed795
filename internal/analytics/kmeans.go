package analytics

import (
	"math"
	"math/rand"
)

// kmeansSeed fixes cluster initialization so profiles are reproducible
// for a given input.
const kmeansSeed = 42

const kmeansMaxIterations = 100

// kmeansCluster partitions points into k clusters with Lloyd's algorithm
// and k-means++ seeding. The returned slice holds a cluster index per
// point. Output is deterministic: the RNG is seeded with a constant and
// all tie-breaks prefer the lowest index.
func kmeansCluster(points [][]float64, k int) []int {
	n := len(points)
	if n == 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	rng := rand.New(rand.NewSource(kmeansSeed))
	centers := plusPlusInit(points, k, rng)
	assignments := make([]int, n)

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, p := range points {
			best := nearestCenter(p, centers)
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}

		// Recompute centroids; an emptied cluster takes over the point
		// farthest from its current center.
		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, len(points[0]))
		}
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			for d, v := range p {
				sums[c][d] += v
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				far := farthestPoint(points, centers, assignments)
				assignments[far] = c
				centers[c] = append([]float64(nil), points[far]...)
				continue
			}
			for d := range sums[c] {
				centers[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	return assignments
}

// plusPlusInit picks initial centers weighted by squared distance to the
// nearest already-chosen center.
func plusPlusInit(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centers := make([][]float64, 0, k)
	first := rng.Intn(len(points))
	centers = append(centers, append([]float64(nil), points[first]...))

	for len(centers) < k {
		dists := make([]float64, len(points))
		var total float64
		for i, p := range points {
			d := math.Inf(1)
			for _, c := range centers {
				if sq := squaredDistance(p, c); sq < d {
					d = sq
				}
			}
			dists[i] = d
			total += d
		}

		var next int
		if total == 0 {
			// All points coincide with existing centers.
			next = rng.Intn(len(points))
		} else {
			target := rng.Float64() * total
			var cum float64
			for i, d := range dists {
				cum += d
				if cum >= target {
					next = i
					break
				}
			}
		}
		centers = append(centers, append([]float64(nil), points[next]...))
	}

	return centers
}

func nearestCenter(p []float64, centers [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, center := range centers {
		if d := squaredDistance(p, center); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func farthestPoint(points [][]float64, centers [][]float64, assignments []int) int {
	far := 0
	farDist := -1.0
	for i, p := range points {
		if d := squaredDistance(p, centers[assignments[i]]); d > farDist {
			farDist = d
			far = i
		}
	}
	return far
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
