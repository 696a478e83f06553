package lattice

import (
	"fmt"
	"math"
)

// FluxRegions sweeps the lattice and groups its plaquettes with Regions.
func (l *Lattice) FluxRegions(threshold float64) ([][]int, error) {
	pqs, err := l.Plaquettes()
	if err != nil {
		return nil, err
	}

	return l.Regions(pqs, threshold)
}

// Regions finds contiguous regions of plaquettes whose |Density| is at
// least threshold, according to l.Conn connectivity. pqs must be a sweep of
// l as returned by Plaquettes. Each region is a slice of row-major cell
// indices in BFS order; regions appear in scan order of their first cell.
// Errors: ErrSweepSize.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H).
func (l *Lattice) Regions(pqs []Plaquette, threshold float64) ([][]int, error) {
	if len(pqs) != l.Width*l.Height {
		return nil, fmt.Errorf("Regions: %d plaquettes for %dx%d: %w", len(pqs), l.Width, l.Height, ErrSweepSize)
	}
	threshold = math.Abs(threshold)
	active := make([]bool, len(pqs))
	for i, pq := range pqs {
		active[i] = math.Abs(pq.Density) >= threshold
	}

	seen := make([]bool, len(pqs))
	var regions [][]int
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			i0 := l.index(x, y)
			if !active[i0] || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := l.Coordinate(queue[qi])
				for _, d := range l.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !l.InBounds(vx, vy) {
						continue
					}
					vi := l.index(vx, vy)
					if active[vi] && !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, queue)
		}
	}

	return regions, nil
}
