package waves

import (
	"runtime"
	"sync"
)

// Heightmap is the field evaluated on the vertex lattice of a square plane
// mesh centered on the plane origin. Heights are row-major, rows along z.
type Heightmap struct {
	Size     float64
	Segments int
	Time     float64
	Heights  []float64
}

// NewHeightmap evaluates p at every vertex of a size x size plane split into
// segments x segments quads, matching the renderer's plane geometry.
func NewHeightmap(p Parameters, size float64, segments int, t float64) *Heightmap {
	if segments < 1 {
		segments = 1
	}
	n := segments + 1
	h := &Heightmap{
		Size:     size,
		Segments: segments,
		Time:     t,
		Heights:  make([]float64, n*n),
	}

	parallelFor(n, 8, func(start, end int) {
		for row := start; row < end; row++ {
			z := h.Coord(row)
			for col := 0; col < n; col++ {
				h.Heights[row*n+col] = Elevation(h.Coord(col), z, t, p)
			}
		}
	})
	return h
}

// Coord returns the plane coordinate of lattice index i.
func (h *Heightmap) Coord(i int) float64 {
	return -h.Size/2 + h.Size*float64(i)/float64(h.Segments)
}

// At returns the height at lattice (col, row).
func (h *Heightmap) At(col, row int) float64 {
	return h.Heights[row*(h.Segments+1)+col]
}

// Samples flattens the heightmap into comparison samples.
func (h *Heightmap) Samples() []Sample {
	n := h.Segments + 1
	out := make([]Sample, 0, len(h.Heights))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out = append(out, Sample{X: h.Coord(col), Z: h.Coord(row), T: h.Time, Elevation: h.At(col, row)})
		}
	}
	return out
}

// MinMax returns the lowest and highest heights.
func (h *Heightmap) MinMax() (lo, hi float64) {
	if len(h.Heights) == 0 {
		return 0, 0
	}
	lo, hi = h.Heights[0], h.Heights[0]
	for _, v := range h.Heights[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// parallelFor executes fn over [0, n) split across workers.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.GOMAXPROCS(0)
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
