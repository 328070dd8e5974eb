package tui

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/wavesim/internal/waves"
)

// ramp shades water from trough to crest.
var ramp = []rune(" .·:-=+*")

const (
	cellWater = iota
	cellHull
	cellBow
)

// View is a top-down raster of the water around a centre point. Rows run
// from -Z (forward) at the top to +Z at the bottom. A terminal cell is about
// twice as tall as it is wide, so one row spans two columns of world space.
type View struct {
	Cols, Rows int
	Scale      float64 // world units per column
	Center     mgl64.Vec3

	Heights []float64
	Kinds   []int
}

func NewView(cols, rows int, scale float64) *View {
	return &View{
		Cols:    cols,
		Rows:    rows,
		Scale:   scale,
		Heights: make([]float64, cols*rows),
		Kinds:   make([]int, cols*rows),
	}
}

// World returns the world X/Z of a cell centre.
func (v *View) World(col, row int) (x, z float64) {
	x = v.Center.X() + (float64(col)-float64(v.Cols-1)/2)*v.Scale
	z = v.Center.Z() + (float64(row)-float64(v.Rows-1)/2)*v.Scale*2
	return x, z
}

// Sample fills Heights from the field at time t.
func (v *View) Sample(field waves.Sampler, t float64) {
	for row := 0; row < v.Rows; row++ {
		for col := 0; col < v.Cols; col++ {
			x, z := v.World(col, row)
			v.Heights[row*v.Cols+col] = field.HeightAt(x, z, t)
			v.Kinds[row*v.Cols+col] = cellWater
		}
	}
}

// MarkHull flags cells inside the hull footprint. The front quarter of the
// hull is drawn as the bow.
func (v *View) MarkHull(pos mgl64.Vec3, q mgl64.Quat, halfExtents mgl64.Vec3) {
	inv := q.Inverse()
	hx, hz := halfExtents.X(), halfExtents.Z()
	for row := 0; row < v.Rows; row++ {
		for col := 0; col < v.Cols; col++ {
			x, z := v.World(col, row)
			local := inv.Rotate(mgl64.Vec3{x - pos.X(), 0, z - pos.Z()})
			if math.Abs(local.X()) > hx || math.Abs(local.Z()) > hz {
				continue
			}
			kind := cellHull
			if local.Z() < -hz/2 {
				kind = cellBow
			}
			v.Kinds[row*v.Cols+col] = kind
		}
	}
}

// level maps h into one of n bands over [lo, hi].
func level(h, lo, hi float64, n int) int {
	if hi-lo < 1e-12 || math.IsNaN(h) {
		return n / 2
	}
	i := int((h - lo) / (hi - lo) * float64(n))
	return max(0, min(n-1, i))
}

// Render draws the view with runs of equal shade grouped into one styled
// span per run.
func (v *View) Render(st styles, lo, hi float64) string {
	n := min(len(ramp), len(st.water))
	var sb strings.Builder
	for row := 0; row < v.Rows; row++ {
		var run strings.Builder
		runKey := -100
		flush := func() {
			if run.Len() == 0 {
				return
			}
			switch {
			case runKey == -cellHull:
				sb.WriteString(st.hull.Render(run.String()))
			case runKey == -cellBow:
				sb.WriteString(st.bow.Render(run.String()))
			default:
				sb.WriteString(st.water[runKey].Render(run.String()))
			}
			run.Reset()
		}

		for col := 0; col < v.Cols; col++ {
			i := row*v.Cols + col
			var key int
			var r rune
			switch v.Kinds[i] {
			case cellHull:
				key, r = -cellHull, '█'
			case cellBow:
				key, r = -cellBow, '▲'
			default:
				key = level(v.Heights[i], lo, hi, n)
				r = ramp[key]
			}
			if key != runKey {
				flush()
				runKey = key
			}
			run.WriteRune(r)
		}
		flush()
		sb.WriteByte('\n')
	}
	return sb.String()
}
