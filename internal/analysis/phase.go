package analysis

import (
	"math"
	"strings"

	"github.com/san-kum/wavesim/internal/sim"
)

type Point struct{ X, Y float64 }

// Portrait is a 2D point set in plot order.
type Portrait struct {
	XLabel, YLabel string
	Points         []Point
}

// TrackPortrait is the top-down path of the hull with forward (-Z) up.
func TrackPortrait(frames []sim.Frame) *Portrait {
	p := &Portrait{XLabel: "x", YLabel: "-z", Points: make([]Point, 0, len(frames))}
	for _, f := range frames {
		p.Points = append(p.Points, Point{X: f.Position.X(), Y: -f.Position.Z()})
	}
	return p
}

// HeavePortrait plots heave against vertical velocity.
func HeavePortrait(frames []sim.Frame) *Portrait {
	p := &Portrait{XLabel: "heave", YLabel: "vy", Points: make([]Point, 0, len(frames))}
	for _, f := range frames {
		p.Points = append(p.Points, Point{X: f.Heave(), Y: f.Velocity.Y()})
	}
	return p
}

// Heave extracts the heave series of frames.
func Heave(frames []sim.Frame) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = f.Heave()
	}
	return out
}

// PortraitToASCII rasterises a portrait into width x height runes.
func PortraitToASCII(portrait *Portrait, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := portrait.Points[0].X, portrait.Points[0].X
	minY, maxY := portrait.Points[0].Y, portrait.Points[0].Y
	for _, p := range portrait.Points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	cell := func(x, y float64) (int, int) {
		col := int((x - minX) / rangeX * float64(width-1))
		row := height - 1 - int((y-minY)/rangeY*float64(height-1))
		return row, col
	}

	if minX <= 0 && maxX >= 0 {
		_, col := cell(0, minY)
		for row := 0; row < height; row++ {
			canvas[row][col] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		row, _ := cell(minX, 0)
		for col := 0; col < width; col++ {
			if canvas[row][col] == '│' {
				canvas[row][col] = '┼'
			} else {
				canvas[row][col] = '─'
			}
		}
	}

	for _, p := range portrait.Points {
		row, col := cell(p.X, p.Y)
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// UpCrossings returns the interpolated times at which series rises through
// its mean.
func UpCrossings(series, times []float64) []float64 {
	n := min(len(series), len(times))
	if n < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range series[:n] {
		mean += v
	}
	mean /= float64(n)

	out := make([]float64, 0)
	for i := 1; i < n; i++ {
		prev, cur := series[i-1]-mean, series[i]-mean
		if prev < 0 && cur >= 0 {
			frac := -prev / (cur - prev)
			out = append(out, times[i-1]+frac*(times[i]-times[i-1]))
		}
	}
	return out
}

// MeanPeriod is the mean zero up-crossing period, or 0 with fewer than two
// crossings.
func MeanPeriod(series, times []float64) float64 {
	c := UpCrossings(series, times)
	if len(c) < 2 {
		return 0
	}
	return (c[len(c)-1] - c[0]) / float64(len(c)-1)
}
