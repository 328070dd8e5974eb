package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/waves"
)

// HeightmapToSVG draws a heightmap as a grid of shaded squares, trough dark
// and crest light, cell pixels to a vertex.
func HeightmapToSVG(hm *waves.Heightmap, cell int) string {
	n := hm.Segments + 1
	if len(hm.Heights) != n*n || cell <= 0 {
		return ""
	}
	size := n * cell
	lo, hi := hm.MinMax()
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
`, size, size, size, size))

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := (hm.At(col, row) - lo) / span
			b := 60 + int(v*195)
			g := 20 + int(v*150)
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="#00%02x%02x"/>
`, col*cell, row*cell, cell, cell, g, b))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// PortraitToSVG draws a portrait as a single polyline.
func PortraitToSVG(p *analysis.Portrait, width, height int, strokeColor string) string {
	if p == nil || len(p.Points) < 2 {
		return ""
	}
	points := p.Points

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, pt := range points {
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
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

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#001a33"/>
<title>%s vs %s</title>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, p.YLabel, p.XLabel, strokeColor))

	for i, pt := range points {
		x := (pt.X - minX) / rangeX * float64(width)
		y := float64(height) - (pt.Y-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
