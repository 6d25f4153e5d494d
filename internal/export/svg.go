// Package export renders recorded animation traces to SVG.
package export

import (
	"fmt"
	"strings"
)

// Trace is one named series over shared sample times.
type Trace struct {
	Label  string
	Values []float64
}

var strokePalette = []string{
	"#00ff88", "#22ccff", "#ff6688", "#ffcc22", "#cc88ff", "#88ffcc",
}

// TraceSVG plots each trace as a polyline over the time axis. All traces
// share one value range so relative magnitudes stay comparable.
func TraceSVG(times []float64, traces []Trace, width, height int) string {
	if len(times) < 2 || len(traces) == 0 {
		return ""
	}

	minT, maxT := times[0], times[len(times)-1]
	minV, maxV := traces[0].Values[0], traces[0].Values[0]
	for _, tr := range traces {
		for _, v := range tr.Values {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	rangeT := maxT - minT
	rangeV := maxV - minV
	if rangeT == 0 {
		rangeT = 1
	}
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.1
	maxV += rangeV * 0.1
	rangeV = maxV - minV

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for ti, tr := range traces {
		if len(tr.Values) != len(times) {
			continue
		}
		stroke := strokePalette[ti%len(strokePalette)]

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for i, v := range tr.Values {
			x := (times[i] - minT) / rangeT * float64(width)
			y := float64(height) - (v-minV)/rangeV*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		labelY := 16 + 14*ti
		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="11">%s</text>
`, labelY, stroke, tr.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
