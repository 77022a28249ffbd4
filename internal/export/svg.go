package export

import (
	"fmt"
	"strings"

	"github.com/vitor-souza-ime/foucault/internal/compare"
)

// EnvelopeSVG renders the attenuation envelopes of a comparison as a
// standalone SVG line chart, one path per material in its registry
// color, with a marker at each skin depth.
func EnvelopeSVG(table *compare.Table, width, height int) string {
	if len(table.Rows) == 0 {
		return ""
	}

	maxAmp := 0.0
	for _, row := range table.Rows {
		for _, e := range row.Profile.Envelope {
			if e > maxAmp {
				maxAmp = e
			}
		}
	}
	if maxAmp == 0 {
		maxAmp = 1
	}
	length := table.Domain.Length

	const pad = 10.0
	plotW := float64(width) - 2*pad
	plotH := float64(height) - 2*pad

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	toX := func(x float64) float64 { return pad + x/length*plotW }
	toY := func(e float64) float64 { return pad + (1-e/maxAmp)*plotH }

	for _, row := range table.Rows {
		if row.SkinDepth <= length {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5" stroke-dasharray="4,3" opacity="0.6"/>
`, toX(row.SkinDepth), pad, toX(row.SkinDepth), pad+plotH, row.Material.Color))
		}

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, row.Material.Color))
		for i, x := range row.Profile.X {
			px, py := toX(x), toY(row.Profile.Envelope[i])
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
	}

	y := pad + 14.0
	for _, row := range table.Rows {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11">%s</text>
`, float64(width)-pad-90, y, row.Material.Color, row.Material.Name))
		y += 14
	}

	sb.WriteString("</svg>")
	return sb.String()
}
