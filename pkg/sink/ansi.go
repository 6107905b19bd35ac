package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// block is the glyph drawn per cell; two columns keep cells roughly square.
const block = "  "

func renderANSI(m Map, o options) ([]byte, error) {
	r := o.renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	styles := make(map[string]lipgloss.Style)
	cell := func(hex string) string {
		s, ok := styles[hex]
		if !ok {
			s = r.NewStyle().Background(lipgloss.Color(hex))
			styles[hex] = s
		}
		return s.Render(block)
	}

	var sb strings.Builder
	for y, row := range m.Grid.Cells {
		for x, v := range row {
			if o.cells == Colors {
				sb.WriteString(cell(m.Biomes.At(x, y).Color))
			} else {
				sb.WriteString(cell(grayHex(v)))
			}
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

func grayHex(v float64) string {
	g := gray(v)
	c, _ := colorful.MakeColor(g)
	return c.Hex()
}
