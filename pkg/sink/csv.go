package sink

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// renderCSV writes one record per row. Elevations use the shortest decimal
// form that parses back to the same float64.
func renderCSV(m Map, o options) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var colors [][]string
	if o.cells == Colors {
		colors = m.Biomes.Colors()
	}
	record := make([]string, m.Grid.Width)
	for y, row := range m.Grid.Cells {
		if colors != nil {
			copy(record, colors[y])
		} else {
			for x, v := range row {
				record[x] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
