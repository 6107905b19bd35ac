package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
)

func renderPNG(m Map, o options) ([]byte, error) {
	cs := o.cellSize
	img := image.NewRGBA(image.Rect(0, 0, m.Grid.Width*cs, m.Grid.Height*cs))
	for y, row := range m.Grid.Cells {
		for x, v := range row {
			var c color.RGBA
			if o.cells == Colors {
				c = m.Biomes.At(x, y).RGBA()
			} else {
				c = gray(v)
			}
			r := image.Rect(x*cs, y*cs, (x+1)*cs, (y+1)*cs)
			draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gray(v float64) color.RGBA {
	l := uint8(math.Round(255 * min(max(v, 0), 1)))
	return color.RGBA{R: l, G: l, B: l, A: 0xff}
}
