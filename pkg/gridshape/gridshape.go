// Package gridshape resolves user-supplied seed and size text into a
// generation request.
//
// This is where lenient defaults live. The core in pkg/terrain rejects bad
// input outright; gridshape is the boundary that forgives it:
//
//   - A seed that is empty, non-numeric or zero becomes 1.
//   - A size is "WxH" (also "W X H" or "W×H"). A side that is missing,
//     non-numeric or zero takes the preset's default.
//   - Negative numbers are passed through untouched so the core can reject
//     them with INVALID_DIMENSION.
//
// Numbers are read from the leading digits of each part, so "12abc" is 12.
package gridshape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/terramap/pkg/terrain"
)

// DefaultSeed replaces missing or unusable seeds.
const DefaultSeed uint32 = 1

// Request is a fully resolved generation request.
type Request struct {
	Seed   uint32
	Width  int
	Height int
}

func (r Request) String() string {
	return fmt.Sprintf("seed %d, %dx%d", r.Seed, r.Width, r.Height)
}

var (
	leadingInt = regexp.MustCompile(`^\s*([+-]?\d+)`)
	sizeSep    = regexp.MustCompile(`x|×`)
)

// Resolve applies the fallback policy against the preset's dimensions.
func Resolve(seedText, sizeText string, p terrain.Preset) Request {
	w, h := ParseSize(sizeText, p.Width, p.Height)
	return Request{Seed: ParseSeed(seedText), Width: w, Height: h}
}

// ParseSeed reads a seed, falling back to [DefaultSeed]. Values outside the
// 32-bit range wrap, so "-1" is 4294967295.
func ParseSeed(s string) uint32 {
	n, ok := parseLeadingInt(s)
	if !ok || n == 0 {
		return DefaultSeed
	}
	return uint32(n)
}

// ParseSize reads "WxH", substituting defW or defH for any side that is
// missing, unparsable or zero.
func ParseSize(s string, defW, defH int) (w, h int) {
	parts := sizeSep.Split(strings.ToLower(s), -1)
	w, h = defW, defH
	if n, ok := parseLeadingInt(parts[0]); ok && n != 0 {
		w = int(n)
	}
	if len(parts) > 1 {
		if n, ok := parseLeadingInt(parts[1]); ok && n != 0 {
			h = int(n)
		}
	}
	return w, h
}

func parseLeadingInt(s string) (int64, bool) {
	m := leadingInt.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
