package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/terramap/pkg/biome"
	"github.com/matzehuels/terramap/pkg/buildinfo"
	"github.com/matzehuels/terramap/pkg/cache"
	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/gridshape"
	"github.com/matzehuels/terramap/pkg/sink"
	"github.com/matzehuels/terramap/pkg/terrain"
)

// Response headers of /map.
const (
	DigestHeader = "X-Map-Digest"
	CacheHeader  = "X-Cache"
)

// digestLen is the length of the hex digest stored ahead of cached map bytes.
const digestLen = 64

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

type presetResponse struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Octaves     int           `json:"octaves"`
	Persistence float64       `json:"persistence"`
	Scale       float64       `json:"scale"`
	Seeding     string        `json:"seeding"`
	Basis       string        `json:"basis"`
	Biomes      []biome.Biome `json:"biomes"`
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	presets := terrain.Presets()
	out := make([]presetResponse, len(presets))
	for i, p := range presets {
		c := p.Config
		out[i] = presetResponse{
			Name:        p.Name(),
			Description: p.Description,
			Width:       p.Width,
			Height:      p.Height,
			Octaves:     c.Octaves,
			Persistence: c.Persistence,
			Scale:       c.Scale,
			Seeding:     c.Seeding.Name(),
			Basis:       string(c.Basis),
			Biomes:      c.Table,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	preset, err := terrain.Lookup(q.Get("preset"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	formatName := q.Get("format")
	if formatName == "" {
		formatName = string(sink.FormatJSON)
	}
	format, err := sink.ParseFormat(formatName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cells, err := sink.ParseCells(q.Get("cells"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	req := gridshape.Resolve(q.Get("seed"), q.Get("size"), preset)
	if err := errors.ValidateDimensions(req.Width, req.Height); err != nil {
		s.writeError(w, r, err)
		return
	}
	if s.opts.maxCells > 0 && req.Width > s.opts.maxCells/req.Height {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidDimension,
			"%dx%d exceeds the limit of %d cells", req.Width, req.Height, s.opts.maxCells))
		return
	}

	c := preset.Config
	key := cache.Key("map", c.Name, c.Seeding.Name(), c.Basis, req.Seed, req.Width, req.Height, format, cells)
	if entry, ok, err := s.opts.cache.Get(r.Context(), key); err != nil {
		s.logger.Warn("Cache read failed", "err", err, "job", JobID(r.Context()))
	} else if ok && len(entry) >= digestLen {
		writeMap(w, format, string(entry[:digestLen]), entry[digestLen:], "hit")
		return
	}

	var genOpts []terrain.Option
	if s.opts.workers > 0 {
		genOpts = append(genOpts, terrain.WithWorkers(s.opts.workers))
	}
	grid, err := terrain.Generate(r.Context(), req.Seed, req.Width, req.Height, c, genOpts...)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := sink.Render(r.Context(), sink.NewMap(grid, c), format,
		sink.WithCells(cells), sink.WithRenderer(ansiRenderer()))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "rendering %s", format))
		return
	}

	digest := grid.Digest()
	entry := append([]byte(digest), data...)
	if err := s.opts.cache.Set(r.Context(), key, entry, s.opts.cacheTTL); err != nil {
		s.logger.Warn("Cache write failed", "err", err, "job", JobID(r.Context()))
	}
	writeMap(w, format, digest, data, "miss")
}

func writeMap(w http.ResponseWriter, format sink.Format, digest string, data []byte, cacheStatus string) {
	h := w.Header()
	h.Set("Content-Type", sink.ContentType(format))
	h.Set("Content-Length", strconv.Itoa(len(data)))
	h.Set(DigestHeader, digest)
	h.Set(CacheHeader, cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeFileNotFound, "no route for %s", r.URL.Path))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
		Code:    errors.ErrCodeUnsupported,
		Message: "method " + r.Method + " not allowed on " + r.URL.Path,
		JobID:   JobID(r.Context()),
	})
}

// ansiRenderer emits true-color escapes regardless of the server's own
// terminal; the client decides how to display them.
func ansiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}
