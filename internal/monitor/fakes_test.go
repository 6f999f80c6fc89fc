package monitor

import (
	"context"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/sensible-monitor/sensible/internal/sensors"
	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ────────────────────────────────────────────────────────────
// Recording surface
// ────────────────────────────────────────────────────────────

type fakeSurface struct {
	height, width int
	regions       []*fakeRegion
}

func (s *fakeSurface) CreateRegion(height, width, y, x int) Region {
	r := &fakeRegion{y: y, x: x, height: height, width: width}
	r.back = blankGrid(height, width)
	r.front = blankGrid(height, width)
	s.regions = append(s.regions, r)
	return r
}

func (s *fakeSurface) Dimensions() (int, int) {
	return s.height, s.width
}

type fakeRegion struct {
	y, x, height, width int
	back, front         [][]rune
	flushes             int
	writes              int
}

func blankGrid(height, width int) [][]rune {
	g := make([][]rune, max(height, 0))
	for i := range g {
		g[i] = []rune(strings.Repeat(" ", max(width, 0)))
	}
	return g
}

func (r *fakeRegion) Clear() {
	r.back = blankGrid(r.height, r.width)
}

func (r *fakeRegion) Border() {
	for row := range r.back {
		for col := range r.back[row] {
			switch {
			case (row == 0 || row == r.height-1) && (col == 0 || col == r.width-1):
				r.back[row][col] = '+'
			case row == 0 || row == r.height-1:
				r.back[row][col] = '-'
			case col == 0 || col == r.width-1:
				r.back[row][col] = '|'
			}
		}
	}
}

func (r *fakeRegion) WriteAt(row, col int, text string) {
	r.writes++
	if row < 0 || row >= r.height {
		return
	}
	for i, ch := range []rune(text) {
		if c := col + i; c >= 0 && c < r.width {
			r.back[row][c] = ch
		}
	}
}

func (r *fakeRegion) Flush() {
	r.flushes++
	for row := range r.back {
		copy(r.front[row], r.back[row])
	}
}

func (r *fakeRegion) Size() (int, int) {
	return r.height, r.width
}

// line returns the flushed interior of row, with border filler and
// trailing blanks removed.
func (r *fakeRegion) line(row int) string {
	if r.width < 2 {
		return ""
	}
	return strings.TrimRight(string(r.front[row][1:r.width-1]), " -")
}

// lines returns every interior row between the borders.
func (r *fakeRegion) lines() []string {
	var out []string
	for row := 0; row < r.height-1; row++ {
		out = append(out, r.line(row))
	}
	return out
}

// ────────────────────────────────────────────────────────────
// Providers
// ────────────────────────────────────────────────────────────

type countingProvider struct {
	sensors.Provider
	opens, closes int
}

func (p *countingProvider) Open(ctx context.Context) (sensors.Session, error) {
	s, err := p.Provider.Open(ctx)
	if err != nil {
		return nil, err
	}
	p.opens++
	return &countingSession{Session: s, p: p}, nil
}

type countingSession struct {
	sensors.Session
	p *countingProvider
}

func (s *countingSession) Close() error {
	s.p.closes++
	return s.Session.Close()
}

type failingProvider struct{}

func (failingProvider) Open(context.Context) (sensors.Session, error) {
	return nil, errors.New("permission denied")
}

func chip(prefix string, feats ...sensors.Feature) sensors.Chip {
	return sensors.NewChip(prefix, "", slices.Values(feats))
}

func feature(label string, subs ...sensors.Subfeature) sensors.Feature {
	return sensors.NewFeature(label, slices.Values(subs))
}

func reading(name string, v float64) sensors.Subfeature {
	return sensors.NewSubfeature(name, func() (float64, error) { return v, nil })
}

func broken(name string) sensors.Subfeature {
	return sensors.NewSubfeature(name, func() (float64, error) { return 0, sensors.ErrUnreadable })
}

// numberedChips returns n chips named chip0..chipN-1.
func numberedChips(n int) *countingProvider {
	chips := make([]sensors.Chip, n)
	for i := range chips {
		chips[i] = chip("chip"+strconv.Itoa(i), feature("temp1", reading("temp1_input", float64(40+i))))
	}
	return &countingProvider{Provider: sensors.NewStaticProvider(chips...)}
}
