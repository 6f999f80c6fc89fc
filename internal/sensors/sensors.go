// Package sensors exposes the hardware sensor chips of the local host.
//
// A chip is an ordered, lazily enumerated sequence of features, and each
// feature an ordered sequence of subfeatures whose values are read on
// demand. Nothing is cached: every Session re-reads the source, and every
// Subfeature.Value call hits the underlying sensor again.
//
// Three sources are provided:
//
//	hwmon   — Linux /sys/class/hwmon (the data libsensors reads)
//	psutil  — gopsutil temperature sensors, portable fallback
//	demo    — synthetic chips for hosts without sensors
package sensors

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
)

// ErrUnreadable is returned by Subfeature.Value when a reading is missing
// or not a finite number.
var ErrUnreadable = errors.New("sensor value unreadable")

// ErrUnknownSource is returned by NewProvider for an unrecognized source name.
var ErrUnknownSource = errors.New("unknown sensor source")

// Provider hands out short-lived sessions over the host's sensor chips.
type Provider interface {
	// Open acquires the sensor source. The returned Session must be closed.
	Open(ctx context.Context) (Session, error)
}

// Session is one acquisition of a Provider. Chip ordinals are stable for
// the lifetime of the session only.
type Session interface {
	// Chips enumerates chips in provider order.
	Chips() iter.Seq[Chip]
	// ChipAt returns the chip at the given ordinal, or false if none exists.
	ChipAt(ordinal int) (Chip, bool)
	// Close releases the session.
	Close() error
}

// ────────────────────────────────────────────────────────────
// Chip hierarchy
// ────────────────────────────────────────────────────────────

// Chip is one physical sensor chip.
type Chip struct {
	// Prefix identifies the chip, e.g. "coretemp" or "nct6798".
	Prefix string
	// Source names where the chip was found, e.g. "hwmon2". May be empty.
	Source string

	features iter.Seq[Feature]
}

// NewChip builds a chip whose features are produced by features.
func NewChip(prefix, source string, features iter.Seq[Feature]) Chip {
	return Chip{Prefix: prefix, Source: source, features: features}
}

// Features enumerates the chip's features in provider order.
func (c Chip) Features() iter.Seq[Feature] {
	if c.features == nil {
		return empty[Feature]
	}
	return c.features
}

// Title is the chip's display name.
func (c Chip) Title() string {
	if c.Source == "" || c.Source == c.Prefix {
		return c.Prefix
	}
	return fmt.Sprintf("%s (%s)", c.Prefix, c.Source)
}

// Feature is a named group of readings within a chip, e.g. "Core 0".
type Feature struct {
	Label string

	subfeatures iter.Seq[Subfeature]
}

// NewFeature builds a feature whose readings are produced by subfeatures.
func NewFeature(label string, subfeatures iter.Seq[Subfeature]) Feature {
	return Feature{Label: label, subfeatures: subfeatures}
}

// Subfeatures enumerates the feature's readings in provider order.
func (f Feature) Subfeatures() iter.Seq[Subfeature] {
	if f.subfeatures == nil {
		return empty[Subfeature]
	}
	return f.subfeatures
}

// Subfeature is a single numeric reading, e.g. "temp1_input".
type Subfeature struct {
	Name string

	read func() (float64, error)
}

// NewSubfeature builds a subfeature backed by read.
func NewSubfeature(name string, read func() (float64, error)) Subfeature {
	return Subfeature{Name: name, read: read}
}

// Value reads the current value. NaN and infinities are reported as
// ErrUnreadable.
func (s Subfeature) Value() (float64, error) {
	if s.read == nil {
		return 0, ErrUnreadable
	}
	v, err := s.read()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %w", s.Name, ErrUnreadable)
	}
	return v, nil
}

func empty[T any](func(T) bool) {}

// ────────────────────────────────────────────────────────────
// Static chip lists
// ────────────────────────────────────────────────────────────

// listSession serves a chip list enumerated up front.
type listSession struct {
	chips []Chip
}

func (s *listSession) Chips() iter.Seq[Chip] {
	return slices.Values(s.chips)
}

func (s *listSession) ChipAt(ordinal int) (Chip, bool) {
	if ordinal < 0 || ordinal >= len(s.chips) {
		return Chip{}, false
	}
	return s.chips[ordinal], true
}

func (s *listSession) Close() error {
	s.chips = nil
	return nil
}

// StaticProvider serves a fixed list of chips. Subfeature reads still go
// through each subfeature's read function on every call.
type StaticProvider struct {
	chips []Chip
}

// NewStaticProvider returns a provider over chips.
func NewStaticProvider(chips ...Chip) *StaticProvider {
	return &StaticProvider{chips: chips}
}

// Open implements Provider.
func (p *StaticProvider) Open(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &listSession{chips: slices.Clone(p.chips)}, nil
}

// Count returns the number of chips in seq.
func Count(seq iter.Seq[Chip]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// ────────────────────────────────────────────────────────────
// Source selection
// ────────────────────────────────────────────────────────────

// Source names accepted by NewProvider.
const (
	SourceAuto   = "auto"
	SourceHwmon  = "hwmon"
	SourcePsutil = "psutil"
	SourceDemo   = "demo"
)

// NewProvider returns the provider for the named source. SourceAuto picks
// hwmon when hwmonRoot exists and falls back to psutil otherwise.
func NewProvider(source, hwmonRoot string, log logrus.FieldLogger) (Provider, error) {
	if hwmonRoot == "" {
		hwmonRoot = DefaultHwmonRoot
	}

	switch source {
	case SourceAuto, "":
		if _, err := os.Stat(hwmonRoot); err == nil {
			log.WithField("root", hwmonRoot).Debug("auto-selected hwmon source")
			return NewHwmonProvider(hwmonRoot, log), nil
		}
		log.WithField("root", hwmonRoot).Debug("hwmon root missing, falling back to psutil")
		return NewPsutilProvider(log), nil
	case SourceHwmon:
		return NewHwmonProvider(hwmonRoot, log), nil
	case SourcePsutil:
		return NewPsutilProvider(log), nil
	case SourceDemo:
		return NewDemoProvider(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
}
