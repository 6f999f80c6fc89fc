package sensors

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/sirupsen/logrus"
)

const psutilReadTimeout = 2 * time.Second

// PsutilProvider groups gopsutil's flat temperature list into chips. Sensor
// keys are split at the first underscore: "coretemp_core_0" becomes feature
// "core_0" of chip "coretemp".
type PsutilProvider struct {
	fetch   func(ctx context.Context) ([]host.TemperatureStat, error)
	timeout time.Duration
	log     logrus.FieldLogger
}

// NewPsutilProvider returns a provider reading the host's temperature
// sensors through gopsutil.
func NewPsutilProvider(log logrus.FieldLogger) *PsutilProvider {
	return &PsutilProvider{
		fetch:   host.SensorsTemperaturesWithContext,
		timeout: psutilReadTimeout,
		log:     log.WithField("component", "psutil"),
	}
}

// Open implements Provider. Every Open takes one snapshot of all sensors;
// subfeature values are served from that snapshot.
func (p *PsutilProvider) Open(ctx context.Context) (Session, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	stats, err := p.fetch(ctx)
	if err != nil {
		var warns *host.Warnings
		if !errors.As(err, &warns) || len(stats) == 0 {
			return nil, fmt.Errorf("reading temperature sensors: %w", err)
		}
		// Partial results: some chips failed, the rest are usable.
		p.log.WithError(err).Debug("temperature sensors read with warnings")
	}

	return &listSession{chips: groupTemperatures(stats)}, nil
}

// groupTemperatures builds chips in order of first appearance.
func groupTemperatures(stats []host.TemperatureStat) []Chip {
	type group struct {
		prefix   string
		features []Feature
	}

	var groups []*group
	for _, st := range stats {
		prefix, label := splitSensorKey(st.SensorKey)

		i := slices.IndexFunc(groups, func(g *group) bool { return g.prefix == prefix })
		if i < 0 {
			groups = append(groups, &group{prefix: prefix})
			i = len(groups) - 1
		}
		groups[i].features = append(groups[i].features, temperatureFeature(label, st))
	}

	chips := make([]Chip, 0, len(groups))
	for _, g := range groups {
		chips = append(chips, NewChip(g.prefix, SourcePsutil, slices.Values(g.features)))
	}
	return chips
}

func splitSensorKey(key string) (prefix, label string) {
	prefix, label, ok := strings.Cut(key, "_")
	if !ok || label == "" {
		return key, "temp"
	}
	return prefix, label
}

// temperatureFeature exposes input, max and crit. gopsutil reports absent
// thresholds as zero, which reads as unreadable.
func temperatureFeature(label string, st host.TemperatureStat) Feature {
	subs := []Subfeature{
		NewSubfeature(label+"_input", constant(st.Temperature, true)),
		NewSubfeature(label+"_max", constant(st.High, st.High != 0)),
		NewSubfeature(label+"_crit", constant(st.Critical, st.Critical != 0)),
	}
	return NewFeature(label, slices.Values(subs))
}

func constant(v float64, ok bool) func() (float64, error) {
	return func() (float64, error) {
		if !ok {
			return 0, ErrUnreadable
		}
		return v, nil
	}
}
